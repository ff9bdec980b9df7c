package Convection2D

import (
	"fmt"
	"math"
)

// Steps between growth rate samples
const growthSampleSteps = 500

/*
RunLinear integrates the linearized equations about the conductive base
state and measures the asymptotic exponential growth rate of mode
nCrit. Every growthSampleSteps steps the log amplitude ratio of each
field at the probe level is compared with the previous sample; once all
of them have stopped changing to within 1e-10 the temperature ratio is
returned. The caller converts it to a rate per unit time by dividing by
the sample interval. A return of exactly 0 means the run hit TotalTime
without the ratios settling.

The sign of the return carries the verdict: positive means mode nCrit
grows and the state is unstable at this Ra, negative means it decays.
*/
func (c *Convection) RunLinear(nCrit int) (rate float64) {
	var (
		g         = c.Grid
		tolerance = 1e-10
	)
	if nCrit < 1 || nCrit >= g.NN {
		err := fmt.Errorf("cannot track growth of mode %d with %d modes", nCrit, g.NN)
		panic(err)
	}
	c.SetStabilityConditions()
	var (
		probe                                         = g.Ind(nCrit, c.ProbeLevel())
		logTmpPrev, logOmgPrev, logPsiPrev, logXiPrev float64
		tmpPrev                                       = c.Tmp.DataP[probe]
		omgPrev                                       = c.Omg.DataP[probe]
		psiPrev                                       = c.Psi.DataP[probe]
		xiPrev                                        float64
		steps                                         int
	)
	if c.DDC {
		xiPrev = c.Xi.DataP[probe]
	}
	c.Time = 0
	c.backend.Push()
	for c.Time < c.TotalTime {
		if steps%growthSampleSteps == 0 {
			c.backend.Sync()
			var (
				logTmp = math.Log(math.Abs(c.Tmp.DataP[probe])) - math.Log(math.Abs(tmpPrev))
				logOmg = math.Log(math.Abs(c.Omg.DataP[probe])) - math.Log(math.Abs(omgPrev))
				logPsi = math.Log(math.Abs(c.Psi.DataP[probe])) - math.Log(math.Abs(psiPrev))
				logXi  float64
			)
			converged := math.Abs(logTmp-logTmpPrev) < tolerance &&
				math.Abs(logOmg-logOmgPrev) < tolerance &&
				math.Abs(logPsi-logPsiPrev) < tolerance
			if c.DDC {
				logXi = math.Log(math.Abs(c.Xi.DataP[probe])) - math.Log(math.Abs(xiPrev))
				converged = converged && math.Abs(logXi-logXiPrev) < tolerance
			}
			if converged {
				rate = logTmp
				return
			}
			logTmpPrev, logOmgPrev, logPsiPrev, logXiPrev = logTmp, logOmg, logPsi, logXi
			tmpPrev = c.Tmp.DataP[probe]
			omgPrev = c.Omg.DataP[probe]
			psiPrev = c.Psi.DataP[probe]
			if c.DDC {
				xiPrev = c.Xi.DataP[probe]
			}
		}
		c.StepLinear()
		steps++
		if c.ValidateEvery > 0 && steps%c.ValidateEvery == 0 {
			c.backend.Sync()
			c.mustBeValid()
		}
	}
	return 0
}

// StepLinear advances the linearized system by one step of Dt. The mean
// profile is frozen, so the mode 0 derivatives are left untouched and
// advection appears only through the fixed background gradients.
func (c *Convection) StepLinear() {
	c.backend.ComputeLinear(1, true)
	c.backend.UpdateFields(1)
	c.backend.SolvePsi()
	c.Time += c.Dt
	c.advanceHistories()
}
