package Convection2D

import (
	"fmt"
	"math"
	"time"
)

/*
RunNonLinear advances the fully nonlinear system from the current state
to TotalTime. Three timed gates fire before stepping: the kinetic
energy log, the CFL check and the state snapshot, each on its own
interval measured from t = 0, so all three fire on the first pass and
the initial condition is recorded. The step itself is four backend
phases; host state is only guaranteed fresh after a Sync, which each
gate performs before reading fields.

The CFL gate hands its step ratio to the next field update. When the
ratio is below one the update re-weights the multistep formula for the
shortened step, and with ModifyDt set the shortened step becomes
permanent.
*/
func (c *Convection) RunNonLinear(pm *PlotMeta) {
	var (
		saveTime, keSaveTime, cflCheckTime float64
		f                                  = 1.
		steps                              int
		elapsed                            time.Duration
	)
	if pm == nil {
		pm = &PlotMeta{StepsBeforePlot: 1000}
	}
	if pm.StepsBeforePlot <= 0 {
		pm.StepsBeforePlot = 1000
	}
	plotQ := pm.Plot
	c.Time = 0
	c.PrintInitialization(c.TotalTime)
	c.backend.Push()
	finished := c.CheckIfFinished(c.Time, c.TotalTime)
	for !finished {
		if keSaveTime-c.Time < Epsilon {
			c.backend.Sync()
			if err := c.SaveKineticEnergy(); err != nil {
				panic(err)
			}
			keSaveTime += c.KESaveInterval
		}
		if cflCheckTime-c.Time < Epsilon {
			c.backend.Sync()
			f = c.CheckCFL()
			cflCheckTime += c.CFLCheckInterval
			fmt.Printf("CFL ratio = %8.5f, KE log rate = %11.4e\n",
				f, math.Log(math.Abs(c.keCurrent))-math.Log(math.Abs(c.kePrev)))
		}
		if saveTime-c.Time < Epsilon {
			c.backend.Sync()
			fmt.Printf("%e of %e (%.2f%%)\n", c.Time, c.TotalTime, c.Time/c.TotalTime*100)
			if err := c.Save(); err != nil {
				panic(err)
			}
			saveTime += c.TimeBetweenSaves
		}
		start := time.Now()
		c.StepNonLinear(f)
		f = 1
		elapsed += time.Now().Sub(start)
		steps++
		if c.ValidateEvery > 0 && steps%c.ValidateEvery == 0 {
			c.backend.Sync()
			c.mustBeValid()
		}
		finished = c.CheckIfFinished(c.Time, c.TotalTime)
		if finished || steps%pm.StepsBeforePlot == 0 || steps == 1 {
			c.backend.Sync()
			c.PrintUpdate(c.Time, steps, plotQ, pm)
		}
	}
	c.backend.Sync()
	if err := c.Save(); err != nil {
		panic(err)
	}
	c.PrintFinal(elapsed, steps)
}

// StepNonLinear advances the state by one step of the current Dt. The
// ratio f re-weights the two-level multistep formula when the step just
// changed size, f = 1 being the uniform step case.
func (c *Convection) StepNonLinear(f float64) {
	c.backend.ComputeLinear(0, false)
	c.backend.ComputeNonlinear()
	c.backend.UpdateFields(f)
	c.backend.SolvePsi()
	c.Time += c.Dt
	c.advanceHistories()
}
