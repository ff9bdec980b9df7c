package Convection2D

// adamsBashforth advances one entry by the two level multistep formula.
// f is the ratio of the step about to be taken to the step just taken,
// so f = 1 recovers the classic 3/2, -1/2 weights.
func adamsBashforth(cur, prev, f, dt float64) float64 {
	return ((2+f)*cur - f*prev) * dt / 2
}

// updateFieldsRange advances the prognostic fields of target modes
// [nMin,nMax) one step from the two derivative slots. Wall levels are
// included: their derivative entries are never written, so the update
// adds an exact zero and the boundary values persist.
func (c *Convection) updateFieldsRange(nMin, nMax int, f float64) {
	var (
		g     = c.Grid
		tmpD  = c.Tmp.DataP
		omgD  = c.Omg.DataP
		dTmpC = c.DTmpdt.Current().DataP
		dTmpP = c.DTmpdt.Previous().DataP
		dOmgC = c.DOmgdt.Current().DataP
		dOmgP = c.DOmgdt.Previous().DataP
	)
	for n := nMin; n < nMax; n++ {
		for k := 0; k < g.NZ; k++ {
			i := g.Ind(n, k)
			tmpD[i] += adamsBashforth(dTmpC[i], dTmpP[i], f, c.Dt)
			omgD[i] += adamsBashforth(dOmgC[i], dOmgP[i], f, c.Dt)
		}
	}
	if c.DDC {
		var (
			xiD  = c.Xi.DataP
			dXiC = c.DXidt.Current().DataP
			dXiP = c.DXidt.Previous().DataP
		)
		for n := nMin; n < nMax; n++ {
			for k := 0; k < g.NZ; k++ {
				i := g.Ind(n, k)
				xiD[i] += adamsBashforth(dXiC[i], dXiP[i], f, c.Dt)
			}
		}
	}
}

// solvePsiRange recovers the streamfunction of target modes [nMin,nMax)
// from the freshly updated vorticity
func (c *Convection) solvePsiRange(nMin, nMax int) {
	var (
		nZ   = c.Grid.NZ
		psiD = c.Psi.DataP
		omgD = c.Omg.DataP
	)
	for n := nMin; n < nMax; n++ {
		c.Solver.Solve(psiD[n*nZ:(n+1)*nZ], omgD[n*nZ:(n+1)*nZ], n)
	}
}
