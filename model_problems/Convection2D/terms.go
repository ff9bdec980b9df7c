package Convection2D

import (
	"math"

	"github.com/notargets/goconvect/spectral2D"
)

/*
Derivative evaluation is split into a linear part and a nonlinear part,
both writing into the current slot of the derivative histories. The
linear part assigns, the nonlinear part accumulates, so the linear pass
must run first within a step.

Both passes are expressed as range methods over a half open mode
interval [nMin,nMax) so the host backend can fan them out over the
partition map: a worker owns every entry of its target modes, making
writes disjoint without locks.
*/

// linearDerivativesRange evaluates diffusion and buoyancy for target
// modes [nMin,nMax) at interior levels. Modes below start are skipped:
// the transient driver passes 0 so the mean profile diffuses, the
// stability driver passes 1 to hold the base state fixed. In linearized
// form, advection against the imposed background gradient stands in for
// the full convolution.
func (c *Convection) linearDerivativesRange(nMin, nMax, start int, linearized bool) {
	var (
		g         = c.Grid
		tmpD      = c.Tmp.DataP
		omgD      = c.Omg.DataP
		psiD      = c.Psi.DataP
		dTmpD     = c.DTmpdt.Current().DataP
		dOmgD     = c.DOmgdt.Current().DataP
		xiD, dXiD []float64
	)
	if c.DDC {
		xiD = c.Xi.DataP
		dXiD = c.DXidt.Current().DataP
	}
	for n := nMin; n < nMax; n++ {
		if n < start {
			continue
		}
		var (
			kn  = g.Wavenumber(n)
			kn2 = kn * kn
		)
		for k := 1; k < g.NZ-1; k++ {
			i := g.Ind(n, k)
			dTmpD[i] = spectral2D.Dfdz2(tmpD, i, g.Oodz2) - kn2*tmpD[i]
			if c.DDC {
				dXiD[i] = c.Tau * (spectral2D.Dfdz2(xiD, i, g.Oodz2) - kn2*xiD[i])
			}
			if linearized {
				if c.DDC {
					dXiD[i] += -c.XiGrad * kn * psiD[i]
				}
				dTmpD[i] += -c.TmpGrad * kn * psiD[i]
			}
			dOmgD[i] = c.Pr * (spectral2D.Dfdz2(omgD, i, g.Oodz2) - kn2*omgD[i] + c.Ra*kn*tmpD[i])
			if c.DDC {
				dOmgD[i] += -c.RaXi * c.Tau * c.Pr * kn * xiD[i]
			}
		}
	}
}

// nonlinearDerivativesRange accumulates the advective convolution for
// target modes [nMin,nMax). The sine basis closes under products into
// three triad families per target mode n, plus the forcing of the mean
// profile by every perturbation mode and the advection of the mean
// gradient back onto mode n. The solute field in a double diffusive run
// is advected only through the linearized gradient term, matching the
// reduced model.
func (c *Convection) nonlinearDerivativesRange(nMin, nMax int) {
	var (
		g     = c.Grid
		a     = g.Aspect
		dz    = g.Dz
		tmpD  = c.Tmp.DataP
		omgD  = c.Omg.DataP
		psiD  = c.Psi.DataP
		dTmpD = c.DTmpdt.Current().DataP
		dOmgD = c.DOmgdt.Current().DataP
	)
	for n := nMin; n < nMax; n++ {
		if n == 0 {
			// Mean profile forcing, the horizontal average of the
			// advective flux divergence
			for k := 1; k < g.NZ-1; k++ {
				acc := dTmpD[k]
				for m := 1; m < g.NN; m++ {
					im := g.Ind(m, k)
					acc += -math.Pi / (2 * a) * float64(m) *
						(spectral2D.Dfdz(psiD, im, dz)*tmpD[im] +
							spectral2D.Dfdz(tmpD, im, dz)*psiD[im])
				}
				dTmpD[k] = acc
			}
			continue
		}
		for k := 1; k < g.NZ-1; k++ {
			var (
				in   = g.Ind(n, k)
				accT = dTmpD[in]
				accW = dOmgD[in]
			)
			// Advection of the mean profile gradient
			accT += -float64(n) * math.Pi / a * psiD[in] * spectral2D.Dfdz(tmpD, g.Ind(0, k), dz)
			// Triads with o = n - m
			for m := 1; m < n; m++ {
				var (
					o  = n - m
					im = g.Ind(m, k)
					io = g.Ind(o, k)
				)
				accT += -math.Pi / (2 * a) *
					(-float64(m)*spectral2D.Dfdz(psiD, io, dz)*tmpD[im] +
						float64(o)*spectral2D.Dfdz(tmpD, im, dz)*psiD[io])
				accW += -math.Pi / (2 * a) *
					(-float64(m)*spectral2D.Dfdz(psiD, io, dz)*omgD[im] +
						float64(o)*spectral2D.Dfdz(omgD, im, dz)*psiD[io])
			}
			// Triads with o = m - n
			for m := n + 1; m < g.NN; m++ {
				var (
					o  = m - n
					im = g.Ind(m, k)
					io = g.Ind(o, k)
				)
				accT += -math.Pi / (2 * a) *
					(float64(m)*spectral2D.Dfdz(psiD, io, dz)*tmpD[im] +
						float64(o)*spectral2D.Dfdz(tmpD, im, dz)*psiD[io])
				accW += -math.Pi / (2 * a) *
					(float64(m)*spectral2D.Dfdz(psiD, io, dz)*omgD[im] +
						float64(o)*spectral2D.Dfdz(omgD, im, dz)*psiD[io])
			}
			// Triads with o = n + m. Projecting the cos(m)sin(o) and
			// sin(m)cos(o) products back onto sin(n) flips the sign of
			// the vorticity sum relative to the first two families.
			for m := 1; m+n < g.NN; m++ {
				var (
					o  = n + m
					im = g.Ind(m, k)
					io = g.Ind(o, k)
				)
				accT += -math.Pi / (2 * a) *
					(float64(m)*spectral2D.Dfdz(psiD, io, dz)*tmpD[im] +
						float64(o)*spectral2D.Dfdz(tmpD, im, dz)*psiD[io])
				accW += math.Pi / (2 * a) *
					(float64(m)*spectral2D.Dfdz(psiD, io, dz)*omgD[im] +
						float64(o)*spectral2D.Dfdz(omgD, im, dz)*psiD[io])
			}
			dTmpD[in] = accT
			dOmgD[in] = accW
		}
	}
}
