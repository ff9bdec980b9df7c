package Convection2D

import (
	"math"

	"github.com/notargets/goconvect/spectral2D"
	"github.com/notargets/goconvect/utils"
)

// Advective limit safety factor
const cflSafety = 0.9

// Velocities reconstructs the physical space velocity components on the
// nX x nZ grid from the streamfunction modes: u = dpsi/dz and
// w = -dpsi/dx. Wall rows are left zero, only interior extrema feed the
// timestep check.
func (c *Convection) Velocities() (U, W utils.Matrix) {
	var (
		g    = c.Grid
		psiD = c.Psi.DataP
	)
	U, W = utils.NewMatrix(g.NX, g.NZ), utils.NewMatrix(g.NX, g.NZ)
	var (
		uD, wD = U.DataP, W.DataP
	)
	for i := 0; i < g.NX; i++ {
		x := g.X.DataP[i]
		for k := 1; k < g.NZ-1; k++ {
			var u, w float64
			for n := 1; n < g.NN; n++ {
				var (
					kn = g.Wavenumber(n)
					in = g.Ind(n, k)
				)
				u += spectral2D.Dfdz(psiD, in, g.Dz) * math.Sin(kn*x)
				w += -psiD[in] * kn * math.Cos(kn*x)
			}
			uD[i*g.NZ+k] = u
			wD[i*g.NZ+k] = w
		}
	}
	return
}

// CheckCFL estimates the largest stable timestep from the current
// velocity extrema and returns the ratio of the next step to the one
// just taken, at most 1. With ModifyDt set, Dt itself is rescaled and
// the ratio feeds the variable step form of the integrator; otherwise
// the ratio damps a single step and Dt is left alone.
func (c *Convection) CheckCFL() (f float64) {
	var (
		g          = c.Grid
		U, W       = c.Velocities()
		maxU, maxW float64
	)
	f = 1
	for _, u := range U.DataP {
		if math.Abs(u) > maxU {
			maxU = math.Abs(u)
		}
	}
	for _, w := range W.DataP {
		if math.Abs(w) > maxW {
			maxW = math.Abs(w)
		}
	}
	if maxU == 0 && maxW == 0 {
		return
	}
	dtIdeal := math.Inf(1)
	if maxU > 0 {
		dtIdeal = g.Dx / maxU
	}
	if maxW > 0 && g.Dz/maxW < dtIdeal {
		dtIdeal = g.Dz / maxW
	}
	dtIdeal *= cflSafety
	if dtIdeal < c.Dt {
		f = dtIdeal / c.Dt
		if c.ModifyDt {
			c.Dt = dtIdeal
		}
	}
	return
}
