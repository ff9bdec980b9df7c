package Convection2D

import (
	"github.com/notargets/goconvect/spectral2D"
	"github.com/notargets/goconvect/utils"
)

// KineticEnergyForMode integrates (u^2 + w^2)/2 contributed by mode n
// over the box. The horizontal quadrature of the sine and cosine
// factors is exact and leaves a vertical trapezoid sum of
// (dpsi/dz)^2 + (kn psi)^2.
func (c *Convection) KineticEnergyForMode(n int) (ke float64) {
	var (
		g    = c.Grid
		psiD = c.Psi.DataP
		kn   = g.Wavenumber(n)
	)
	ke += utils.POW(kn*psiD[g.Ind(n, 0)], 2) / 2
	ke += utils.POW(kn*psiD[g.Ind(n, g.NZ-1)], 2) / 2
	for k := 1; k < g.NZ-1; k++ {
		in := g.Ind(n, k)
		ke += utils.POW(spectral2D.Dfdz(psiD, in, g.Dz), 2) + utils.POW(kn*psiD[in], 2)
	}
	ke *= g.Aspect / float64(4*(g.NZ-1))
	return
}

// KineticEnergy sums the contribution of every mode
func (c *Convection) KineticEnergy() (ke float64) {
	for n := 0; n < c.Grid.NN; n++ {
		ke += c.KineticEnergyForMode(n)
	}
	return
}
