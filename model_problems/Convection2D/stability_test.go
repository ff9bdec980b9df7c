package Convection2D

import (
	"math"
	"testing"

	"github.com/notargets/goconvect/InputParameters"

	"github.com/notargets/goconvect/utils"

	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	/*
		The linearized equations decouple mode by mode, and the sine
		profile used as the initial condition is an exact eigenvector of
		the difference operator, so each mode reduces to the 2x2 system

			d/dt (tmp, psi) = [ -b, kn ; Pr Ra kn / b, -Pr b ] (tmp, psi)

		with b = 2/dz^2 (1 - cos(pi dz)) + kn^2. The dominant eigenvalue
		crosses zero at Ra = b^3/kn^2, about 767.5 on this grid versus
		8 pi^4 = 779.3 in the continuum, and the measured rate per
		sample window is s * 500 * dt.
	*/
	var (
		ip = &InputParameters.SimParameters{
			NZ: 10, NN: 5, Aspect: 1, Dt: 1.e-4, TotalTime: 2,
			Ra: 600, Pr: 0.5, Regime: "benard", InitType: "conduction",
		}
		c      = NewConvection(ip, 1, false)
		g      = c.Grid
		window = growthSampleSteps * c.Dt
		mu     = 2 * g.Oodz2 * (1 - math.Cos(math.Pi*g.Dz))
		kn2    = utils.POW(g.Wavenumber(1), 2)
		b      = mu + kn2
		raC    = b * b * b / kn2
	)
	// Subcritical: the slowest eigenvalue at Ra = 600 is s = -1.5057
	{
		c.Ra = 600
		rate := c.RunLinear(1)
		assert.True(t, rate < 0)
		assert.True(t, c.Time < c.TotalTime)
		assert.InDelta(t, -1.5057*window, rate, 0.002)
	}
	// Supercritical: s = +1.0898 at Ra = 900
	{
		c.Ra = 900
		rate := c.RunLinear(1)
		assert.True(t, rate > 0)
		assert.True(t, c.Time < c.TotalTime)
		assert.InDelta(t, 1.0898*window, rate, 0.002)
	}
	// The multistep scheme preserves the stationary threshold exactly:
	// at Ra = b^3/kn^2 the measured rate is roundoff
	{
		c.Ra = raC
		rate := c.RunLinear(1)
		assert.True(t, c.Time < c.TotalTime)
		assert.True(t, math.Abs(rate) < 1.e-6)
	}
	// The verdict flips across the threshold
	{
		c.Ra = 0.99 * raC
		rate := c.RunLinear(1)
		assert.True(t, rate < 0)
		c.Ra = 1.01 * raC
		rate = c.RunLinear(1)
		assert.True(t, rate > 0)
	}
	// Too short a run to settle returns the sentinel
	{
		c.Ra = 600
		c.TotalTime = 0.01
		assert.Equal(t, 0., c.RunLinear(1))
		c.TotalTime = 2
	}
	// Only interior modes can be tracked
	{
		assert.Panics(t, func() { c.RunLinear(0) })
		assert.Panics(t, func() { c.RunLinear(g.NN) })
	}
}

func TestGrowthRateDoubleDiffusive(t *testing.T) {
	/*
		Salt fingering: both gradients point up, temperature diffuses
		fast and stabilizes, the slowly diffusing solute destabilizes.
		In the 3x3 per mode system the direct branch turns unstable once
		RaXi - Ra exceeds roughly b^3/kn^2, so RaXi = 2000 grows and
		RaXi = 200 decays at Ra = 100. Dominant roots of the dispersion
		relation on this grid: s = +1.928 and s = -1.449.
	*/
	var (
		ip = &InputParameters.SimParameters{
			NZ: 10, NN: 5, Aspect: 1, Dt: 1.e-4, TotalTime: 3,
			Ra: 100, Pr: 0.5, RaXi: 2000, Tau: 0.1, DoubleDiffusive: true,
			Regime: "saltfinger", InitType: "conduction",
		}
		c      = NewConvection(ip, 1, false)
		window = growthSampleSteps * c.Dt
	)
	{
		rate := c.RunLinear(1)
		assert.True(t, rate > 0)
		assert.True(t, c.Time < c.TotalTime)
		assert.InDelta(t, 1.928*window, rate, 0.005)
	}
	{
		c.RaXi = 200
		rate := c.RunLinear(1)
		assert.True(t, rate < 0)
		assert.True(t, c.Time < c.TotalTime)
		assert.InDelta(t, -1.449*window, rate, 0.005)
	}
}
