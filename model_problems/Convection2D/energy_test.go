package Convection2D

import (
	"math"
	"testing"

	"github.com/notargets/goconvect/InputParameters"

	"github.com/stretchr/testify/assert"
)

func TestKineticEnergy(t *testing.T) {
	/*
		For psi(n,z) = A sin(pi z) the quadrature has a closed form: the
		centered difference of the sine profile is
		cos(pi z_k) sin(pi dz)/dz, and over the interior levels
		sum cos^2(pi z_k) = (nZ-3)/2 and sum sin^2(pi z_k) = (nZ-1)/2
		exactly, leaving

		ke = a/(4(nZ-1)) A^2 [ (sin(pi dz)/dz)^2 (nZ-3)/2 + kn^2 (nZ-1)/2 ]
	*/
	{
		var (
			ip = &InputParameters.SimParameters{
				NZ: 11, NN: 3, Aspect: 2, Dt: 1.e-4, TotalTime: 1,
				Ra: 100, Pr: 1, Regime: "benard", InitType: "conduction",
			}
			c = NewConvection(ip, 1, false)
			g = c.Grid
		)
		for k := 0; k < g.NZ; k++ {
			c.Psi.DataP[g.Ind(1, k)] = math.Sin(math.Pi * g.Z.DataP[k])
		}
		var (
			dPsi   = math.Sin(math.Pi*g.Dz) / g.Dz
			weight = g.Aspect / float64(4*(g.NZ-1))
			kn     = g.Wavenumber(1)
			want   = weight * (dPsi*dPsi*float64(g.NZ-3)/2 + kn*kn*float64(g.NZ-1)/2)
		)
		assert.True(t, near(want, c.KineticEnergyForMode(1), 1.e-12))
		assert.Equal(t, 0., c.KineticEnergyForMode(0))
		assert.Equal(t, 0., c.KineticEnergyForMode(2))
		assert.True(t, near(want, c.KineticEnergy(), 1.e-12))
		// A second mode contributes independently
		for k := 0; k < g.NZ; k++ {
			c.Psi.DataP[g.Ind(2, k)] = 0.5 * math.Sin(math.Pi*g.Z.DataP[k])
		}
		kn2 := g.Wavenumber(2)
		want2 := weight * 0.25 * (dPsi*dPsi*float64(g.NZ-3)/2 + kn2*kn2*float64(g.NZ-1)/2)
		assert.True(t, near(want2, c.KineticEnergyForMode(2), 1.e-12))
		assert.True(t, near(want+want2, c.KineticEnergy(), 1.e-12))
	}
	// The trapezoid sum approaches the continuum value
	// a/4 (pi^2/2 + kn^2/2) = pi^2/4 for a unit box as nZ grows
	{
		var (
			errPrev = math.Inf(1)
			errLast float64
		)
		for _, nZ := range []int{21, 41, 81} {
			ip := &InputParameters.SimParameters{
				NZ: nZ, NN: 2, Aspect: 1, Dt: 1.e-4, TotalTime: 1,
				Ra: 100, Pr: 1, Regime: "benard", InitType: "conduction",
			}
			c := NewConvection(ip, 1, false)
			g := c.Grid
			for k := 0; k < g.NZ; k++ {
				c.Psi.DataP[g.Ind(1, k)] = math.Sin(math.Pi * g.Z.DataP[k])
			}
			errLast = math.Abs(c.KineticEnergy() - math.Pi*math.Pi/4)
			assert.True(t, errLast < errPrev)
			errPrev = errLast
		}
		assert.True(t, errLast < 0.04)
	}
}
