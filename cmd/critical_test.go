package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/goconvect/InputParameters"
	"github.com/notargets/goconvect/model_problems/Convection2D"
)

/*
For mode n with wavenumber kn on the discrete grid, the conductive
state loses stability at Ra = b^3/kn^2 where b is the discrete
Helmholtz eigenvalue (2/dz^2)(1-cos(pi dz)) + kn^2. For nZ=10, a=1,
n=1 that is about 767.5, so a [600, 900] bracket must close on it.
*/
func TestBisectCriticalRa(t *testing.T) {
	ip := &InputParameters.SimParameters{
		NZ: 10, NN: 5, Aspect: 1,
		Dt: 1.e-4, TotalTime: 2,
		Ra: 800, Pr: 0.5,
		Regime:   "benard",
		InitType: "conduction",
	}
	c := Convection2D.NewConvection(ip, 1, false)
	raCrit := BisectCriticalRa(c, 1, 600, 900, 2)
	assert.InDelta(t, 767.5, raCrit, 8)
	// The measured rate at the located bracket is marginal
	c.Ra = raCrit
	rate := c.RunLinear(1)
	assert.InDelta(t, 0, rate, 1.e-3)
}
