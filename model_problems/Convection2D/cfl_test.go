package Convection2D

import (
	"math"
	"testing"

	"github.com/notargets/goconvect/InputParameters"

	"github.com/stretchr/testify/assert"
)

func TestPhysicalField(t *testing.T) {
	var (
		ip = &InputParameters.SimParameters{
			NZ: 11, NN: 3, Aspect: 2, Dt: 1.e-4, TotalTime: 1,
			Ra: 100, Pr: 1, Regime: "benard", InitType: "conduction",
		}
		c = NewConvection(ip, 1, false)
		g = c.Grid
	)
	c.Tmp.Scale(0)
	for k := 0; k < g.NZ; k++ {
		z := g.Z.DataP[k]
		c.Tmp.DataP[g.Ind(0, k)] = 1 - z
		c.Tmp.DataP[g.Ind(1, k)] = 0.3 * math.Sin(math.Pi*z)
	}
	field := c.PhysicalField(c.Tmp)
	nX, nZ := field.Dims()
	assert.Equal(t, g.NX, nX)
	assert.Equal(t, g.NZ, nZ)
	for _, i := range []int{0, 3, g.NX - 1} {
		for _, k := range []int{0, 4, g.NZ - 1} {
			var (
				x    = g.X.DataP[i]
				z    = g.Z.DataP[k]
				want = (1 - z) + 0.3*math.Sin(math.Pi*z)*math.Sin(g.Wavenumber(1)*x)
			)
			assert.True(t, near(want, field.DataP[i*g.NZ+k], 1.e-12))
		}
	}
}

func TestVelocities(t *testing.T) {
	var (
		ip = &InputParameters.SimParameters{
			NZ: 11, NN: 2, Aspect: 2, Dt: 1.e-4, TotalTime: 1,
			Ra: 100, Pr: 1, Regime: "benard", InitType: "conduction",
		}
		c = NewConvection(ip, 1, false)
		g = c.Grid
	)
	for k := 0; k < g.NZ; k++ {
		c.Psi.DataP[g.Ind(1, k)] = math.Sin(math.Pi * g.Z.DataP[k])
	}
	var (
		U, W = c.Velocities()
		kn   = g.Wavenumber(1)
		psiD = c.Psi.DataP
		ddz  = func(f []float64, i int) float64 { return (f[i+1] - f[i-1]) / (2 * g.Dz) }
	)
	for _, i := range []int{0, 5, g.NX - 1} {
		x := g.X.DataP[i]
		for k := 1; k < g.NZ-1; k++ {
			var (
				in    = g.Ind(1, k)
				wantU = ddz(psiD, in) * math.Sin(kn*x)
				wantW = -psiD[in] * kn * math.Cos(kn*x)
			)
			assert.True(t, near(wantU, U.DataP[i*g.NZ+k], 1.e-12))
			assert.True(t, near(wantW, W.DataP[i*g.NZ+k], 1.e-12))
		}
		// Wall rows carry no flow
		assert.Equal(t, 0., U.DataP[i*g.NZ])
		assert.Equal(t, 0., W.DataP[i*g.NZ+g.NZ-1])
	}
}

func TestCheckCFL(t *testing.T) {
	// A quiescent state imposes no advective limit
	{
		ip := &InputParameters.SimParameters{
			NZ: 11, NN: 2, Aspect: 1, Dt: 1.e-3, TotalTime: 1,
			Ra: 100, Pr: 1, Regime: "benard", InitType: "conduction",
		}
		c := NewConvection(ip, 1, false)
		assert.Equal(t, 1., c.CheckCFL())
		assert.Equal(t, 1.e-3, c.Dt)
	}
	// A strong circulation forces the ratio below one. With ModifyDt off
	// the step size itself is untouched.
	{
		ip := &InputParameters.SimParameters{
			NZ: 11, NN: 2, Aspect: 1, Dt: 1.e-3, TotalTime: 1,
			Ra: 100, Pr: 1, Regime: "benard", InitType: "conduction",
		}
		c := NewConvection(ip, 1, false)
		g := c.Grid
		for k := 0; k < g.NZ; k++ {
			c.Psi.DataP[g.Ind(1, k)] = 1000 * math.Sin(math.Pi*g.Z.DataP[k])
		}
		var (
			U, W       = c.Velocities()
			maxU, maxW float64
		)
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
		want := cflSafety * math.Min(g.Dx/maxU, g.Dz/maxW) / c.Dt
		f := c.CheckCFL()
		assert.True(t, f < 1)
		assert.True(t, near(want, f, 1.e-12))
		assert.Equal(t, 1.e-3, c.Dt)
		// With ModifyDt the shortened step becomes permanent and a second
		// check at the same state is clean
		c.ModifyDt = true
		dtOld := c.Dt
		f = c.CheckCFL()
		assert.True(t, f < 1)
		assert.True(t, near(f*dtOld, c.Dt, 1.e-14))
		assert.True(t, c.Dt < dtOld)
		assert.Equal(t, 1., c.CheckCFL())
	}
}
