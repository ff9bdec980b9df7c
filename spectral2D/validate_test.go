package spectral2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	var (
		g   = NewGrid(8, 3, 1)
		eps = 1.e-10
	)
	newState := func() (tmp, omg, psi []FieldCheck) {
		T, W, P := g.NewField(), g.NewField(), g.NewField()
		for k := 0; k < g.NZ; k++ {
			T.DataP[g.Ind(0, k)] = 1 - float64(k)*g.Dz
		}
		tmp = []FieldCheck{{Name: "tmp", M: T, Bottom: 1, Top: 0, Walls: true}}
		omg = []FieldCheck{{Name: "omg", M: W, Walls: true}}
		psi = []FieldCheck{{Name: "psi", M: P, Walls: true}}
		return
	}
	// A healthy state produces no violations
	{
		tmp, omg, psi := newState()
		checks := append(append(tmp, omg...), psi...)
		assert.Empty(t, Validate(eps, checks))
	}
	// NaN anywhere is reported once per field
	{
		tmp, _, _ := newState()
		tmp[0].M.DataP[g.Ind(1, 3)] = math.NaN()
		vs := Validate(eps, tmp)
		assert.Len(t, vs, 1)
		assert.Equal(t, NaNValue, vs[0].Kind)
		assert.Equal(t, 1, vs[0].N)
		assert.Equal(t, 3, vs[0].K)
	}
	// A drifted wall value is caught with its location
	{
		_, omg, _ := newState()
		omg[0].M.DataP[g.Ind(2, g.NZ-1)] = 0.001
		vs := Validate(eps, omg)
		assert.Len(t, vs, 1)
		assert.Equal(t, BoundaryValue, vs[0].Kind)
		assert.Equal(t, "omg", vs[0].Field)
		assert.Equal(t, 2, vs[0].N)
		assert.Equal(t, g.NZ-1, vs[0].K)
		assert.Equal(t, 0.001, vs[0].Have)
		assert.Contains(t, vs[0].String(), "boundary value in omg")
	}
	// Mode 0 honors the configured Dirichlet values, higher modes zero
	{
		tmp, _, _ := newState()
		tmp[0].M.DataP[g.Ind(0, 0)] = 0 // Should be 1 at the heated wall
		vs := Validate(eps, tmp)
		assert.Len(t, vs, 1)
		assert.Equal(t, 1., vs[0].Want)
	}
	// Derivative buffers skip the wall check
	{
		d := g.NewField()
		d.DataP[g.Ind(0, 0)] = 123
		assert.Empty(t, Validate(eps, []FieldCheck{{Name: "dTmpdt", M: d}}))
	}
}
