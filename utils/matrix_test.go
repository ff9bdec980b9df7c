package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.RawMatrix().Data, []float64{1, 4, 2, 5, 3, 6})
	}
	// Copy is independent of the source
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Copy()
		A.Set(0, 0, 100)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 100., A.At(0, 0))
	}
	// Mul
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := NewMatrix(3, 1, []float64{
			1,
			1,
			1,
		})
		B := M.Mul(A)
		assert.Equal(t, B.DataP, []float64{6, 15})
	}
	// Row and Col extraction
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, M.Row(1).DataP, []float64{4, 5, 6})
		assert.Equal(t, M.Col(2).DataP, []float64{3, 6})
		assert.Equal(t, M.Row(-1).DataP, []float64{4, 5, 6}) // Index from the end
	}
	// Chained elementwise operations
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := NewMatrix(2, 2, []float64{
			1, 1,
			1, 1,
		})
		M.Scale(2).Subtract(A).AddScalar(1)
		assert.Equal(t, M.DataP, []float64{2, 4, 6, 8})
		assert.Equal(t, 2., M.Min())
		assert.Equal(t, 8., M.Max())
		M.POW(2)
		assert.Equal(t, M.DataP, []float64{4, 16, 36, 64})
	}
	// Apply and Apply2
	{
		M := NewMatrix(1, 3, []float64{1, 2, 3})
		A := NewMatrix(1, 3, []float64{10, 20, 30})
		M.Apply2(func(x, y float64) float64 { return x + y }, A)
		assert.Equal(t, M.DataP, []float64{11, 22, 33})
		M.Apply(func(x float64) float64 { return -x })
		assert.Equal(t, M.DataP, []float64{-11, -22, -33})
	}
	// Writes to a read only matrix should panic
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
}

func TestSymTriDiagonal(t *testing.T) {
	var (
		d = []float64{2, 2, 2, 2}
		e = []float64{-1, -1, -1}
	)
	J := NewSymTriDiagonal(d, e)
	D := mat.NewDense(4, 4, nil)
	D.CloneFrom(J)
	assert.Equal(t, D.RawMatrix().Data, []float64{
		2, -1, 0, 0,
		-1, 2, -1, 0,
		0, -1, 2, -1,
		0, 0, -1, 2,
	})
	// The 1D Laplacian eigenvalues are 2-2cos(i*pi/(n+1))
	var eig mat.EigenSym
	ok := eig.Factorize(J, false)
	assert.True(t, ok)
	ev := eig.Values(nil)
	assert.InDeltaf(t, 2-2*0.80901699437494742410, ev[0], 0.000001, "smallest eigenvalue")
}
