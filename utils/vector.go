package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		v,
		v.RawVector().Data,
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	R = NewVector(n, ConstArray(n, val))
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.DataP }

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	var (
		data = v.DataP
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Linspace(begin, end float64) Vector {
	var (
		data = v.DataP
		n    = v.Len()
		h    = (end - begin) / float64(n-1)
	)
	for i := range data {
		data[i] = begin + float64(i)*h
	}
	data[n-1] = end
	return v
}

func (v Vector) Copy() (R Vector) {
	var (
		n     = v.Len()
		dataR = make([]float64, n)
	)
	copy(dataR, v.DataP)
	R = NewVector(n, dataR)
	return
}

func (v Vector) Add(a float64) Vector {
	var (
		data = v.DataP
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.DataP
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector {
	var (
		data  = v.DataP
		dataA = a.DataP
	)
	for i := range data {
		data[i] -= dataA[i]
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.DataP
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	var (
		data = v.DataP
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

// Non chainable methods
func (v Vector) ToMatrix() (M Matrix) {
	var (
		n     = v.Len()
		dataR = make([]float64, n)
	)
	copy(dataR, v.DataP)
	M = NewMatrix(n, 1, dataR)
	return
}

func (v Vector) Transpose() (M Matrix) {
	var (
		n     = v.Len()
		dataR = make([]float64, n)
	)
	copy(dataR, v.DataP)
	M = NewMatrix(1, n, dataR)
	return
}

func (v Vector) Mul(a Vector) (M Matrix) {
	M = v.ToMatrix().Mul(a.Transpose())
	return
}

func (v Vector) Dot(a Vector) (d float64) {
	var (
		data  = v.DataP
		dataA = a.DataP
	)
	for i, val := range data {
		d += val * dataA[i]
	}
	return
}

func (v Vector) Min() (min float64) {
	var (
		data = v.DataP
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
