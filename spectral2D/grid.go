package spectral2D

import (
	"fmt"
	"math"

	"github.com/notargets/goconvect/utils"
)

/*
Hybrid spectral discretization of a 2D box with aspect ratio a:
horizontal structure is carried by Fourier sine modes with wavenumber
n*pi/a, vertical structure by a uniform finite difference grid of nZ
levels spanning [0,1]. Mode 0 holds the horizontally averaged profile.

A quantity q(x,z) is stored as a matrix Q of dimension nN x nZ, where
Q.DataP[n*nZ+k] is the coefficient of mode n at level k:

	q(x,z) = Q(0,z) + Sum_n Q(n,z) sin(n pi x / a)
*/
type Grid struct {
	NZ, NN, NX int     // Vertical levels, Fourier modes, horizontal points
	Aspect     float64 // Width of the box, height is 1
	Dz, Dx     float64
	Oodz2      float64 // One over dz^2
	Z, X       utils.Vector
}

func NewGrid(nZ, nN int, aspect float64) (g *Grid) {
	if nZ < 4 || nN < 1 || aspect <= 0 {
		err := fmt.Errorf("unusable grid dimensions: nZ = %d, nN = %d, aspect = %v", nZ, nN, aspect)
		panic(err)
	}
	nX := int(math.Round(float64(nZ) * aspect))
	g = &Grid{
		NZ:     nZ,
		NN:     nN,
		NX:     nX,
		Aspect: aspect,
		Dz:     1. / float64(nZ-1),
		Dx:     aspect / float64(nX-1),
		Z:      utils.NewVector(nZ).Linspace(0, 1),
		X:      utils.NewVector(nX).Linspace(0, aspect),
	}
	g.Oodz2 = 1. / (g.Dz * g.Dz)
	return
}

// Wavenumber of horizontal mode n
func (g *Grid) Wavenumber(n int) float64 {
	return float64(n) * math.Pi / g.Aspect
}

// Ind flattens (mode, level) into the storage index of a field matrix
func (g *Grid) Ind(n, k int) int {
	return n*g.NZ + k
}

// NewField allocates a zeroed mode x level matrix on the grid
func (g *Grid) NewField() utils.Matrix {
	return utils.NewMatrix(g.NN, g.NZ)
}
