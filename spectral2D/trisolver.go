package spectral2D

import "github.com/notargets/goconvect/utils"

/*
ThomasSolver recovers the streamfunction from the vorticity one mode at
a time. For mode n the discrete Helmholtz system

	-oodz2*psi[k-1] + (2*oodz2 + kn^2)*psi[k] - oodz2*psi[k+1] = omg[k]

holds at interior levels, with psi pinned to zero at both walls. The
matrix depends only on the grid and the mode wavenumber, so the forward
elimination coefficients are computed once per mode at construction and
each Solve is a single forward/backward sweep, O(nZ).
*/
type ThomasSolver struct {
	NZ  int
	Sub []float64   // Sub-diagonal, shared across modes
	Wk1 [][]float64 // Per mode inverse pivots from forward elimination
	Wk2 [][]float64 // Per mode eliminated super-diagonal
}

func NewThomasSolver(g *Grid) (ts *ThomasSolver) {
	var (
		nZ, nN = g.NZ, g.NN
		oodz2  = g.Oodz2
	)
	ts = &ThomasSolver{
		NZ:  nZ,
		Sub: make([]float64, nZ),
		Wk1: make([][]float64, nN),
		Wk2: make([][]float64, nN),
	}
	for k := 1; k < nZ-1; k++ {
		ts.Sub[k] = -oodz2
	}
	for n := 0; n < nN; n++ {
		var (
			kn2 = utils.POW(g.Wavenumber(n), 2)
			wk1 = make([]float64, nZ)
			wk2 = make([]float64, nZ)
		)
		wk1[0] = 1 // Wall rows are identity
		wk2[0] = 0
		for k := 1; k < nZ-1; k++ {
			b := 2*oodz2 + kn2
			wk1[k] = 1. / (b - ts.Sub[k]*wk2[k-1])
			wk2[k] = -oodz2 * wk1[k]
		}
		wk1[nZ-1] = 1. / (1 - ts.Sub[nZ-1]*wk2[nZ-2])
		ts.Wk1[n] = wk1
		ts.Wk2[n] = wk2
	}
	return
}

// Solve writes psi for mode n from omg, both length NZ slices of the
// mode's vertical profile. The caller guarantees omg vanishes at the
// walls; psi is written in place and vanishes there exactly.
func (ts *ThomasSolver) Solve(psi, omg []float64, n int) {
	var (
		nZ       = ts.NZ
		sub      = ts.Sub
		wk1, wk2 = ts.Wk1[n], ts.Wk2[n]
	)
	// Forward substitution using the precomputed elimination
	psi[0] = omg[0] * wk1[0]
	for k := 1; k < nZ; k++ {
		psi[k] = (omg[k] - sub[k]*psi[k-1]) * wk1[k]
	}
	// Back substitution
	for k := nZ - 2; k >= 0; k-- {
		psi[k] -= wk2[k] * psi[k+1]
	}
}
