package spectral2D

import (
	"fmt"
	"math"

	"github.com/notargets/goconvect/utils"
)

type ViolationKind uint8

const (
	NaNValue ViolationKind = iota
	BoundaryValue
)

var violationNames = []string{"NaN value", "boundary value"}

func (vk ViolationKind) String() string {
	return violationNames[vk]
}

type Violation struct {
	Field      string
	Kind       ViolationKind
	N, K       int
	Have, Want float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s in %s at (n,k) = (%d,%d): have %g, want %g",
		v.Kind, v.Field, v.N, v.K, v.Have, v.Want)
}

/*
FieldCheck names one matrix to validate. Walls requests the Dirichlet
wall check: mode 0 must hold Bottom and Top at k=0 and k=nZ-1, all
higher modes must vanish there. Derivative buffers are checked for NaN
only.
*/
type FieldCheck struct {
	Name        string
	M           utils.Matrix
	Bottom, Top float64
	Walls       bool
}

// Validate scans the listed fields and reports every violation found.
// An empty result means the state is healthy.
func Validate(eps float64, checks []FieldCheck) (violations []Violation) {
	for _, c := range checks {
		var (
			nN, nZ = c.M.Dims()
			data   = c.M.DataP
		)
		if utils.IsNan(c.M) {
			// One report per field is enough to abort on
			for i, val := range data {
				if math.IsNaN(val) {
					violations = append(violations, Violation{
						Field: c.Name, Kind: NaNValue, N: i / nZ, K: i % nZ, Have: val,
					})
					break
				}
			}
		}
		if !c.Walls {
			continue
		}
		for n := 0; n < nN; n++ {
			var bottom, top float64
			if n == 0 {
				bottom, top = c.Bottom, c.Top
			}
			if have := data[n*nZ]; math.Abs(have-bottom) > eps {
				violations = append(violations, Violation{
					Field: c.Name, Kind: BoundaryValue, N: n, K: 0, Have: have, Want: bottom,
				})
			}
			if have := data[n*nZ+nZ-1]; math.Abs(have-top) > eps {
				violations = append(violations, Violation{
					Field: c.Name, Kind: BoundaryValue, N: n, K: nZ - 1, Have: have, Want: top,
				})
			}
		}
	}
	return
}
