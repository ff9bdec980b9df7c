package spectral2D

import (
	"github.com/notargets/goconvect/utils"
)

/*
History holds the two derivative buffers used by the two level
Adams-Bashforth scheme as an explicit ring: one slot is written during
the current step, the other holds the previous step's derivative.
Advance swaps the roles once per completed step.
*/
type History struct {
	Slots   [2]utils.Matrix
	current int
}

func NewHistory(g *Grid) (h *History) {
	h = &History{
		Slots: [2]utils.Matrix{g.NewField(), g.NewField()},
	}
	return
}

func (h *History) Current() utils.Matrix {
	return h.Slots[h.current]
}

func (h *History) Previous() utils.Matrix {
	return h.Slots[(h.current+1)%2]
}

// CurrentSlot exposes the active slot index so a mirrored copy of the
// buffers can follow the same role assignment
func (h *History) CurrentSlot() int {
	return h.current
}

func (h *History) Advance() {
	h.current = (h.current + 1) % 2
}

func (h *History) Reset() {
	h.current = 0
	for i := range h.Slots {
		h.Slots[i].Scale(0)
	}
}
