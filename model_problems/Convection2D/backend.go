package Convection2D

import "sync"

/*
Backend runs the four phases of a timestep on some compute resource.
The host backend works directly on the Convection field storage, the
device backend mirrors that storage in device memory and runs OCCA
kernels over it. Any two backends stepped from the same state must
agree to floating point roundoff after every phase.

Push and Sync bracket device residency: Push uploads host state before
a run, Sync downloads it at a checkpoint such as a snapshot, an energy
sample or a validation pass. On the host both are no-ops.
*/
type Backend interface {
	Push()
	ComputeLinear(start int, linearized bool)
	ComputeNonlinear()
	UpdateFields(f float64)
	SolvePsi()
	Sync()
}

type HostBackend struct {
	c *Convection
}

func NewHostBackend(c *Convection) (hb *HostBackend) {
	hb = &HostBackend{c: c}
	return
}

func (hb *HostBackend) Push() {}

func (hb *HostBackend) Sync() {}

func (hb *HostBackend) ComputeLinear(start int, linearized bool) {
	hb.c.parallelOverModes(func(nMin, nMax int) {
		hb.c.linearDerivativesRange(nMin, nMax, start, linearized)
	})
}

func (hb *HostBackend) ComputeNonlinear() {
	hb.c.parallelOverModes(func(nMin, nMax int) {
		hb.c.nonlinearDerivativesRange(nMin, nMax)
	})
}

func (hb *HostBackend) UpdateFields(f float64) {
	hb.c.parallelOverModes(func(nMin, nMax int) {
		hb.c.updateFieldsRange(nMin, nMax, f)
	})
}

func (hb *HostBackend) SolvePsi() {
	hb.c.parallelOverModes(func(nMin, nMax int) {
		hb.c.solvePsiRange(nMin, nMax)
	})
}

// parallelOverModes fans a mode range worker out over the partition
// map. Workers read shared field state and write only their own target
// mode rows, so no synchronization beyond the join is needed.
func (c *Convection) parallelOverModes(work func(nMin, nMax int)) {
	var (
		pm = c.Partitions
	)
	if pm.ParallelDegree == 1 {
		work(0, c.Grid.NN)
		return
	}
	wg := sync.WaitGroup{}
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			work(pm.GetBucketRange(np))
			wg.Done()
		}(np)
	}
	wg.Wait()
}
