package Convection2D

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/notargets/gocca"

	"github.com/notargets/goconvect/spectral2D"

	"github.com/notargets/goconvect/utils"
)

/*
DeviceBackend mirrors the field state in OCCA device memory and runs
the step phases as OKL kernels. Problem dimensions are compiled into
the kernel preamble, the tridiagonal solver coefficients are uploaded
once at construction, and fields stay resident between Push and Sync.

Derivative histories keep their host side slot parity: each history is
two device buffers, name0 and name1, and kernels receive the one the
host currently designates. Advancing the history on the host therefore
flips the device buffers too, no device copy needed.
*/
type DeviceBackend struct {
	c          *Convection
	device     *gocca.OCCADevice
	kp         *utils.KernelProgram
	fieldBytes int64
}

func NewDeviceBackend(c *Convection, deviceConfig string) (db *DeviceBackend, err error) {
	var (
		g      = c.Grid
		device *gocca.OCCADevice
	)
	if device, err = gocca.NewDevice(deviceConfig); err != nil {
		return nil, fmt.Errorf("unable to create OCCA device from %s: %v", deviceConfig, err)
	}
	db = &DeviceBackend{
		c:      c,
		device: device,
		kp:     utils.NewKernelProgram(device, utils.Config{}),
	}
	db.fieldBytes = int64(g.NN * g.NZ * db.kp.GetFloatSize())

	db.kp.AddIntConstant("NZ", g.NZ)
	db.kp.AddIntConstant("NN", g.NN)
	db.kp.AddRealConstant("A", g.Aspect)
	db.kp.AddRealConstant("DZ", g.Dz)
	db.kp.AddRealConstant("OODZ2", g.Oodz2)
	db.kp.AddRealConstant("PI", math.Pi)

	for _, name := range db.bufferNames() {
		db.kp.AllocateMemory(name, db.fieldBytes)
	}
	db.kp.AllocateMemory("sub", int64(g.NZ*db.kp.GetFloatSize()))
	db.kp.AllocateMemory("wk1", db.fieldBytes)
	db.kp.AllocateMemory("wk2", db.fieldBytes)
	db.uploadSolver()

	for name, src := range db.kernelSources() {
		if _, err = db.kp.BuildKernel(src, name); err != nil {
			return nil, err
		}
	}
	return
}

// Free releases the device resources. The backend is unusable afterward.
func (db *DeviceBackend) Free() {
	db.kp.Free()
	db.device.Free()
}

func (db *DeviceBackend) bufferNames() (names []string) {
	names = []string{
		"tmp", "omg", "psi",
		"dTmpdt0", "dTmpdt1", "dOmgdt0", "dOmgdt1",
	}
	if db.c.DDC {
		names = append(names, "xi", "dXidt0", "dXidt1")
	}
	return
}

// uploadSolver flattens the per mode elimination coefficients and
// copies them to the device, so host and device sweeps use identical
// bits
func (db *DeviceBackend) uploadSolver() {
	var (
		g  = db.c.Grid
		ts = db.c.Solver
	)
	db.copySliceToDevice("sub", ts.Sub)
	wk1 := make([]float64, g.NN*g.NZ)
	wk2 := make([]float64, g.NN*g.NZ)
	for n := 0; n < g.NN; n++ {
		copy(wk1[n*g.NZ:], ts.Wk1[n])
		copy(wk2[n*g.NZ:], ts.Wk2[n])
	}
	db.copySliceToDevice("wk1", wk1)
	db.copySliceToDevice("wk2", wk2)
}

func (db *DeviceBackend) copySliceToDevice(name string, data []float64) {
	db.kp.GetMemory(name).CopyFrom(unsafe.Pointer(&data[0]),
		int64(len(data)*db.kp.GetFloatSize()))
}

func (db *DeviceBackend) copySliceFromDevice(data []float64, name string) {
	db.kp.GetMemory(name).CopyTo(unsafe.Pointer(&data[0]),
		int64(len(data)*db.kp.GetFloatSize()))
}

func (db *DeviceBackend) pushHistory(name string, h *spectral2D.History) {
	for i := range h.Slots {
		db.copySliceToDevice(fmt.Sprintf("%s%d", name, i), h.Slots[i].DataP)
	}
}

func (db *DeviceBackend) syncHistory(h *spectral2D.History, name string) {
	for i := range h.Slots {
		db.copySliceFromDevice(h.Slots[i].DataP, fmt.Sprintf("%s%d", name, i))
	}
}

// Push uploads the full host state to the device
func (db *DeviceBackend) Push() {
	var (
		c = db.c
	)
	db.copySliceToDevice("tmp", c.Tmp.DataP)
	db.copySliceToDevice("omg", c.Omg.DataP)
	db.copySliceToDevice("psi", c.Psi.DataP)
	db.pushHistory("dTmpdt", c.DTmpdt)
	db.pushHistory("dOmgdt", c.DOmgdt)
	if c.DDC {
		db.copySliceToDevice("xi", c.Xi.DataP)
		db.pushHistory("dXidt", c.DXidt)
	}
}

// Sync downloads the full device state back to the host fields
func (db *DeviceBackend) Sync() {
	var (
		c = db.c
	)
	db.copySliceFromDevice(c.Tmp.DataP, "tmp")
	db.copySliceFromDevice(c.Omg.DataP, "omg")
	db.copySliceFromDevice(c.Psi.DataP, "psi")
	db.syncHistory(c.DTmpdt, "dTmpdt")
	db.syncHistory(c.DOmgdt, "dOmgdt")
	if c.DDC {
		db.copySliceFromDevice(c.Xi.DataP, "xi")
		db.syncHistory(c.DXidt, "dXidt")
	}
}

func (db *DeviceBackend) mem(name string) *gocca.OCCAMemory {
	return db.kp.GetMemory(name)
}

func (db *DeviceBackend) slotMem(name string, slot int) *gocca.OCCAMemory {
	return db.mem(fmt.Sprintf("%s%d", name, slot))
}

func (db *DeviceBackend) curMem(name string, h *spectral2D.History) *gocca.OCCAMemory {
	return db.slotMem(name, h.CurrentSlot())
}

func (db *DeviceBackend) prevMem(name string, h *spectral2D.History) *gocca.OCCAMemory {
	return db.slotMem(name, 1-h.CurrentSlot())
}

// run launches a kernel over all modes with innerX work items per mode.
// Kernel failure is fatal, the batch cannot continue on a sick device.
func (db *DeviceBackend) run(name string, innerX int, args ...interface{}) {
	err := db.kp.RunKernel(name,
		gocca.OCCADim{X: uint64(db.c.Grid.NN), Y: 1, Z: 1},
		gocca.OCCADim{X: uint64(innerX), Y: 1, Z: 1},
		args...)
	if err != nil {
		panic(err)
	}
}

func (db *DeviceBackend) ComputeLinear(start int, linearized bool) {
	var (
		c   = db.c
		lin int
	)
	if linearized {
		lin = 1
	}
	if c.DDC {
		db.run("linearDerivatives", c.Grid.NZ,
			start, lin, c.Ra, c.Pr, c.TmpGrad, c.RaXi, c.Tau, c.XiGrad,
			db.mem("tmp"), db.mem("omg"), db.mem("psi"), db.mem("xi"),
			db.curMem("dTmpdt", c.DTmpdt), db.curMem("dOmgdt", c.DOmgdt),
			db.curMem("dXidt", c.DXidt))
		return
	}
	db.run("linearDerivatives", c.Grid.NZ,
		start, lin, c.Ra, c.Pr, c.TmpGrad,
		db.mem("tmp"), db.mem("omg"), db.mem("psi"),
		db.curMem("dTmpdt", c.DTmpdt), db.curMem("dOmgdt", c.DOmgdt))
}

func (db *DeviceBackend) ComputeNonlinear() {
	var (
		c = db.c
	)
	db.run("nonlinearDerivatives", c.Grid.NZ,
		db.mem("tmp"), db.mem("omg"), db.mem("psi"),
		db.curMem("dTmpdt", c.DTmpdt), db.curMem("dOmgdt", c.DOmgdt))
}

func (db *DeviceBackend) UpdateFields(f float64) {
	var (
		c = db.c
	)
	if c.DDC {
		db.run("updateFields", c.Grid.NZ,
			f, c.Dt,
			db.mem("tmp"), db.mem("omg"), db.mem("xi"),
			db.curMem("dTmpdt", c.DTmpdt), db.prevMem("dTmpdt", c.DTmpdt),
			db.curMem("dOmgdt", c.DOmgdt), db.prevMem("dOmgdt", c.DOmgdt),
			db.curMem("dXidt", c.DXidt), db.prevMem("dXidt", c.DXidt))
		return
	}
	db.run("updateFields", c.Grid.NZ,
		f, c.Dt,
		db.mem("tmp"), db.mem("omg"),
		db.curMem("dTmpdt", c.DTmpdt), db.prevMem("dTmpdt", c.DTmpdt),
		db.curMem("dOmgdt", c.DOmgdt), db.prevMem("dOmgdt", c.DOmgdt))
}

func (db *DeviceBackend) SolvePsi() {
	db.run("solvePsi", 1,
		db.mem("omg"), db.mem("psi"),
		db.mem("sub"), db.mem("wk1"), db.mem("wk2"))
}
