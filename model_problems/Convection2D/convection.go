package Convection2D

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/notargets/goconvect/InputParameters"

	"github.com/notargets/goconvect/spectral2D"

	"github.com/notargets/goconvect/utils"
)

/*
	Boussinesq convection in a 2D box, hybrid spectral discretization:
	horizontal Fourier sine modes, finite differenced vertical profiles.

	Each step the linear (diffusion + buoyancy) and nonlinear (triad
	advection) terms are evaluated into the current derivative slot, the
	fields advance with a two level Adams-Bashforth formula, then the
	streamfunction is recovered from vorticity with one tridiagonal solve
	per mode. The previous derivative slot supplies the multistep history.
*/
type Convection struct {
	// Input parameters
	Ra, Pr           float64 // Thermal Rayleigh and Prandtl numbers
	RaXi, Tau        float64 // Solutal Rayleigh number, diffusivity ratio
	DDC              bool    // Evolve the solute field
	Regime           RegimeType
	Case             InitType
	Dt               float64
	TotalTime        float64
	ModifyDt         bool // Shrink Dt when the CFL bound is breached
	TimeBetweenSaves float64
	KESaveInterval   float64
	CFLCheckInterval float64
	ValidateEvery    int // Steps between invariant checks, 0 disables
	SaveFolder       string
	ICFile           string
	Grid             *spectral2D.Grid
	Solver           *spectral2D.ThomasSolver
	// State, one matrix row per mode
	Tmp, Omg, Psi  utils.Matrix
	Xi             utils.Matrix // Allocated only for double diffusive runs
	DTmpdt, DOmgdt *spectral2D.History
	DXidt          *spectral2D.History
	// Mean gradient signs, set by the regime
	TmpGrad, XiGrad float64
	Time            float64
	ParallelDegree  int // Number of go routines to use for parallel execution
	Partitions      *utils.PartitionMap
	backend         Backend
	chart           ChartState
	saveNumber      int
	keCurrent       float64
	kePrev          float64
}

// Epsilon bounds the acceptable drift of the Dirichlet wall values and
// closes the floating point time comparisons in the run drivers.
const Epsilon = 1e-10

func NewConvection(ip *InputParameters.SimParameters, ProcLimit int, verbose bool) (c *Convection) {
	c = &Convection{
		Ra:               ip.Ra,
		Pr:               ip.Pr,
		RaXi:             ip.RaXi,
		Tau:              ip.Tau,
		DDC:              ip.DoubleDiffusive,
		Regime:           NewRegimeType(ip.Regime),
		Case:             NewInitType(ip.InitType),
		Dt:               ip.Dt,
		TotalTime:        ip.TotalTime,
		ModifyDt:         ip.ModifyDt,
		TimeBetweenSaves: ip.TimeBetweenSaves,
		KESaveInterval:   ip.KESaveInterval,
		CFLCheckInterval: ip.CFLCheckInterval,
		ValidateEvery:    ip.ValidateEvery,
		SaveFolder:       ip.SaveFolder,
		ICFile:           ip.ICFile,
		Grid:             spectral2D.NewGrid(ip.NZ, ip.NN, ip.Aspect),
	}
	if c.Dt <= 0 {
		err := fmt.Errorf("timestep must be positive, have %v", c.Dt)
		panic(err)
	}
	if c.TimeBetweenSaves <= 0 {
		c.TimeBetweenSaves = c.TotalTime
	}
	if c.KESaveInterval <= 0 {
		c.KESaveInterval = 1e-4
	}
	if c.CFLCheckInterval <= 0 {
		c.CFLCheckInterval = 1e4 * c.Dt
	}
	c.TmpGrad, c.XiGrad = c.Regime.Gradients()

	c.Solver = spectral2D.NewThomasSolver(c.Grid)

	c.Tmp = c.Grid.NewField()
	c.Omg = c.Grid.NewField()
	c.Psi = c.Grid.NewField()
	c.DTmpdt = spectral2D.NewHistory(c.Grid)
	c.DOmgdt = spectral2D.NewHistory(c.Grid)
	if c.DDC {
		c.Xi = c.Grid.NewField()
		c.DXidt = spectral2D.NewHistory(c.Grid)
	}

	c.SetParallelDegree(ProcLimit, c.Grid.NN)
	c.backend = NewHostBackend(c)

	if c.SaveFolder != "" {
		if err := os.MkdirAll(c.SaveFolder, 0755); err != nil {
			panic(err)
		}
	}

	switch c.Case {
	case CONDUCTION:
		perturbation := ip.Perturbation
		if perturbation == 0 {
			perturbation = 0.01
		}
		c.SetConductionConditions(perturbation)
	case SNAPSHOT:
		if err := c.Load(c.ICFile); err != nil {
			panic(err)
		}
	}

	if verbose {
		fmt.Printf("Boussinesq Convection in 2 Dimensions\n")
		fmt.Printf("Using %d go routines in parallel\n", c.Partitions.ParallelDegree)
		fmt.Printf("Solving %s, initial conditions: %s\n", c.Regime.Print(), c.Case.Print())
		fmt.Printf("Ra = %8.2f, Pr = %8.4f", c.Ra, c.Pr)
		if c.DDC {
			fmt.Printf(", RaXi = %8.2f, Tau = %8.4f", c.RaXi, c.Tau)
		}
		fmt.Printf("\n")
		fmt.Printf("Dt = %8.6f, Vertical Levels NZ = %d, Fourier Modes NN = %d, Aspect = %5.2f\n\n\n",
			c.Dt, c.Grid.NZ, c.Grid.NN, c.Grid.Aspect)
	}
	return
}

func (c *Convection) SetParallelDegree(ProcLimit, Nmax int) {
	if ProcLimit != 0 {
		c.ParallelDegree = ProcLimit
	} else {
		c.ParallelDegree = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(runtime.NumCPU())
	if c.ParallelDegree > Nmax {
		c.ParallelDegree = 1
	}
	c.Partitions = utils.NewPartitionMap(c.ParallelDegree, Nmax)
}

// Backend returns the compute backend currently driving the step phases
func (c *Convection) Backend() Backend {
	return c.backend
}

// UseDevice swaps the host backend for an accelerator resident one. The
// deviceConfig string is OCCA device properties JSON, eg {"mode": "Serial"}.
func (c *Convection) UseDevice(deviceConfig string) (err error) {
	var (
		db *DeviceBackend
	)
	if db, err = NewDeviceBackend(c, deviceConfig); err != nil {
		return fmt.Errorf("unable to initialize device backend: %v", err)
	}
	c.backend = db
	return
}

// Reinit zeroes all state and history so the simulation object can be
// rerun, for instance between bisection iterates on Ra
func (c *Convection) Reinit() {
	c.Tmp.Scale(0)
	c.Omg.Scale(0)
	c.Psi.Scale(0)
	c.DTmpdt.Reset()
	c.DOmgdt.Reset()
	if c.DDC {
		c.Xi.Scale(0)
		c.DXidt.Reset()
	}
	c.Time = 0
	c.keCurrent, c.kePrev = 0, 0
}

func (c *Convection) advanceHistories() {
	c.DTmpdt.Advance()
	c.DOmgdt.Advance()
	if c.DDC {
		c.DXidt.Advance()
	}
}

// ProbeLevel is the interior level used for growth rate tracking and the
// benchmark table
func (c *Convection) ProbeLevel() (k int) {
	k = c.Grid.NZ / 3
	if k < 1 {
		k = 1
	}
	if k > c.Grid.NZ-2 {
		k = c.Grid.NZ - 2
	}
	return
}

func (c *Convection) wallValues(grad float64) (bottom, top float64) {
	if grad == -1 {
		return 1, 0
	}
	return 0, 1
}

// CheckState runs the invariant validation pass over all fields and
// derivative buffers and returns the structured violation report
func (c *Convection) CheckState() (violations []spectral2D.Violation) {
	var (
		tmpBottom, tmpTop = c.wallValues(c.TmpGrad)
	)
	checks := []spectral2D.FieldCheck{
		{Name: "tmp", M: c.Tmp, Bottom: tmpBottom, Top: tmpTop, Walls: true},
		{Name: "omg", M: c.Omg, Walls: true},
		{Name: "psi", M: c.Psi, Walls: true},
		{Name: "dTmpdt", M: c.DTmpdt.Current()},
		{Name: "dTmpdt.prev", M: c.DTmpdt.Previous()},
		{Name: "dOmgdt", M: c.DOmgdt.Current()},
		{Name: "dOmgdt.prev", M: c.DOmgdt.Previous()},
	}
	if c.DDC {
		xiBottom, xiTop := c.wallValues(c.XiGrad)
		checks = append(checks,
			spectral2D.FieldCheck{Name: "xi", M: c.Xi, Bottom: xiBottom, Top: xiTop, Walls: true},
			spectral2D.FieldCheck{Name: "dXidt", M: c.DXidt.Current()},
			spectral2D.FieldCheck{Name: "dXidt.prev", M: c.DXidt.Previous()},
		)
	}
	return spectral2D.Validate(Epsilon, checks)
}

func (c *Convection) mustBeValid() {
	violations := c.CheckState()
	if len(violations) == 0 {
		return
	}
	report := make([]string, len(violations))
	for i, v := range violations {
		report[i] = v.String()
	}
	err := fmt.Errorf("simulation state is corrupt at t = %v:\n%s",
		c.Time, strings.Join(report, "\n"))
	panic(err)
}

func (c *Convection) CheckIfFinished(Time, FinalTime float64) (finished bool) {
	if FinalTime-Time < Epsilon {
		finished = true
	}
	return
}

func (c *Convection) PrintInitialization(FinalTime float64) {
	fmt.Printf("Solving until finaltime = %8.5f\n", FinalTime)
	fmt.Printf("    iter      time        dt")
	fmt.Printf("         KE     maxTmp     maxOmg     maxPsi\n")
}

func (c *Convection) PrintUpdate(Time float64, steps int, plotQ bool, pm *PlotMeta) {
	if plotQ {
		c.PlotQ(pm)
	}
	format := "%11.4e"
	fmt.Printf("%8d%10.5f%10.6f", steps, Time, c.Dt)
	fmt.Printf(format, c.KineticEnergy())
	fmt.Printf(format, c.Tmp.Max())
	fmt.Printf(format, c.Omg.Max())
	fmt.Printf(format, c.Psi.Max())
	fmt.Printf("\n")
}

func (c *Convection) PrintFinal(elapsed time.Duration, steps int) {
	rate := float64(elapsed.Microseconds()) / (float64(c.Grid.NN*c.Grid.NZ) * float64(steps))
	fmt.Printf("\nRate of execution = %8.5f us/(mode*level*iteration) over %d iterations\n", rate, steps)
	fmt.Printf("Kinetic energy at end = %11.4e\n", c.KineticEnergy())
	fmt.Printf("%s\n", utils.GetMemUsage())
}

// PrintBenchmark dumps the per mode state at the probe level
func (c *Convection) PrintBenchmark() {
	var (
		k    = c.ProbeLevel()
		tmpD = c.Tmp.DataP
		omgD = c.Omg.DataP
		psiD = c.Psi.DataP
	)
	fmt.Printf("%v of %v (%.2f%%)\n", c.Time, c.TotalTime, c.Time/c.TotalTime*100)
	for n := 0; n < c.Grid.NN; n++ {
		in := c.Grid.Ind(n, k)
		fmt.Printf("%d | %e | %e | %e\n", n, tmpD[in], omgD[in], psiD[in])
	}
}

// PrintMaxOf reports the largest entry of a field and its location
func (c *Convection) PrintMaxOf(m utils.Matrix, name string) {
	var (
		mD         = m.DataP
		max        = mD[0]
		maxN, maxK int
	)
	for n := 0; n < c.Grid.NN; n++ {
		for k := 0; k < c.Grid.NZ; k++ {
			if mD[c.Grid.Ind(n, k)] > max {
				max = mD[c.Grid.Ind(n, k)]
				maxN, maxK = n, k
			}
		}
	}
	fmt.Printf("max of %s = %e @ (%d, %d)\n", name, max, maxN, maxK)
}
