package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/gocca"
)

// DataType represents the precision of numerical data
type DataType int

const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

// KernelProgram manages code generation and execution for device
// kernels. Problem dimensions and coefficient tables are embedded into
// a generated preamble prepended to every kernel built through the
// program, so host and device agree on them without runtime arguments.
type KernelProgram struct {
	FloatType DataType // Float32 or Float64 (default: Float64)
	IntType   DataType // Int32 or Int64 (default: Int64)

	// Static data to embed in the preamble
	IntConstants  map[string]int
	RealConstants map[string]float64
	StaticArrays  map[string][]float64

	// Generated code
	kernelPreamble string

	// Runtime resources
	device  *gocca.OCCADevice
	kernels map[string]*gocca.OCCAKernel
	memory  map[string]*gocca.OCCAMemory
}

// Config holds configuration for creating a KernelProgram
type Config struct {
	FloatType DataType
	IntType   DataType
}

// NewKernelProgram creates a new KernelProgram with the given configuration
func NewKernelProgram(device *gocca.OCCADevice, cfg Config) *KernelProgram {
	// Set type defaults only if both are zero
	if cfg.FloatType == 0 && cfg.IntType == 0 {
		cfg.FloatType = Float64
		cfg.IntType = Int64
	}

	kp := &KernelProgram{
		FloatType:     cfg.FloatType,
		IntType:       cfg.IntType,
		IntConstants:  make(map[string]int),
		RealConstants: make(map[string]float64),
		StaticArrays:  make(map[string][]float64),
		device:        device,
		kernels:       make(map[string]*gocca.OCCAKernel),
		memory:        make(map[string]*gocca.OCCAMemory),
	}

	return kp
}

// AddIntConstant embeds an integer #define visible to every kernel
func (kp *KernelProgram) AddIntConstant(name string, val int) {
	kp.IntConstants[name] = val
}

// AddRealConstant embeds a floating point #define visible to every kernel
func (kp *KernelProgram) AddRealConstant(name string, val float64) {
	kp.RealConstants[name] = val
}

// AddStaticArray embeds a coefficient table that will be compiled into
// kernels as static data
func (kp *KernelProgram) AddStaticArray(name string, data []float64) {
	kp.StaticArrays[name] = data
}

// GenerateKernelMain generates the kernel preamble with type
// definitions, constants and static data
func (kp *KernelProgram) GenerateKernelMain() string {
	var sb strings.Builder

	sb.WriteString(kp.generateTypeDefinitions())
	sb.WriteString(kp.generateConstants())
	sb.WriteString(kp.generateStaticArrays())

	kp.kernelPreamble = sb.String()
	return kp.kernelPreamble
}

// generateTypeDefinitions creates type definitions based on precision settings
func (kp *KernelProgram) generateTypeDefinitions() string {
	var sb strings.Builder

	floatTypeStr := "double"
	floatSuffix := ""
	if kp.FloatType == Float32 {
		floatTypeStr = "float"
		floatSuffix = "f"
	}

	intTypeStr := "long"
	if kp.IntType == Int32 {
		intTypeStr = "int"
	}

	sb.WriteString(fmt.Sprintf("typedef %s real_t;\n", floatTypeStr))
	sb.WriteString(fmt.Sprintf("typedef %s int_t;\n", intTypeStr))
	sb.WriteString(fmt.Sprintf("#define REAL_ZERO 0.0%s\n", floatSuffix))
	sb.WriteString(fmt.Sprintf("#define REAL_ONE 1.0%s\n", floatSuffix))
	sb.WriteString("\n")

	return sb.String()
}

// generateConstants emits the embedded #defines in name order so the
// preamble is identical across runs and the device compilation cache
// stays warm
func (kp *KernelProgram) generateConstants() string {
	var sb strings.Builder

	intNames := make([]string, 0, len(kp.IntConstants))
	for name := range kp.IntConstants {
		intNames = append(intNames, name)
	}
	sort.Strings(intNames)
	for _, name := range intNames {
		sb.WriteString(fmt.Sprintf("#define %s %d\n", name, kp.IntConstants[name]))
	}

	realNames := make([]string, 0, len(kp.RealConstants))
	for name := range kp.RealConstants {
		realNames = append(realNames, name)
	}
	sort.Strings(realNames)
	for _, name := range realNames {
		// 17 significant digits so a float64 round trips exactly
		sb.WriteString(fmt.Sprintf("#define %s %.17g\n", name, kp.RealConstants[name]))
	}
	sb.WriteString("\n")

	return sb.String()
}

// generateStaticArrays converts the coefficient tables to static array
// initializations, in name order
func (kp *KernelProgram) generateStaticArrays() string {
	var sb strings.Builder

	names := make([]string, 0, len(kp.StaticArrays))
	for name := range kp.StaticArrays {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(kp.formatStaticArray(name, kp.StaticArrays[name]))
	}

	return sb.String()
}

// formatStaticArray formats a single table as a static C array. OCCA
// translates const globals into the constant space of GPU backends.
func (kp *KernelProgram) formatStaticArray(name string, data []float64) string {
	var sb strings.Builder

	typeStr := "double"
	if kp.FloatType == Float32 {
		typeStr = "float"
	}

	sb.WriteString(fmt.Sprintf("const %s %s[%d] = {\n", typeStr, name, len(data)))
	for i, val := range data {
		if i%4 == 0 {
			sb.WriteString("    ")
		}
		if kp.FloatType == Float32 {
			sb.WriteString(fmt.Sprintf("%.7ef", val))
		} else {
			sb.WriteString(fmt.Sprintf("%.16e", val))
		}
		if i < len(data)-1 {
			sb.WriteString(",")
		}
		if i%4 == 3 || i == len(data)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("};\n\n")

	return sb.String()
}

// AllocateMemory allocates a named device buffer of the given byte size
func (kp *KernelProgram) AllocateMemory(name string, bytes int64) *gocca.OCCAMemory {
	mem := kp.device.Malloc(bytes, nil, nil)
	kp.memory[name] = mem
	return mem
}

// RunKernel executes a registered kernel with the given launch shape
func (kp *KernelProgram) RunKernel(name string, outer, inner gocca.OCCADim, args ...interface{}) error {
	kernel, exists := kp.kernels[name]
	if !exists {
		return fmt.Errorf("kernel %s not found", name)
	}

	kernel.SetRunDims(outer, inner)

	return kernel.RunWithArgs(args...)
}

// GetMemory returns a device memory handle by name
func (kp *KernelProgram) GetMemory(name string) *gocca.OCCAMemory {
	return kp.memory[name]
}

// GetKernelPreamble returns the generated preamble (useful for debugging)
func (kp *KernelProgram) GetKernelPreamble() string {
	return kp.kernelPreamble
}

// GetFloatSize returns the size in bytes of the float type
func (kp *KernelProgram) GetFloatSize() int {
	if kp.FloatType == Float32 {
		return 4
	}
	return 8
}

// GetIntSize returns the size in bytes of the int type
func (kp *KernelProgram) GetIntSize() int {
	if kp.IntType == Int32 {
		return 4
	}
	return 8
}

// Free releases all allocated resources
func (kp *KernelProgram) Free() {
	// Free kernels safely
	for _, kernel := range kp.kernels {
		if kernel != nil {
			kernel.Free()
		}
	}

	// Free memory safely
	for _, mem := range kp.memory {
		if mem != nil {
			mem.Free()
		}
	}
}

// BuildKernel compiles a kernel from source with the generated preamble
func (kp *KernelProgram) BuildKernel(kernelSource, kernelName string) (*gocca.OCCAKernel, error) {
	// Ensure preamble is generated
	if kp.kernelPreamble == "" {
		kp.GenerateKernelMain()
	}

	// Combine preamble with kernel source
	fullSource := kp.kernelPreamble + "\n" + kernelSource

	// Build kernel
	kernel, err := kp.device.BuildKernelFromString(fullSource, kernelName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build kernel %s: %w", kernelName, err)
	}

	// Only register if build succeeded
	if kernel != nil {
		kp.RegisterKernel(kernelName, kernel)
		return kernel, nil
	}

	return nil, fmt.Errorf("kernel build returned nil for %s", kernelName)
}

// RegisterKernel adds a compiled kernel to the program
func (kp *KernelProgram) RegisterKernel(name string, kernel *gocca.OCCAKernel) {
	if kernel == nil {
		return
	}
	kp.kernels[name] = kernel
}
