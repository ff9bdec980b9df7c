package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title            string  `yaml:"Title"`
	NZ               int     `yaml:"NZ"`     // Vertical finite difference levels
	NN               int     `yaml:"NN"`     // Horizontal Fourier sine modes
	Aspect           float64 `yaml:"Aspect"` // Box width, height is 1
	Dt               float64 `yaml:"Dt"`
	TotalTime        float64 `yaml:"TotalTime"`
	Ra               float64 `yaml:"Ra"`
	Pr               float64 `yaml:"Pr"`
	RaXi             float64 `yaml:"RaXi"`
	Tau              float64 `yaml:"Tau"`
	DoubleDiffusive  bool    `yaml:"DoubleDiffusive"`
	Regime           string  `yaml:"Regime"`   // benard or saltfinger
	InitType         string  `yaml:"InitType"` // conduction or snapshot
	Perturbation     float64 `yaml:"Perturbation"`
	ICFile           string  `yaml:"ICFile"`
	SaveFolder       string  `yaml:"SaveFolder"`
	TimeBetweenSaves float64 `yaml:"TimeBetweenSaves"`
	KESaveInterval   float64 `yaml:"KESaveInterval"`
	CFLCheckInterval float64 `yaml:"CFLCheckInterval"`
	ModifyDt         bool    `yaml:"ModifyDt"`
	ValidateEvery    int     `yaml:"ValidateEvery"`
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%d x %d]\t\t= Levels x Modes\n", sp.NZ, sp.NN)
	fmt.Printf("%8.5f\t\t= Aspect\n", sp.Aspect)
	fmt.Printf("%8.3e\t\t= Dt\n", sp.Dt)
	fmt.Printf("%8.5f\t\t= TotalTime\n", sp.TotalTime)
	fmt.Printf("%8.2f\t\t= Ra\n", sp.Ra)
	fmt.Printf("%8.5f\t\t= Pr\n", sp.Pr)
	if sp.DoubleDiffusive {
		fmt.Printf("%8.2f\t\t= RaXi\n", sp.RaXi)
		fmt.Printf("%8.5f\t\t= Tau\n", sp.Tau)
	}
	fmt.Printf("[%s]\t\t\t= Regime\n", sp.Regime)
	fmt.Printf("[%s]\t\t= InitType\n", sp.InitType)
	if sp.SaveFolder != "" {
		fmt.Printf("[%s]\t\t= SaveFolder\n", sp.SaveFolder)
	}
}
