/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/notargets/goconvect/InputParameters"
	"github.com/notargets/goconvect/model_problems/Convection2D"
	"github.com/spf13/cobra"
)

type ModelNL struct {
	ICFile     string
	Graph      bool
	GraphField string
	PlotSteps  int
	Delay      time.Duration
	ProcLimit  int
	Device     string
	Profile    bool
}

// NonlinearCmd represents the nonlinear command
var NonlinearCmd = &cobra.Command{
	Use:   "nonlinear",
	Short: "Transient evolution of the fully nonlinear convection equations",
	Long: `
Advances temperature, vorticity and streamfunction (and solute in a
double diffusive run) with the full triad advection terms, saving
kinetic energy logs and state snapshots on their configured cadences,

goconvect nonlinear -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("nonlinear called")
		mnl := &ModelNL{}
		if mnl.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mnl.Graph, _ = cmd.Flags().GetBool("graph")
		mnl.GraphField, _ = cmd.Flags().GetString("graphField")
		mnl.PlotSteps, _ = cmd.Flags().GetInt("plotSteps")
		dr, _ := cmd.Flags().GetInt("delay")
		mnl.Delay = time.Duration(dr) * time.Millisecond
		mnl.ProcLimit, _ = cmd.Flags().GetInt("procLimit")
		mnl.Device, _ = cmd.Flags().GetString("device")
		mnl.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(mnl.ICFile)
		RunNL(mnl, ip)
	},
}

func processInput(fileName string) (ip *InputParameters.SimParameters) {
	var (
		err error
	)
	if len(fileName) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Moderate Rayleigh Number"
NZ: 101
NN: 51
Aspect: 3
Dt: 3.0e-6
TotalTime: 0.05
Ra: 1.0e6
Pr: 0.5
Regime: benard
InitType: conduction
SaveFolder: out/
TimeBetweenSaves: 1.0e-3
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(fileName); err != nil {
		panic(err)
	}
	ip = &InputParameters.SimParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(NonlinearCmd)
	NonlinearCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of run parameters: grid, Ra, Pr, Dt, cadences")
	NonlinearCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	NonlinearCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	NonlinearCmd.Flags().IntP("plotSteps", "s", 1000, "number of steps before plotting each frame")
	NonlinearCmd.Flags().StringP("graphField", "q", "temperature", "field to display - temperature, vorticity, streamfunction, solute or meanprofile")
	NonlinearCmd.Flags().IntP("procLimit", "p", 0, "limit the number of parallel go routines, 0 uses all cores")
	NonlinearCmd.Flags().String("device", "", `run on an OCCA device, eg {"mode": "CUDA", "device_id": 0}`)
	NonlinearCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunNL(mnl *ModelNL, ip *InputParameters.SimParameters) {
	if mnl.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	c := Convection2D.NewConvection(ip, mnl.ProcLimit, true)
	if mnl.Device != "" {
		if err := c.UseDevice(mnl.Device); err != nil {
			panic(err)
		}
	}
	pm := &Convection2D.PlotMeta{
		Plot:            mnl.Graph,
		Scale:           1.1,
		Field:           Convection2D.NewPlotField(mnl.GraphField),
		FieldMinP:       nil,
		FieldMaxP:       nil,
		FrameTime:       mnl.Delay,
		StepsBeforePlot: mnl.PlotSteps,
	}
	c.RunNonLinear(pm)
}
