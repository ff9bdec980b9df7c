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

	"github.com/notargets/goconvect/model_problems/Convection2D"
	"github.com/spf13/cobra"
)

// CriticalCmd represents the critical command
var CriticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "Linear growth rates and the critical Rayleigh number",
	Long: `
Integrates the equations linearized about the conductive state and
measures the exponential growth rate of one Fourier mode. With a
bracket [raMin, raMax] supplied it bisects on the sign of the growth
rate to locate the critical Rayleigh number,

goconvect critical -I input.yaml -m 1 --raMin 600 --raMax 900`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("critical called")
		icFile, err := cmd.Flags().GetString("inputConditionsFile")
		if err != nil {
			panic(err)
		}
		nCrit, _ := cmd.Flags().GetInt("mode")
		raMin, _ := cmd.Flags().GetFloat64("raMin")
		raMax, _ := cmd.Flags().GetFloat64("raMax")
		raTol, _ := cmd.Flags().GetFloat64("raTol")
		procLimit, _ := cmd.Flags().GetInt("procLimit")
		ip := processInput(icFile)
		c := Convection2D.NewConvection(ip, procLimit, true)
		if raMax > raMin {
			raCrit := BisectCriticalRa(c, nCrit, raMin, raMax, raTol)
			fmt.Printf("Critical Ra for mode %d = %10.4f (bracket tolerance %8.5f)\n",
				nCrit, raCrit, raTol)
			return
		}
		rate := c.RunLinear(nCrit)
		if rate == 0 {
			fmt.Printf("Growth rate of mode %d did not converge before t = %v\n",
				nCrit, c.TotalTime)
			return
		}
		fmt.Printf("Growth rate of mode %d at Ra = %10.4f: %11.4e per sample window\n",
			nCrit, c.Ra, rate)
	},
}

func init() {
	rootCmd.AddCommand(CriticalCmd)
	CriticalCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of run parameters: grid, Ra, Pr, Dt, cadences")
	CriticalCmd.Flags().IntP("mode", "m", 1, "Fourier mode whose growth rate is tracked")
	CriticalCmd.Flags().Float64("raMin", 0, "lower Rayleigh number bracket for bisection")
	CriticalCmd.Flags().Float64("raMax", 0, "upper Rayleigh number bracket for bisection")
	CriticalCmd.Flags().Float64("raTol", 0.1, "bracket width at which bisection stops")
	CriticalCmd.Flags().IntP("procLimit", "p", 0, "limit the number of parallel go routines, 0 uses all cores")
}

// BisectCriticalRa narrows [raMin, raMax] on the sign of the measured
// growth rate of mode nCrit until the bracket is tighter than raTol,
// returning the bracket midpoint. A run that ends without the rate
// converging counts as no measured growth, which near the critical
// point narrows toward the same limit from below.
func BisectCriticalRa(c *Convection2D.Convection, nCrit int, raMin, raMax, raTol float64) (raCrit float64) {
	for raMax-raMin > raTol {
		c.Ra = 0.5 * (raMin + raMax)
		rate := c.RunLinear(nCrit)
		fmt.Printf("Ra = %10.4f: rate = %11.4e\n", c.Ra, rate)
		if rate == 0 {
			fmt.Printf("rate did not converge at Ra = %10.4f, counting as stable\n", c.Ra)
		}
		if rate > 0 {
			raMax = c.Ra
		} else {
			raMin = c.Ra
		}
	}
	raCrit = 0.5 * (raMin + raMax)
	return
}
