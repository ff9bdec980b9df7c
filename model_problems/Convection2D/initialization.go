package Convection2D

import (
	"fmt"
	"math"
	"strings"
)

type InitType uint

const (
	CONDUCTION InitType = iota
	SNAPSHOT
)

var (
	InitNames = map[string]InitType{
		"conduction": CONDUCTION,
		"snapshot":   SNAPSHOT,
	}
	InitPrintNames = []string{"Conductive Base State", "Snapshot File"}
)

func NewInitType(label string) (it InitType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
		panic(err)
	}
	return
}

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[int(it)]
	return
}

// RegimeType fixes the sign of the mean temperature (and solute)
// gradient. Heating from below destabilizes temperature; the salt finger
// regime stabilizes temperature and destabilizes the solute instead.
type RegimeType uint

const (
	RAYLEIGH_BENARD RegimeType = iota
	SALT_FINGER
)

var (
	RegimeNames = map[string]RegimeType{
		"benard":     RAYLEIGH_BENARD,
		"saltfinger": SALT_FINGER,
	}
	RegimePrintNames = []string{"Rayleigh-Benard Convection", "Salt Fingering"}
)

func NewRegimeType(label string) (rt RegimeType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty regime, must be one of %v", RegimeNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if rt, ok = RegimeNames[label]; !ok {
		err = fmt.Errorf("unable to use regime named %s", label)
		panic(err)
	}
	return
}

func (rt RegimeType) Print() (txt string) {
	txt = RegimePrintNames[int(rt)]
	return
}

// Gradients returns the mean gradient signs for temperature and solute
func (rt RegimeType) Gradients() (tmpGrad, xiGrad float64) {
	switch rt {
	case RAYLEIGH_BENARD:
		tmpGrad, xiGrad = -1, -1
	case SALT_FINGER:
		tmpGrad, xiGrad = 1, 1
	}
	return
}

// setProfileConditions installs the conductive mean profile in mode 0 and
// a sin(pi z) perturbation of the given amplitude in every mode n >= 1,
// for temperature and, on double diffusive runs, the solute. Vorticity,
// streamfunction and the derivative histories are left at zero.
func (c *Convection) setProfileConditions(amplitude float64) {
	var (
		g    = c.Grid
		tmpD = c.Tmp.DataP
	)
	for k := 0; k < g.NZ; k++ {
		z := float64(k) * g.Dz
		if c.TmpGrad == -1 {
			tmpD[g.Ind(0, k)] = 1 - z
		} else {
			tmpD[g.Ind(0, k)] = z
		}
		for n := 1; n < g.NN; n++ {
			tmpD[g.Ind(n, k)] = amplitude * math.Sin(math.Pi*z)
		}
	}
	if c.DDC {
		xiD := c.Xi.DataP
		for k := 0; k < g.NZ; k++ {
			z := float64(k) * g.Dz
			if c.XiGrad == -1 {
				xiD[g.Ind(0, k)] = 1 - z
			} else {
				xiD[g.Ind(0, k)] = z
			}
			for n := 1; n < g.NN; n++ {
				xiD[g.Ind(n, k)] = amplitude * math.Sin(math.Pi*z)
			}
		}
	}
}

// SetConductionConditions seeds a transient run: the conductive profile
// plus a small perturbation that the instability can amplify
func (c *Convection) SetConductionConditions(perturbation float64) {
	c.Reinit()
	c.setProfileConditions(perturbation)
	c.mustBeValid()
}

// SetStabilityConditions installs the unit amplitude profile used by the
// linear growth rate driver
func (c *Convection) SetStabilityConditions() {
	c.Reinit()
	c.setProfileConditions(1)
	c.mustBeValid()
}
