package Convection2D

import (
	"fmt"
	"path/filepath"

	"github.com/notargets/goconvect/spectral2D"
	"github.com/notargets/goconvect/utils"
)

// snapshotFields lists the state in its on-disk order: prognostic
// fields, streamfunction, then both slots of each derivative history,
// current first. A double diffusive run appends the solute state after
// the thermal state so single component files remain readable by the
// same layout.
func (c *Convection) snapshotFields() (fields []utils.Matrix) {
	fields = []utils.Matrix{
		c.Tmp, c.Omg, c.Psi,
		c.DTmpdt.Current(), c.DTmpdt.Previous(),
		c.DOmgdt.Current(), c.DOmgdt.Previous(),
	}
	if c.DDC {
		fields = append(fields, c.Xi, c.DXidt.Current(), c.DXidt.Previous())
	}
	return
}

// Save writes the full state to vars<N>.dat in the save folder, where N
// increments with every call
func (c *Convection) Save() (err error) {
	fileName := filepath.Join(c.SaveFolder, fmt.Sprintf("vars%d.dat", c.saveNumber))
	if err = spectral2D.SaveFile(fileName, c.snapshotFields()...); err != nil {
		return
	}
	c.saveNumber++
	return
}

// Load restores a snapshot produced by Save. The run must be
// constructed with the same nZ, nN and double diffusive setting that
// produced the file.
func (c *Convection) Load(fileName string) (err error) {
	return spectral2D.LoadFile(fileName, c.snapshotFields()...)
}

// SaveKineticEnergy appends the current total kinetic energy to the run
// log and each mode's contribution to its own log, and rolls the two
// sample memory used by the growth diagnostic.
func (c *Convection) SaveKineticEnergy() (err error) {
	var (
		ke = c.KineticEnergy()
	)
	c.kePrev = c.keCurrent
	c.keCurrent = ke
	if err = spectral2D.AppendFloat(filepath.Join(c.SaveFolder, "KineticEnergy.dat"), ke); err != nil {
		return
	}
	for n := 1; n < c.Grid.NN; n++ {
		fileName := filepath.Join(c.SaveFolder, fmt.Sprintf("KineticEnergyMode%d.dat", n))
		if err = spectral2D.AppendFloat(fileName, c.KineticEnergyForMode(n)); err != nil {
			return
		}
	}
	return
}
