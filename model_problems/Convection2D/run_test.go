package Convection2D

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/goconvect/InputParameters"

	"github.com/stretchr/testify/assert"
)

func TestRunNonLinear(t *testing.T) {
	var (
		folder = t.TempDir()
		ip     = &InputParameters.SimParameters{
			NZ: 20, NN: 8, Aspect: 3, Dt: 3.e-6, TotalTime: 1.e-3,
			Ra: 1.e6, Pr: 0.5, Regime: "benard", InitType: "conduction",
			Perturbation: 0.01, SaveFolder: folder,
			TimeBetweenSaves: 5.e-4, ValidateEvery: 100,
		}
		c = NewConvection(ip, 2, false)
	)
	c.RunNonLinear(nil)
	assert.True(t, c.CheckIfFinished(c.Time, c.TotalTime))
	assert.Empty(t, c.CheckState())
	// Snapshot cadence: t = 0 and t = 5e-4 fire in the loop, plus the
	// final state on exit. Seven fields of 8 x 20 float64s each.
	for i, name := range []string{"vars0.dat", "vars1.dat", "vars2.dat"} {
		fi, err := os.Stat(filepath.Join(folder, name))
		if assert.NoError(t, err, "snapshot %d", i) {
			assert.Equal(t, int64(7*8*20*8), fi.Size())
		}
	}
	_, err := os.Stat(filepath.Join(folder, "vars3.dat"))
	assert.True(t, os.IsNotExist(err))
	// Energy log cadence: every 1e-4 from t = 0, ten samples before the
	// run ends
	fi, err := os.Stat(filepath.Join(folder, "KineticEnergy.dat"))
	if assert.NoError(t, err) {
		assert.Equal(t, int64(10*8), fi.Size())
	}
	for _, n := range []int{1, 7} {
		_, err = os.Stat(filepath.Join(folder, fmt.Sprintf("KineticEnergyMode%d.dat", n)))
		assert.NoError(t, err, "mode %d energy log", n)
	}
	// Strongly supercritical, the perturbation must have started moving
	assert.True(t, c.KineticEnergy() > 0)
}
