package spectral2D

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	var (
		g        = NewGrid(11, 4, 2)
		fileName = filepath.Join(t.TempDir(), "vars0.dat")
	)
	tmp, omg, psi := g.NewField(), g.NewField(), g.NewField()
	for i := range tmp.DataP {
		tmp.DataP[i] = float64(i) * 0.25
		omg.DataP[i] = -float64(i) * 0.5
		psi.DataP[i] = 1. / float64(i+1)
	}
	require.NoError(t, SaveFile(fileName, tmp, omg, psi))

	tmp2, omg2, psi2 := g.NewField(), g.NewField(), g.NewField()
	require.NoError(t, LoadFile(fileName, tmp2, omg2, psi2))
	// Round trip is bit for bit
	assert.Equal(t, tmp.DataP, tmp2.DataP)
	assert.Equal(t, omg.DataP, omg2.DataP)
	assert.Equal(t, psi.DataP, psi2.DataP)

	// A short file is an error, not a partial load
	short := filepath.Join(t.TempDir(), "short.dat")
	require.NoError(t, SaveFile(short, tmp))
	assert.Error(t, LoadFile(short, tmp2, omg2))

	// Missing file reports the path
	err := LoadFile(filepath.Join(t.TempDir(), "absent.dat"), tmp2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absent.dat")
}

func TestAppendFloat(t *testing.T) {
	var (
		fileName = filepath.Join(t.TempDir(), "KineticEnergy.dat")
		vals     = []float64{1.5, -2.25, 3.75}
	)
	for _, v := range vals {
		require.NoError(t, AppendFloat(fileName, v))
	}
	file, err := os.Open(fileName)
	require.NoError(t, err)
	defer file.Close()
	got := make([]float64, len(vals))
	require.NoError(t, binary.Read(file, binary.LittleEndian, got))
	assert.Equal(t, vals, got)
	fi, err := file.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(8*len(vals)), fi.Size())
}
