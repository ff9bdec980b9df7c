package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/goconvect/InputParameters"
)

func TestParseInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
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
`)
	var input InputParameters.SimParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.NZ, 101)
	assert.Equal(t, input.NN, 51)
	assert.Equal(t, input.Aspect, 3.)
	assert.Equal(t, input.Ra, 1.e6)
	assert.Equal(t, input.Regime, "benard")
	assert.Equal(t, input.DoubleDiffusive, false)
	input.Print()
	assert.Equal(t, input.TotalTime, 0.05)
}
