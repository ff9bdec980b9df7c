package Convection2D

import (
	"fmt"
	"math"
	"time"

	graphics2D "github.com/notargets/avs/geometry"

	"github.com/notargets/goconvect/utils"
)

type PlotField uint8

const (
	Temperature PlotField = iota
	Vorticity
	Streamfunction
	Solute
	MeanProfile
)

var (
	PlotFieldNames = map[string]PlotField{
		"temperature":    Temperature,
		"vorticity":      Vorticity,
		"streamfunction": Streamfunction,
		"solute":         Solute,
		"meanprofile":    MeanProfile,
	}
	PlotFieldPrintNames = []string{
		"Temperature", "Vorticity", "Streamfunction", "Solute",
		"Mean temperature profile",
	}
)

func NewPlotField(label string) (pf PlotField) {
	var (
		ok  bool
		err error
	)
	if pf, ok = PlotFieldNames[label]; !ok {
		err = fmt.Errorf("unable to plot field named %s", label)
		panic(err)
	}
	return
}

func (pf PlotField) Print() (txt string) {
	txt = PlotFieldPrintNames[int(pf)]
	return
}

type PlotMeta struct {
	Plot                 bool
	Scale                float64
	Field                PlotField
	FieldMinP, FieldMaxP *float64
	FrameTime            time.Duration
	StepsBeforePlot      int
}

type ChartState struct {
	sp *utils.SurfacePlot
	lc *utils.LineChart
	gm *graphics2D.TriMesh
}

// PhysicalField sums the sine series of a mode x level matrix onto the
// physical nX x nZ grid
func (c *Convection) PhysicalField(m utils.Matrix) (field utils.Matrix) {
	var (
		g  = c.Grid
		mD = m.DataP
	)
	field = utils.NewMatrix(g.NX, g.NZ)
	var (
		fD = field.DataP
	)
	for i := 0; i < g.NX; i++ {
		x := g.X.DataP[i]
		for k := 0; k < g.NZ; k++ {
			q := mD[g.Ind(0, k)]
			for n := 1; n < g.NN; n++ {
				q += mD[g.Ind(n, k)] * math.Sin(g.Wavenumber(n)*x)
			}
			fD[i*g.NZ+k] = q
		}
	}
	return
}

func (c *Convection) plotSource(pf PlotField) (m utils.Matrix) {
	switch pf {
	case Temperature:
		m = c.Tmp
	case Vorticity:
		m = c.Omg
	case Streamfunction:
		m = c.Psi
	case Solute:
		if !c.DDC {
			err := fmt.Errorf("no solute field in a single component run")
			panic(err)
		}
		m = c.Xi
	}
	return
}

// outputMesh triangulates the structured physical grid, two triangles
// per cell, with vertex p = i*nZ + k matching the layout of a
// PhysicalField result
func (c *Convection) outputMesh() (gm *graphics2D.TriMesh) {
	var (
		g = c.Grid
	)
	gm = &graphics2D.TriMesh{}
	points := make([]graphics2D.Point, g.NX*g.NZ)
	for i := 0; i < g.NX; i++ {
		for k := 0; k < g.NZ; k++ {
			points[i*g.NZ+k].X[0] = float32(g.X.DataP[i])
			points[i*g.NZ+k].X[1] = float32(g.Z.DataP[k])
		}
	}
	K := 2 * (g.NX - 1) * (g.NZ - 1)
	gm.Triangles = make([]graphics2D.Triangle, K)
	gm.Attributes = make([][]float32, K)
	var t int
	for i := 0; i < g.NX-1; i++ {
		for k := 0; k < g.NZ-1; k++ {
			var (
				p00 = int32(i*g.NZ + k)
				p10 = int32((i+1)*g.NZ + k)
				p11 = int32((i+1)*g.NZ + k + 1)
				p01 = int32(i*g.NZ + k + 1)
			)
			gm.Triangles[t].Nodes = [3]int32{p00, p10, p11}
			gm.Attributes[t] = make([]float32, 3)
			t++
			gm.Triangles[t].Nodes = [3]int32{p00, p11, p01}
			gm.Attributes[t] = make([]float32, 3)
			t++
		}
	}
	gm.Geometry = points
	return
}

// PlotQ renders the selected field on the physical grid, creating the
// chart window on first use
func (c *Convection) PlotQ(pm *PlotMeta) {
	if pm.Field == MeanProfile {
		c.plotMeanProfile(pm)
		return
	}
	var (
		oField     = c.PhysicalField(c.plotSource(pm.Field))
		fmin, fmax = oField.Min(), oField.Max()
	)
	if pm.FieldMinP != nil {
		fmin = *pm.FieldMinP
	}
	if pm.FieldMaxP != nil {
		fmax = *pm.FieldMaxP
	}
	if c.chart.gm == nil {
		c.chart.gm = c.outputMesh()
	}
	if c.chart.sp == nil {
		scale := pm.Scale
		if scale <= 0 {
			scale = 1.1
		}
		box := graphics2D.NewBoundingBox(c.chart.gm.GetGeometry())
		box = box.Scale(float32(scale))
		c.chart.sp = utils.NewSurfacePlot(1920, 1280,
			float64(box.XMin[0]), float64(box.XMax[0]),
			float64(box.XMin[1]), float64(box.XMax[1]),
			c.chart.gm)
	}
	c.chart.sp.AddColorMap(0.99*fmin, 1.01*fmax)
	fI := make([]float32, len(oField.DataP))
	for i, v := range oField.DataP {
		fI[i] = float32(v)
	}
	c.chart.sp.AddFunctionSurface(fI)
	utils.SleepFor(int(pm.FrameTime.Milliseconds()))
}

// plotMeanProfile draws the mode 0 temperature against height. In the
// conductive state this is the straight line between the wall values,
// convection erodes it toward a mixed interior with thin wall layers
func (c *Convection) plotMeanProfile(pm *PlotMeta) {
	var (
		g = c.Grid
	)
	if c.chart.lc == nil {
		// Both regimes run between wall values 0 and 1
		c.chart.lc = utils.NewLineChart(1280, 1280, 0, 1, -0.1, 1.1)
	}
	profile := make([]float64, g.NZ)
	for k := 0; k < g.NZ; k++ {
		profile[k] = c.Tmp.DataP[g.Ind(0, k)]
	}
	c.chart.lc.Plot(pm.FrameTime, g.Z.DataP, profile, 0.7, "mean temperature")
}
