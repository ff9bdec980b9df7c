package utils

import (
	"image/color"
	"time"

	"github.com/notargets/avs/functions"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	graphics2D "github.com/notargets/avs/geometry"
)

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

type LineChart struct {
	Chart    *chart2d.Chart2D
	ColorMap *utils2.ColorMap
}

func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart:    chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(fmin), float32(fmax)),
		ColorMap: utils2.NewColorMap(-1, 1, 1),
	}
	go lc.Chart.Plot()
	return
}

func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, lineColor float64, lineName string) {
	/*
		lineColor goes from -1 (red) to 1 (blue)
	*/
	pSeries := func(field []float64, name string, color float32, gl chart2d.GlyphType) {
		if err := lc.Chart.AddSeries(name, x, f,
			gl, chart2d.Solid, lc.ColorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries(f, lineName, float32(lineColor), chart2d.NoGlyph)
	time.Sleep(graphDelay)
	return
}

type SurfacePlot struct {
	Chart        *chart2d.Chart2D
	ColorMap     *utils2.ColorMap
	GraphicsMesh *graphics2D.TriMesh
}

func NewSurfacePlot(width, height int, xmin, xmax, ymin, ymax float64,
	gm *graphics2D.TriMesh) (sp *SurfacePlot) {
	sp = &SurfacePlot{
		Chart:        chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(ymin), float32(ymax)),
		GraphicsMesh: gm,
	}
	go sp.Chart.Plot()
	return
}

func (sp *SurfacePlot) AddColorMap(fmin, fmax float64) {
	sp.ColorMap = utils2.NewColorMap(float32(fmin), float32(fmax), 1.)
}

// AddFunctionSurface renders one field value per mesh vertex, in the
// vertex order of the graphics mesh geometry
func (sp *SurfacePlot) AddFunctionSurface(field []float32) {
	var (
		noLine = chart2d.NoLine
		white  = color.RGBA{R: 255, G: 255, B: 255, A: 1}
	)
	fs := functions.NewFSurface(sp.GraphicsMesh, [][]float32{field}, 0)
	if err := sp.Chart.AddFunctionSurface("FSurface", *fs, noLine, white); err != nil {
		panic("unable to add function surface series")
	}
}
