// Package chart renders raw and filtered sensor sequences to an image.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrLengthMismatch is returned when the plotted series differ in length.
var ErrLengthMismatch = errors.New("chart: series lengths differ")

var (
	rawColor     = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xb3}
	averageColor = color.RGBA{R: 0x00, G: 0x77, B: 0xb6, A: 0xff}
	lowPassColor = color.RGBA{R: 0xe8, G: 0x5d, B: 0x04, A: 0xff}
)

// Figure size.
const (
	Width  = 10 * vg.Inch
	Height = 5 * vg.Inch
)

// Input is the data drawn by Render. LowPass may be nil.
type Input struct {
	Sensor        string
	Unit          string
	Times         []float64
	Raw           []float64
	MovingAverage []float64
	LowPass       []float64
}

// Build assembles the plot without writing it.
func Build(in Input) (*plot.Plot, error) {
	n := len(in.Times)
	if len(in.Raw) != n || len(in.MovingAverage) != n || (in.LowPass != nil && len(in.LowPass) != n) {
		return nil, fmt.Errorf("%w: times %d, raw %d, moving average %d, low pass %d",
			ErrLengthMismatch, n, len(in.Raw), len(in.MovingAverage), len(in.LowPass))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s sensor: raw vs filtered", capitalize(in.Sensor))
	p.X.Label.Text = "Time [s]"
	p.Y.Label.Text = fmt.Sprintf("Measurement [%s]", in.Unit)
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Dashes = grid.Vertical.Dashes
	p.Add(grid)

	if err := addLine(p, "Raw", in.Times, in.Raw, rawColor, vg.Points(1)); err != nil {
		return nil, err
	}
	if err := addLine(p, "Moving average", in.Times, in.MovingAverage, averageColor, vg.Points(2)); err != nil {
		return nil, err
	}
	if in.LowPass != nil {
		if err := addLine(p, "Low-pass (IIR)", in.Times, in.LowPass, lowPassColor, vg.Points(2)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Render draws in and saves it to path. The image format follows the file
// extension (.png, .svg, .pdf, ...).
func Render(path string, in Input) error {
	p, err := Build(in)
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("chart: saving %s: %w", path, err)
	}
	return nil
}

func addLine(p *plot.Plot, name string, xs, ys []float64, c color.Color, width vg.Length) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("chart: %s line: %w", name, err)
	}
	l.LineStyle = draw.LineStyle{Color: c, Width: width}
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
