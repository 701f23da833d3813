// Package chart renders a time series of highs to an image file.
package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"stockseries/internal/model"
)

// Renderer draws points into the file at path.
type Renderer interface {
	Render(points []model.Point, path string) error
}

// PlotRenderer draws a line chart with gonum/plot. The image format follows
// the file extension (png, svg, pdf, jpg).
type PlotRenderer struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// NewPlotRenderer returns a renderer with the default labels and a 10x5 inch canvas.
func NewPlotRenderer() *PlotRenderer {
	return &PlotRenderer{
		Title:  "Stock highs",
		XLabel: "Date",
		YLabel: "High",
		Width:  10 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

func (r *PlotRenderer) Render(points []model.Point, path string) error {
	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = r.XLabel
	p.Y.Label.Text = r.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(XYs(points))
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	p.Add(line)

	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// XYs maps points to plot coordinates, x in Unix seconds.
func XYs(points []model.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Time.Unix())
		xys[i].Y = pt.Value
	}
	return xys
}
