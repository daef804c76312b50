// Package viz - true-front vs. found-front overlay plots.
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveOverlayPNG renders truePF as a line and approx as a scatter on
// shared (f1, f2) axes and saves the result to path. The output format
// follows the path extension (.png, .svg, .pdf); width and height are
// the canvas size.
//
// Either front may be empty; an empty overlay is still a valid plot.
func SaveOverlayPNG(path, title string, truePF, approx [][2]float64, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "f1"
	p.Y.Label.Text = "f2"

	truePts := toXYs(truePF)
	trueLine, err := plotter.NewLine(truePts)
	if err != nil {
		return fmt.Errorf("viz: true front line: %w", err)
	}
	trueLine.Color = color.RGBA{R: 0x2a, G: 0x6f, B: 0xdb, A: 0xff}

	foundPts, err := plotter.NewScatter(toXYs(approx))
	if err != nil {
		return fmt.Errorf("viz: found front scatter: %w", err)
	}
	foundPts.GlyphStyle.Radius = vg.Points(2)
	foundPts.GlyphStyle.Color = color.RGBA{R: 0xd6, G: 0x3a, B: 0x2f, A: 0xff}

	p.Add(trueLine, foundPts)
	p.Legend.Add("true front", trueLine)
	p.Legend.Add("found front", foundPts)
	p.Legend.Top = true

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("viz: save %s: %w", path, err)
	}

	return nil
}

// toXYs converts (f1, f2) pairs into plotter coordinates.
func toXYs(points [][2]float64) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt[0]
		xys[i].Y = pt[1]
	}

	return xys
}
