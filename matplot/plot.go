/*
 * plot.go, part of gomatgen.
 *
 * Copyright 2026 The gomatgen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package matplot renders computed diffraction patterns, either to image
//files through gonum/plot or to a terminal as an ASCII graph.
package matplot

import (
	"fmt"
	"image/color"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matgen-dev/gomatgen/xrd"
)

// PatternPlot draws the pattern as a stick plot and saves it to filename.
// The format follows the file extension (.png, .svg, .pdf...).
func PatternPlot(pat *xrd.Pattern, title, filename string) error {
	if len(pat.Peaks) == 0 {
		return fmt.Errorf("matplot: empty pattern")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "2theta (deg)"
	p.Y.Label.Text = "intensity (a.u.)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	for _, pk := range pat.Peaks {
		stick := plotter.XYs{{X: pk.TwoTheta, Y: 0}, {X: pk.TwoTheta, Y: pk.Intensity}}
		line, err := plotter.NewLine(stick)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{B: 180, A: 255}
		line.Width = vg.Points(1.2)
		p.Add(line)
	}
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}

// ASCII renders the pattern as a fixed-width terminal graph, binning the
// peaks onto width columns between the first and last peak positions. The
// height is in rows.
func ASCII(pat *xrd.Pattern, width, height int) string {
	if len(pat.Peaks) == 0 || width < 2 {
		return ""
	}
	lo := pat.Peaks[0].TwoTheta
	hi := pat.Peaks[len(pat.Peaks)-1].TwoTheta
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	bins := make([]float64, width)
	for _, pk := range pat.Peaks {
		i := int((pk.TwoTheta - lo) / span * float64(width-1))
		if i < 0 {
			i = 0
		}
		if i >= width {
			i = width - 1
		}
		bins[i] += pk.Intensity
	}
	graph := asciigraph.Plot(bins,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("2theta %.1f to %.1f deg", lo, hi)),
	)
	return graph
}
