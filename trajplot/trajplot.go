/*
 * trajplot.go, part of moltraj.
 *
 * Copyright 2024 The moltraj authors
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

//Package trajplot draws quick-look plots of per-frame trajectory
//quantities, such as the box volume along the simulation.
package trajplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//BoxVolumes returns the volume of each frame's box, given its per-axis
//lengths. The boxes here are always rectangular, so this is just the
//product of the lengths.
func BoxVolumes(boxes [][3]float64) []float64 {
	vols := make([]float64, len(boxes))
	for i, b := range boxes {
		vols[i] = b[0] * b[1] * b[2]
	}
	return vols
}

//SeriesPlot draws a per-frame series as a line against the frame number
//and saves it as plotname.png.
func SeriesPlot(series []float64, title, ylabel, plotname string) error {
	if series == nil {
		return fmt.Errorf("trajplot: given nil data")
	}
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	p := basicPlot(title, "Frame", ylabel)
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 255, A: 255}
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//BoxVolumePlot draws the box volume of every frame against the frame
//number and saves it as plotname.png.
func BoxVolumePlot(boxes [][3]float64, title, plotname string) error {
	return SeriesPlot(BoxVolumes(boxes), title, "Box volume", plotname)
}
