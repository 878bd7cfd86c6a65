/*
 * trajplot_test.go, part of moltraj.
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

package trajplot

import (
	"os"
	"testing"

	"github.com/gomd/moltraj/traj/lammpstrj"
)

func TestBoxVolumes(Te *testing.T) {
	vols := BoxVolumes([][3]float64{{2, 3, 4}, {1, 1, 1}})
	if vols[0] != 24 || vols[1] != 1 {
		Te.Errorf("BoxVolumes: got %v, want [24 1]", vols)
	}
}

func TestBoxVolumePlot(Te *testing.T) {
	traj, err := lammpstrj.New("../test/traj.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	_, boxes, err := traj.Read(0, 1, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if err := BoxVolumePlot(boxes, "Box volume", "../test/boxvolume"); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("../test/boxvolume.png"); err != nil {
		Te.Errorf("plot file was not written: %v", err)
	}
	if err := SeriesPlot(nil, "nothing", "y", "../test/nothing"); err == nil {
		Te.Error("plotting nil data should have failed")
	}
}
