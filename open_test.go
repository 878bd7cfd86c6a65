/*
 * open_test.go, part of moltraj.
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

package moltraj

import (
	"math"
	"testing"
)

//A minimal topology for the loader boundary: the formats here carry no
//connectivity, so the caller has to bring their own.
type testTop struct {
	atoms []*Atom
}

func newTestTop(n int) *testTop {
	T := &testTop{atoms: make([]*Atom, n)}
	for i := range T.atoms {
		T.atoms[i] = &Atom{Name: "C", Symbol: "C", ID: i + 1, Molid: 1}
	}
	return T
}

func (T *testTop) Atom(i int) *Atom { return T.atoms[i] }

func (T *testTop) Len() int { return len(T.atoms) }

func TestOpenDispatch(Te *testing.T) {
	traj, err := Open("test/traj.lammpstrj")
	if err != nil {
		Te.Fatal(err)
	}
	defer traj.Close()
	if traj.Len() != 3 {
		Te.Errorf("dispatched codec Len: got %d, want 3", traj.Len())
	}
	//the compression suffix must not confuse the dispatch
	gz, err := Open("test/traj.lammpstrj.gz")
	if err != nil {
		Te.Fatal(err)
	}
	gz.Close()
	if _, err := Open("test/traj.weird"); err == nil {
		Te.Error("opening an unknown extension should have failed")
	}
}

func TestLoad(Te *testing.T) {
	traj, err := Load("test/traj.lammpstrj", newTestTop(3), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(traj.Coords) != 3 || len(traj.BoxLengths) != 3 {
		Te.Fatalf("loaded %d frames and %d boxes, want 3 and 3", len(traj.Coords), len(traj.BoxLengths))
	}
	//the file is in Angstrom; loaded trajectories are in nm
	if got := traj.Coords[0].At(0, 0); math.Abs(got-0.1) > 1e-12 {
		Te.Errorf("first coordinate: got %v nm, want 0.1", got)
	}
	if got := traj.BoxLengths[2][0]; math.Abs(got-1.2) > 1e-12 {
		Te.Errorf("last box length: got %v nm, want 1.2", got)
	}
	for _, ang := range traj.BoxAngles {
		if ang != RectangularAngle {
			Te.Errorf("box angle: got %v, want %v", ang, RectangularAngle)
		}
	}
	if traj.Time[2] != 2.0 {
		Te.Errorf("time axis: got %v, want 2", traj.Time[2])
	}
}

func TestLoadSingleFrame(Te *testing.T) {
	opts := DefaultLoadOptions()
	opts.Frame = 1
	traj, err := Load("test/traj.lammpstrj", newTestTop(3), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if len(traj.Coords) != 1 {
		Te.Fatalf("single-frame load: got %d frames, want 1", len(traj.Coords))
	}
	//atom id 1 of frame 1 sits at x=1.25 Angstrom
	if got := traj.Coords[0].At(0, 0); math.Abs(got-0.125) > 1e-12 {
		Te.Errorf("frame 1 coordinate: got %v nm, want 0.125", got)
	}
	if traj.Time[0] != 1.0 {
		Te.Errorf("single-frame time axis: got %v, want 1", traj.Time[0])
	}
}

func TestLoadStride(Te *testing.T) {
	opts := DefaultLoadOptions()
	opts.Stride = 2
	traj, err := Load("test/traj.lammpstrj", newTestTop(3), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if len(traj.Coords) != 2 {
		Te.Fatalf("strided load: got %d frames, want 2", len(traj.Coords))
	}
	//atom id 1 of frame 2 sits at x=1.5 Angstrom
	if got := traj.Coords[1].At(0, 0); math.Abs(got-0.15) > 1e-12 {
		Te.Errorf("strided frame 1 coordinate: got %v nm, want 0.15", got)
	}
	//the time axis counts source frames, not kept ones
	if traj.Time[0] != 0.0 || traj.Time[1] != 2.0 {
		Te.Errorf("strided time axis: got %v, want [0 2]", traj.Time)
	}
}

func TestLoadSubset(Te *testing.T) {
	opts := DefaultLoadOptions()
	opts.Indexes = []int{2, 0}
	//a topology covering just the selected atoms is enough
	traj, err := Load("test/traj.lammpstrj", newTestTop(2), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if n := traj.Coords[0].NVecs(); n != 2 {
		Te.Fatalf("subset load: got %d atoms per frame, want 2", n)
	}
	//the first kept atom is id 3, at x=3.0 Angstrom in frame 0
	if got := traj.Coords[0].At(0, 0); math.Abs(got-0.3) > 1e-12 {
		Te.Errorf("subset coordinate: got %v nm, want 0.3", got)
	}
	//a full topology works too
	if _, err := Load("test/traj.lammpstrj", newTestTop(3), opts); err != nil {
		Te.Error(err)
	}
}

func TestLoadUsageErrors(Te *testing.T) {
	if _, err := Load("test/traj.lammpstrj", nil, nil); err == nil {
		Te.Error("loading without a topology should have failed")
	}
	if _, err := Load("test/traj.lammpstrj", newTestTop(5), nil); err == nil {
		Te.Error("loading with a mismatched topology should have failed")
	}
	opts := DefaultLoadOptions()
	opts.UnitSet = "metal"
	if _, err := Load("test/traj.lammpstrj", newTestTop(3), opts); err == nil {
		Te.Error("an unsupported unit set should have failed")
	}
}

func TestSaveRoundTrip(Te *testing.T) {
	orig, err := Load("test/traj.lammpstrj", newTestTop(3), nil)
	if err != nil {
		Te.Fatal(err)
	}
	err = Save("test/saved.lammpstrj", orig.Coords, orig.BoxLengths, []int{1, 2, 1})
	if err != nil {
		Te.Fatal(err)
	}
	back, err := Load("test/saved.lammpstrj", newTestTop(3), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(back.Coords) != len(orig.Coords) {
		Te.Fatalf("saved %d frames, got back %d", len(orig.Coords), len(back.Coords))
	}
	//nm -> Angstrom text with 3 decimals -> nm loses a bit of precision
	for f := range orig.Coords {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if math.Abs(back.Coords[f].At(i, j)-orig.Coords[f].At(i, j)) > 1e-4 {
					Te.Errorf("frame %d atom %d coordinate %d: got %v, want about %v", f, i, j, back.Coords[f].At(i, j), orig.Coords[f].At(i, j))
				}
			}
		}
		for j := 0; j < 3; j++ {
			if math.Abs(back.BoxLengths[f][j]-orig.BoxLengths[f][j]) > 1e-9 {
				Te.Errorf("frame %d box length %d: got %v, want %v", f, j, back.BoxLengths[f][j], orig.BoxLengths[f][j])
			}
		}
	}
}
