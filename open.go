/*
 * open.go, part of moltraj.
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

//open.go maps file extensions to codecs and puts the thin loading/saving
//glue on top of them: unit conversion to the nm-based canonical
//representation, the fixed rectangular box angles and the time axis.

package moltraj

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomd/moltraj/traj/lammpstrj"
	v3 "github.com/gomd/moltraj/v3"
)

//OpenFunc opens a trajectory file of some format for reading.
type OpenFunc func(name string) (FrameReader, error)

//CreateFunc opens a trajectory file of some format for writing. The
//second argument is whether an existing file may be clobbered.
type CreateFunc func(name string, overwrite bool) (TrajW, error)

//The codec tables. They are fixed at process start: a codec is registered
//by adding a line here, not by mutating the maps at run time.
var (
	formats = map[string]OpenFunc{
		"lammpstrj": func(name string) (FrameReader, error) { return lammpstrj.New(name) },
	}
	wformats = map[string]CreateFunc{
		"lammpstrj": func(name string, overwrite bool) (TrajW, error) { return lammpstrj.NewWriter(name, overwrite) },
	}
)

//formatExt returns the extension deciding the codec for a file name,
//with any compression suffix (gz, zst, lzw) peeled off first.
func formatExt(name string) string {
	parts := strings.Split(strings.ToLower(name), ".")
	for len(parts) > 1 {
		switch last := parts[len(parts)-1]; last {
		case "gz", "zst", "lzw":
			parts = parts[:len(parts)-1]
		default:
			return last
		}
	}
	return ""
}

//Open opens a trajectory file for reading with the codec registered for
//its extension.
func Open(name string) (FrameReader, error) {
	open, ok := formats[formatExt(name)]
	if !ok {
		return nil, fmt.Errorf("moltraj: no codec registered for trajectory file %s", name)
	}
	return open(name)
}

//Create opens a trajectory file for writing with the codec registered
//for its extension.
func Create(name string, overwrite bool) (TrajW, error) {
	create, ok := wformats[formatExt(name)]
	if !ok {
		return nil, fmt.Errorf("moltraj: no codec registered for trajectory file %s", name)
	}
	return create(name, overwrite)
}

//Trajectory is a whole trajectory loaded in memory, in the canonical
//units: lengths in nm, angles in degrees, time counted in frames.
type Trajectory struct {
	Coords     []*v3.Matrix //one Nx3 block per frame
	BoxLengths [][3]float64 //per-frame box lengths
	BoxAngles  [3]float64   //always 90,90,90: only rectangular cells are handled
	Time       []float64
}

//LoadOptions modify what Load reads. The zero value is not useful;
//start from DefaultLoadOptions.
type LoadOptions struct {
	Frame   int    //if >=0, load only this frame; Stride is then ignored
	Stride  int    //keep one frame in every Stride
	Indexes []int  //read only these atoms, in this order; nil for all
	UnitSet string //the unit set the simulation used. Only "real" is supported.
}

func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{Frame: -1, Stride: 1, UnitSet: "real"}
}

//Load reads a whole trajectory file into memory, converted to the
//canonical nm representation. The formats handled here carry no
//connectivity information at all, so the topology must be supplied by
//the caller, and its length must match the trajectory's atom count (or,
//when an atom selection is given, the length of the selection).
//A nil opts means DefaultLoadOptions.
func Load(name string, top Atomer, opts *LoadOptions) (*Trajectory, error) {
	if top == nil {
		return nil, fmt.Errorf("moltraj: Load needs a topology: trajectory files of this kind don't carry one")
	}
	if opts == nil {
		opts = DefaultLoadOptions()
	}
	if opts.UnitSet != "" && opts.UnitSet != "real" {
		return nil, fmt.Errorf("moltraj: unsupported unit set %q", opts.UnitSet)
	}
	traj, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer traj.Close()
	nframes, stride := -1, opts.Stride
	if stride <= 0 {
		stride = 1
	}
	if opts.Frame >= 0 {
		if err := traj.Seek(opts.Frame, io.SeekStart); err != nil {
			return nil, err
		}
		nframes, stride = 1, 1
	}
	coords, boxes, err := traj.Read(nframes, stride, opts.Indexes)
	if err != nil {
		return nil, err
	}
	if len(coords) > 0 && top.Len() != traj.Len() {
		//with an atom selection, a topology covering just the selected
		//atoms is also accepted
		if opts.Indexes == nil || top.Len() != len(opts.Indexes) {
			return nil, fmt.Errorf("moltraj: topology has %d atoms but trajectory %s has %d", top.Len(), name, traj.Len())
		}
	}
	t := new(Trajectory)
	t.Coords = coords
	t.BoxLengths = boxes
	t.BoxAngles = [3]float64{RectangularAngle, RectangularAngle, RectangularAngle}
	t.Time = make([]float64, len(coords))
	offset := 0
	if opts.Frame >= 0 {
		offset = opts.Frame
	}
	for i, c := range t.Coords {
		//the embedded Dense is passed so gonum sees the self-reference
		//as such instead of as a forbidden overlap
		c.Scale(A2Nm, c.Dense)
		for j := 0; j < 3; j++ {
			t.BoxLengths[i][j] *= A2Nm
		}
		//strided reads keep every stride-th frame, so the time axis
		//advances by stride per kept frame
		t.Time[i] = float64(i*stride + offset)
	}
	return t, nil
}

//Save writes coords (in nm, one Nx3 block per frame, with the matching
//per-frame box lengths) to a trajectory file, converting to the file's
//own units. types, if non-nil, gives the per-atom particle types.
func Save(name string, coords []*v3.Matrix, boxes [][3]float64, types []int) error {
	if len(boxes) != len(coords) {
		return fmt.Errorf("moltraj: got %d frames but %d boxes", len(coords), len(boxes))
	}
	w, err := Create(name, true)
	if err != nil {
		return err
	}
	if closer, ok := w.(interface{ Close() }); ok {
		defer closer.Close()
	}
	if st, ok := w.(interface{ SetTypes([]int) }); ok && types != nil {
		st.SetTypes(types)
	}
	box := make([]float64, 3)
	for i, c := range coords {
		out := v3.Zeros(c.NVecs())
		out.Scale(Nm2A, c)
		for j := 0; j < 3; j++ {
			box[j] = boxes[i][j] * Nm2A
		}
		if err := w.WNext(out, box); err != nil {
			return err
		}
	}
	return nil
}
