/*
 * write.go, part of moltraj.
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

package lammpstrj

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	v3 "github.com/gomd/moltraj/v3"
	"gonum.org/v1/gonum/mat"
)

//LmpW is a handle for a LAMMPS dump trajectory open for writing. It is
//driven once per frame with WNext. A write handle does not seek: frames
//only ever get appended.
type LmpW struct {
	fhandle   *os.File
	zip       io.WriteCloser //non-nil when writing through a compressor
	h         *bufio.Writer
	natoms    int //atoms per frame written so far, -1 before the first frame
	frames    int //frames written; doubles as the emitted timestep counter
	types     []int
	filename  string
	writeable bool
}

//NewWriter opens a LAMMPS dump trajectory file for writing. The file may
//be compressed (see the package documentation). By default an existing
//file is overwritten; pass false to refuse that instead.
func NewWriter(name string, overwrite ...bool) (*LmpW, error) {
	over := true
	if len(overwrite) > 0 {
		over = overwrite[0]
	}
	W := new(LmpW)
	W.filename = name
	W.natoms = -1
	target, err := W.prepTarget(over)
	if err != nil {
		return nil, errDecorate(err, "NewWriter")
	}
	W.h = bufio.NewWriter(target)
	W.writeable = true
	return W, nil
}

//SetTypes sets the per-atom types emitted for every following frame,
//indexed by id-1. Atoms without an entry get type 1, so a nil slice (the
//default) makes all particles the same type.
func (W *LmpW) SetTypes(types []int) {
	W.types = types
}

//Len returns the number of atoms per frame written so far, or -1 if
//nothing has been written yet.
func (W *LmpW) Len() int {
	return W.natoms
}

//Tell returns the number of frames written.
func (W *LmpW) Tell() int {
	return W.frames
}

//Seek is not available on a trajectory open for writing.
func (W *LmpW) Seek(offset, whence int) error {
	return Error{"seek is not supported on a trajectory open for writing", W.filename, []string{"Seek"}, true}
}

//WNext writes coord as the next frame of the trajectory. The emitted
//timestep is just the frame's index within this handle, ids follow the
//row order of coord, and coordinates are written with 3 decimals (any
//further precision is lost). If a box slice of at least 3 elements is
//given, its first three elements are the box lengths for the frame.
//
//The box bounds are written as (min, min+length) per axis, with min taken
//from the frame's own coordinates, not from a tracked origin: callers
//that need a specific absolute origin must pre-shift the coordinates.
func (W *LmpW) WNext(coord *v3.Matrix, box ...[]float64) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	var boxl [3]float64
	if len(box) > 0 && len(box[0]) >= 3 {
		boxl[0] = box[0][0]
		boxl[1] = box[0][1]
		boxl[2] = box[0][2]
	}
	v := coord.NVecs()
	mins := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	for i := 0; i < v; i++ {
		for j := 0; j < 3; j++ {
			if c := coord.At(i, j); c < mins[j] {
				mins[j] = c
			}
		}
	}
	if v == 0 {
		mins = [3]float64{}
	}
	fmt.Fprintf(W.h, "ITEM: TIMESTEP\n%d\n", W.frames)
	fmt.Fprintf(W.h, "ITEM: NUMBER OF ATOMS\n%d\n", v)
	fmt.Fprintf(W.h, "ITEM: BOX BOUNDS pp pp pp\n")
	for j := 0; j < 3; j++ {
		fmt.Fprintf(W.h, "%g %g\n", mins[j], mins[j]+boxl[j])
	}
	fmt.Fprintf(W.h, "ITEM: ATOMS id type xu yu zu\n")
	for i := 0; i < v; i++ {
		typ := 1
		if i < len(W.types) {
			typ = W.types[i]
		}
		fmt.Fprintf(W.h, "%d %d %8.3f %8.3f %8.3f\n", i+1, typ, coord.At(i, 0), coord.At(i, 1), coord.At(i, 2))
	}
	if err := W.h.Flush(); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.frames++
	W.natoms = v
	return nil
}

//WNextDense is WNext for a gonum Dense matrix, for compatibility.
func (W *LmpW) WNextDense(dcoord *mat.Dense, box ...[]float64) error {
	coord := v3.Dense2Matrix(dcoord)
	err := W.WNext(coord, box...)
	if err != nil {
		err = errDecorate(err, "WNextDense")
	}
	return err
}

//Close flushes and closes the trajectory. The handle can not be written
//after this call, but calling Close again is harmless.
func (W *LmpW) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Flush()
	if W.zip != nil {
		W.zip.Close()
		W.zip = nil
	}
	if W.fhandle != nil {
		W.fhandle.Close()
		W.fhandle = nil
	}
	W.writeable = false
}
