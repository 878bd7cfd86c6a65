/*
 * interfaces.go, part of moltraj.
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

import v3 "github.com/gomd/moltraj/v3"

// Traj is the interface for any trajectory object that can be read
// sequentially, one frame at a time.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame and puts it in output, or discards it if
	//output is nil. It can also fill the (optional) box slice with the
	//box lengths present in the frame, if any.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// TrajW is the interface for a trajectory open for writing.
type TrajW interface {

	//writes the next frame to the trajectory. The optional box slice
	//carries the box lengths for the frame.
	WNext(coord *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame written so far, or -1 if
	//nothing has been written yet.
	Len() int
}

// FrameReader is a Traj that additionally supports whole read requests
// (frame count, stride, atom subset) and frame-granular seeking. The
// codecs in this module implement it.
type FrameReader interface {
	Traj

	//Read decodes up to nframes frames (all remaining if nframes<=0),
	//keeping every stride-th one, projected to the given atom indexes
	//if indexes is non-nil. Reaching the end of the trajectory mid-read
	//is not an error; the frames read so far are returned.
	Read(nframes, stride int, indexes []int) ([]*v3.Matrix, [][3]float64, error)

	//Seek moves the cursor to a frame, following the io.Seek whence
	//convention, but counting frames, not bytes.
	Seek(offset, whence int) error

	//Tell returns the number of frames read since the trajectory
	//was (re)opened.
	Tell() int

	//Close closes the underlying file. Idempotent.
	Close()
}

// Atom contains the per-particle information a topology supplies. The
// trajectory formats handled here carry coordinates only, so this is
// deliberately minimal; richer topologies can embed it.
type Atom struct {
	Name   string //atom name, forcefield or PDB style
	ID     int    //the atom's id, 1-based
	Symbol string //element symbol
	Molid  int    //molecule or residue number
}

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Allows adding information to the error as it is passed up the call stack. Each call returns the current "decoration" slice of strings. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
