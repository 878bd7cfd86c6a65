/*
 * lammpstrj.go, part of moltraj.
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
	"os"
	"strconv"
	"strings"

	v3 "github.com/gomd/moltraj/v3"
)

//LmpR is a handle for a LAMMPS dump trajectory open for reading.
type LmpR struct {
	natoms      int //atoms in the last frame read (or peeked)
	readable    bool
	filename    string
	fhandle     *os.File
	zip         io.ReadCloser //non-nil when reading through a decompressor
	lmp         *bufio.Reader
	types       []int //per-atom types of the last frame read
	frameindex  int   //frames read since the file was (re)opened
	linecounter int   //lines read since the file was (re)opened, for diagnostics
}

//New opens a LAMMPS dump trajectory file for reading. The file may be
//compressed (see the package documentation). The atom count of the first
//frame is peeked at so that Len is usable right away, and the cursor is
//left at the start of the trajectory.
func New(filename string) (*LmpR, error) {
	traj := new(LmpR)
	traj.filename = filename
	if err := traj.open(); err != nil {
		return nil, errDecorate(err, "New")
	}
	if err := traj.peekNatoms(); err != nil {
		traj.Close()
		return nil, errDecorate(err, "New")
	}
	if err := traj.open(); err != nil {
		return nil, errDecorate(err, "New")
	}
	return traj, nil
}

//open (re)builds the reading chain from the start of the file and resets
//the cursor. Any previously open handles are closed first.
func (L *LmpR) open() error {
	L.Close()
	source, err := L.prepSource()
	if err != nil {
		return err
	}
	L.lmp = bufio.NewReader(source)
	L.frameindex = 0
	L.linecounter = 0
	L.readable = true
	return nil
}

//peekNatoms reads up to the atom-count line of the first frame header so
//the handle knows how big its frames are before the first Next call. An
//empty trajectory is fine; natoms just stays at zero.
func (L *LmpR) peekNatoms() error {
	L.readLine() //ITEM: TIMESTEP
	step, err := L.readLine()
	if err == io.EOF || strings.TrimSpace(step) == "" {
		return nil
	}
	if _, err := L.readLine(); err != nil { //ITEM: NUMBER OF ATOMS
		return Error{WrongFormat + ": file ends inside the first frame header", L.filename, []string{"peekNatoms"}, true}
	}
	natline, err := L.readLine()
	if err != nil {
		return Error{WrongFormat + ": file ends inside the first frame header", L.filename, []string{"peekNatoms"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(natline))
	if err != nil {
		return Error{fmt.Sprintf("%s: can't parse atom number from %q: %s", WrongFormat, natline, err.Error()), L.filename, []string{"peekNatoms"}, true}
	}
	L.natoms = natoms
	return nil
}

//Readable returns true if the object is ready to be read from,
//false otherwise. It doesn't guarantee that there is something
//to read.
func (L *LmpR) Readable() bool {
	return L.readable
}

//Len returns the number of atoms per frame. More precisely, the atom
//count of the last frame read, since the format allows it to change
//between frames (it normally doesn't).
func (L *LmpR) Len() int {
	return L.natoms
}

//Types returns the per-atom types of the last frame read, indexed by
//id-1. The slice is reused by the next call to Next.
func (L *LmpR) Types() []int {
	return L.types
}

//Tell returns the number of frames read since the file was (re)opened.
func (L *LmpR) Tell() int {
	return L.frameindex
}

//Close closes the file. The handle can not be read after this call, but
//calling Close again is harmless.
func (L *LmpR) Close() {
	if L == nil {
		return
	}
	if L.zip != nil {
		L.zip.Close()
		L.zip = nil
	}
	if L.fhandle != nil {
		L.fhandle.Close()
		L.fhandle = nil
	}
	L.readable = false
}

//readLine returns the next line of the trajectory, without its trailing
//newline. io.EOF is only returned when nothing at all was read, so a last
//line lacking a newline still comes back whole.
func (L *LmpR) readLine() (string, error) {
	line, err := L.lmp.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	L.linecounter++
	return strings.TrimSuffix(line, "\n"), nil
}

//headerError turns a failure to obtain one of the 9 header lines into the
//right error: past the timestep line, a truncated header is a format
//defect, not a normal end of trajectory.
func (L *LmpR) headerError(err error, caller string) error {
	if err == io.EOF {
		return Error{WrongFormat + ": file ends inside a frame header", L.filename, []string{caller}, true}
	}
	return Error{err.Error(), L.filename, []string{caller}, true}
}

//readHeader consumes the fixed 9-line frame header and returns the
//frame's atom count and per-axis box lengths (max-min of the bounds).
//An empty timestep line is the normal end of the trajectory and comes
//back as a LastFrameError.
func (L *LmpR) readHeader() (int, [3]float64, error) {
	var boxl [3]float64
	if _, err := L.readLine(); err != nil { //ITEM: TIMESTEP
		if err == io.EOF {
			return 0, boxl, newlastFrameError(L.filename, "readHeader")
		}
		return 0, boxl, Error{err.Error(), L.filename, []string{"readHeader"}, true}
	}
	step, err := L.readLine() //the timestep itself, unused
	if err == io.EOF || strings.TrimSpace(step) == "" {
		return 0, boxl, newlastFrameError(L.filename, "readHeader")
	}
	if err != nil {
		return 0, boxl, Error{err.Error(), L.filename, []string{"readHeader"}, true}
	}
	if _, err := L.readLine(); err != nil { //ITEM: NUMBER OF ATOMS
		return 0, boxl, L.headerError(err, "readHeader")
	}
	natline, err := L.readLine()
	if err != nil {
		return 0, boxl, L.headerError(err, "readHeader")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(natline))
	if err != nil {
		return 0, boxl, Error{fmt.Sprintf("%s: can't parse atom number from %q at line %d", WrongFormat, natline, L.linecounter-1), L.filename, []string{"readHeader"}, true}
	}
	if _, err := L.readLine(); err != nil { //ITEM: BOX BOUNDS and tilt flags
		return 0, boxl, L.headerError(err, "readHeader")
	}
	for axis := 0; axis < 3; axis++ {
		bline, err := L.readLine()
		if err != nil {
			return 0, boxl, L.headerError(err, "readHeader")
		}
		fields := strings.Fields(bline)
		if len(fields) < 2 {
			return 0, boxl, Error{fmt.Sprintf("%s: box bounds line %d needs two fields, got %q", WrongFormat, L.linecounter-1, bline), L.filename, []string{"readHeader"}, true}
		}
		low, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, boxl, Error{fmt.Sprintf("%s: can't parse box bound at line %d: %s", WrongFormat, L.linecounter-1, err.Error()), L.filename, []string{"readHeader"}, true}
		}
		high, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, boxl, Error{fmt.Sprintf("%s: can't parse box bound at line %d: %s", WrongFormat, L.linecounter-1, err.Error()), L.filename, []string{"readHeader"}, true}
		}
		boxl[axis] = high - low
	}
	if _, err := L.readLine(); err != nil { //ITEM: ATOMS id type xu yu zu
		return 0, boxl, L.headerError(err, "readHeader")
	}
	return natoms, boxl, nil
}

//readBody consumes exactly natoms atom lines. Each line is at least
//"id type x y z"; extra trailing fields are ignored. Records are placed
//at slot id-1 of keep (and of the types buffer), whatever the order they
//arrive in. keep==nil discards the frame while still checking it.
func (L *LmpR) readBody(natoms int, keep *v3.Matrix) error {
	if cap(L.types) < natoms {
		L.types = make([]int, natoms)
	} else {
		L.types = L.types[:natoms]
	}
	for i := 0; i < natoms; i++ {
		line, err := L.readLine()
		if err != nil {
			if err == io.EOF {
				//The trajectory stopped mid-frame. As in the header
				//case, this is how these files just end.
				return newlastFrameError(L.filename, "readBody")
			}
			return Error{err.Error(), L.filename, []string{"readBody"}, true}
		}
		lineno := L.linecounter - 1
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return Error{fmt.Sprintf("%s: atom record at line %d has %d fields, need at least 5", WrongFormat, lineno, len(fields)), L.filename, []string{"readBody"}, true}
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return Error{fmt.Sprintf("%s: can't parse atom id at line %d: %s", WrongFormat, lineno, err.Error()), L.filename, []string{"readBody"}, true}
		}
		if id < 1 || id > natoms {
			return Error{fmt.Sprintf("%s: atom id %d at line %d outside [1, %d]", WrongFormat, id, lineno, natoms), L.filename, []string{"readBody"}, true}
		}
		typ, err := strconv.Atoi(fields[1])
		if err != nil {
			return Error{fmt.Sprintf("%s: can't parse atom type at line %d: %s", WrongFormat, lineno, err.Error()), L.filename, []string{"readBody"}, true}
		}
		L.types[id-1] = typ
		for j := 0; j < 3; j++ {
			coord, err := strconv.ParseFloat(fields[2+j], 64)
			if err != nil {
				return Error{fmt.Sprintf("%s: can't parse coordinate at line %d: %s", WrongFormat, lineno, err.Error()), L.filename, []string{"readBody"}, true}
			}
			if keep != nil {
				keep.Set(id-1, j, coord)
			}
		}
	}
	return nil
}

//Next reads the next frame of the trajectory into keep, or reads and
//discards it if keep is nil (the frame is still fully checked). If a box
//slice of at least 3 elements is given, the frame's box lengths are put
//in its first three elements. The normal end of the trajectory is
//signaled with a LastFrameError; the handle stays usable, so it can still
//be rewound with Seek.
func (L *LmpR) Next(keep *v3.Matrix, box ...[]float64) error {
	if !L.readable {
		return Error{TrajUnIni, L.filename, []string{"Next"}, true}
	}
	natoms, boxl, err := L.readHeader()
	if err != nil {
		return errDecorate(err, "Next")
	}
	if keep != nil && keep.NVecs() < natoms {
		return Error{NotEnoughSpace, L.filename, []string{"Next"}, true}
	}
	if err := L.readBody(natoms, keep); err != nil {
		return errDecorate(err, "Next")
	}
	L.natoms = natoms
	L.frameindex++
	if len(box) > 0 && len(box[0]) >= 3 {
		box[0][0] = boxl[0]
		box[0][1] = boxl[1]
		box[0][2] = boxl[2]
	}
	return nil
}

//Read satisfies a whole read request in one call: it decodes up to
//nframes frames (all the remaining ones if nframes<=0), keeping one
//frame in every stride (the frames in between are decoded and thrown
//away). If indexes is not nil, each kept frame is projected to those
//atoms, in the order given. Reaching the end of the trajectory, even in
//the middle of a bounded request, is not an error: the frames kept so
//far are returned. A format defect anywhere is.
//
//The atom count is required to stay constant within one Read call, so
//the returned frames all have the same size; a trajectory whose atom
//count changes between frames can still be read with Next.
func (L *LmpR) Read(nframes, stride int, indexes []int) ([]*v3.Matrix, [][3]float64, error) {
	if !L.readable {
		return nil, nil, Error{TrajUnIni, L.filename, []string{"Read"}, true}
	}
	if stride <= 0 {
		stride = 1
	}
	coords := make([]*v3.Matrix, 0)
	boxes := make([][3]float64, 0)
	box := make([]float64, 3)
	natoms := -1
	for n := 0; nframes <= 0 || n < nframes; n++ {
		var frame *v3.Matrix
		if L.natoms > 0 {
			frame = v3.Zeros(L.natoms)
		}
		err := L.Next(frame, box)
		if err != nil {
			if isLastFrame(err) {
				break
			}
			return nil, nil, errDecorate(err, "Read")
		}
		if natoms == -1 {
			natoms = L.natoms
		} else if natoms != L.natoms {
			return nil, nil, Error{fmt.Sprintf("%s: atom count changed from %d to %d within one read", WrongFormat, natoms, L.natoms), L.filename, []string{"Read"}, true}
		}
		kept := frame
		if indexes != nil {
			kept = v3.Zeros(len(indexes))
			if err := kept.SomeVecsSafe(frame, indexes); err != nil {
				return nil, nil, Error{err.Error(), L.filename, []string{"Read"}, true}
			}
		}
		coords = append(coords, kept)
		boxes = append(boxes, [3]float64{box[0], box[1], box[2]})
		stop := false
		for j := 0; j < stride-1; j++ { //throw away the frames in between
			if err := L.Next(nil); err != nil {
				if isLastFrame(err) {
					stop = true
					break
				}
				return nil, nil, errDecorate(err, "Read")
			}
		}
		if stop {
			break
		}
	}
	return coords, boxes, nil
}

//Errors

//errDecorate is a helper that asserts that the error implements the
//Decorate method of the moltraj Error interface and decorates the error
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(interface {
		Error() string
		Decorate(string) []string
	})
	err2.Decorate(caller)
	return err2
}

//isLastFrame is true for the harmless error marking the normal end of a
//trajectory.
func isLastFrame(err error) bool {
	_, ok := err.(interface{ NormalLastFrameTermination() })
	return ok
}

//Error is the general structure for LAMMPS dump trajectory errors. It
//fulfills moltraj.Error and moltraj.TrajError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("LAMMPS dump file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error
func (err Error) Format() string { return "LAMMPS dump" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIni      = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Wrong format in the LAMMPS dump file or frame"
	NotEnoughSpace = "Not enough space in passed blocks"
	EOF            = "EOF"
)

//lastFrameError implements moltraj.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "LAMMPS dump" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
