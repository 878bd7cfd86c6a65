/*
 * seek.go, part of moltraj.
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
	"fmt"
	"io"
)

//Seek moves the cursor to another frame of the trajectory. offset counts
//frames, not bytes; whence is one of io.SeekStart and io.SeekCurrent
//(io.SeekEnd can not be supported: nothing in the format announces the
//total frame count, and finding it would mean scanning the whole file).
//
//The format has no index, so seeking is done by decoding frames and
//throwing them away, and going backwards means reopening the file and
//replaying from the start: the cost is proportional to the target frame,
//deliberately trading speed for not keeping an offset table (which would
//not survive the compressed variants anyway).
func (L *LmpR) Seek(offset, whence int) error {
	if !L.readable {
		return Error{TrajUnIni, L.filename, []string{"Seek"}, true}
	}
	switch {
	case whence == io.SeekStart && offset >= 0:
		if offset >= L.frameindex {
			return L.advance(offset - L.frameindex)
		}
		return L.rewind(offset)
	case whence == io.SeekCurrent && offset >= 0:
		return L.advance(offset)
	case whence == io.SeekCurrent && offset < 0:
		target := L.frameindex + offset
		if target < 0 {
			target = 0
		}
		return L.rewind(target)
	case whence == io.SeekEnd:
		return Error{"seeking from the end is not supported: the format carries no frame count", L.filename, []string{"Seek"}, true}
	default:
		return Error{fmt.Sprintf("invalid seek arguments: offset %d, whence %d", offset, whence), L.filename, []string{"Seek"}, true}
	}
}

//advance decodes and discards n frames. Running out of trajectory on the
//way is not an error; the cursor just stops at the last frame boundary.
func (L *LmpR) advance(n int) error {
	for i := 0; i < n; i++ {
		if err := L.Next(nil); err != nil {
			if isLastFrame(err) {
				return nil
			}
			return errDecorate(err, "advance")
		}
	}
	return nil
}

//rewind reopens the file at its start and replays forward to the target
//frame.
func (L *LmpR) rewind(target int) error {
	if err := L.open(); err != nil {
		return errDecorate(err, "rewind")
	}
	return L.advance(target)
}
