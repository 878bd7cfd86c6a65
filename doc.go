/*
 * doc.go, part of moltraj.
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

/*Package moltraj provides reading and writing of molecular dynamics
trajectory files, plus the small amount of shared machinery the per-format
codec packages need: the trajectory interfaces, the error interfaces, unit
conversion constants and a registry that maps file extensions to codecs.

	**moltraj capabilities**

    Reads and writes LAMMPS dump (lammpstrj) trajectory files, plain or
	compressed (gzip, zstd, lzw), frame by frame or in batches with
	stride and atom-subset selection.

    Frame-granular seeking within a trajectory being read.

    Loads whole trajectories into memory converted to nanometers, with a
	caller-supplied topology (the formats supported so far carry no
	connectivity information themselves).

Codecs live in their own packages under traj/, one per format. They work
on v3.Matrix coordinate blocks (Nx3 matrices backed by gonum) and report
problems through the Error/TrajError interfaces declared here; the normal
end of a trajectory is signaled with a LastFrameError, which callers are
expected to filter with a type assertion.
*/
package moltraj
