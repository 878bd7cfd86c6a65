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

//Package lammpstrj reads and writes LAMMPS dump trajectory files
//(lammpstrj), the line-oriented text format LAMMPS produces with its
//"dump atom" and "dump custom" commands.

/******************** Format, as handled here **********************************

A lammpstrj file is a sequence of frames, one per timestep. Each frame is a
fixed 9-line header followed by one line per atom:

	ITEM: TIMESTEP
	<integer timestep>
	ITEM: NUMBER OF ATOMS
	<integer atom count>
	ITEM: BOX BOUNDS <flags>
	<xmin> <xmax>
	<ymin> <ymax>
	<zmin> <zmax>
	ITEM: ATOMS id type xu yu zu
	<id> <type> <x> <y> <z>     (atom count times)

Lengths are in whatever unit set the simulation used; this package does not
convert them (the moltraj loader converts the supported "real" set, in
Angstrom, to nm). Only rectangular boxes are handled: the box is reduced to
the three per-axis lengths max-min, and triclinic tilt flags are not
understood.

The defining subtlety of the format is that the atom lines of a frame are
NOT required to be in id order: LAMMPS writes them in processor-decomposition
order. Each line is therefore stored at slot id-1 of the frame, whatever the
order of arrival. Duplicate or missing ids are not detected (the slot is
simply overwritten, or left zeroed); ids outside [1, atom count] are a
format error.

The only end-of-trajectory marker is an empty timestep line (i.e. the file
simply stops at a frame boundary), or the file stopping inside the atom
lines of a frame. Both are reported with a LastFrameError. Anything else
out of place is a real error, reported with the running line number.

Files whose name carries an extra .gz, .zst or .lzw suffix are transparently
(de)compressed.

********************************************************************************/
package lammpstrj
