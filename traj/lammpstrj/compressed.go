/*
 * compressed.go, part of moltraj.
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
	"compress/gzip"
	"compress/lzw"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	lzwOrder        = lzw.MSB
	lzwLitwidth int = 8
)

//compressionExt returns the compression suffix of a file name ("gz",
//"zst" or "lzw"), or the empty string for a plain text trajectory.
func compressionExt(fname string) string {
	temp := strings.Split(fname, ".")
	switch fk := strings.ToLower(temp[len(temp)-1]); fk {
	case "gz", "zst", "lzw":
		return fk
	}
	return ""
}

//This shim exists because *zstd.Decoder's Close returns nothing, so it
//does not implement io.ReadCloser by itself.
type zstql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the decoder. The object can not be used after this call.
func (z zstql) Close() error {
	z.closeql()
	return nil
}

//prepSource opens the trajectory file and returns something to read plain
//text from, decompressing on the fly if the file name asks for it. On
//success L.fhandle (and L.zip, if compressed) are set; Close releases
//them.
func (L *LmpR) prepSource() (io.Reader, error) {
	var err error
	L.fhandle, err = os.Open(L.filename)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), L.filename, []string{"os.Open", "prepSource"}, true}
	}
	reader := bufio.NewReader(L.fhandle)
	switch compressionExt(L.filename) {
	case "gz":
		z, err := gzip.NewReader(reader)
		if err != nil {
			return nil, Error{"Can't read gzip header: " + err.Error(), L.filename, []string{"prepSource"}, true}
		}
		L.zip = z
		return z, nil
	case "zst":
		d, err := zstd.NewReader(reader)
		if err != nil {
			return nil, Error{"Can't set up zstd: " + err.Error(), L.filename, []string{"prepSource"}, true}
		}
		L.zip = zstql{d.Close, d}
		return L.zip, nil
	case "lzw":
		L.zip = lzw.NewReader(reader, lzwOrder, lzwLitwidth)
		return L.zip, nil
	}
	return reader, nil
}

//prepTarget creates the trajectory file and returns something to write
//plain text to, compressing on the fly if the file name asks for it.
//An existing file is only clobbered when overwrite says so.
func (W *LmpW) prepTarget(overwrite bool) (io.Writer, error) {
	if !overwrite {
		if _, err := os.Stat(W.filename); err == nil {
			return nil, Error{"File already exists and overwriting was not allowed", W.filename, []string{"prepTarget"}, true}
		}
	}
	var err error
	W.fhandle, err = os.Create(W.filename)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), W.filename, []string{"os.Create", "prepTarget"}, true}
	}
	switch compressionExt(W.filename) {
	case "gz":
		W.zip = gzip.NewWriter(W.fhandle)
		return W.zip, nil
	case "zst":
		z, err := zstd.NewWriter(W.fhandle, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, Error{"Can't set up zstd: " + err.Error(), W.filename, []string{"prepTarget"}, true}
		}
		W.zip = z
		return z, nil
	case "lzw":
		W.zip = lzw.NewWriter(W.fhandle, lzwOrder, lzwLitwidth)
		return W.zip, nil
	}
	return W.fhandle, nil
}
