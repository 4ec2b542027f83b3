// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package image loads a sasm program image from disk, deriving the data
// and code region split that sasm.Program needs from a small fixed header.
package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/mosfetlang/sand/sasm"
)

// Magic is the 4-byte signature every image file starts with.
var Magic = [4]byte{'S', 'A', 'S', 'M'}

// HeaderSize is the fixed size, in bytes, of the image header preceding the
// raw program bytes: magic(4) + version(4) + dataPointer(4) + codePointer(4).
const HeaderSize = 16

// ErrBadMagic is returned when a file does not start with Magic.
var ErrBadMagic = errors.New("image: not a sasm program image")

// ErrUnsupportedVersion is returned for a header version this loader does
// not understand.
var ErrUnsupportedVersion = errors.New("image: unsupported image version")

// Version is the only header version this loader emits and accepts.
const Version = 1

// Header describes the fixed-size prefix of a program image file.
type Header struct {
	Version     uint32
	DataPointer uint32
	CodePointer uint32
}

// EncodeHeader serializes h into the HeaderSize-byte prefix of an image
// file; the raw program bytes are not included.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint32(buf[8:12], h.DataPointer)
	binary.LittleEndian.PutUint32(buf[12:16], h.CodePointer)
	return buf
}

func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("image: truncated header (%d bytes)", len(buf))
	}
	if [4]byte(buf[0:4]) != Magic {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Version:     binary.LittleEndian.Uint32(buf[4:8]),
		DataPointer: binary.LittleEndian.Uint32(buf[8:12]),
		CodePointer: binary.LittleEndian.Uint32(buf[12:16]),
	}
	if h.Version != Version {
		return Header{}, ErrUnsupportedVersion
	}
	return h, nil
}

// Load reads a program image from path, memory-mapping the file read-only
// via mmap-go so large images are not copied into the process's heap.
func Load(path string) (*sasm.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Some filesystems (and all pipes) refuse mmap; fall back to a
		// plain read rather than failing the whole load.
		data, readErr := io.ReadAll(f)
		if readErr != nil {
			return nil, fmt.Errorf("image: mmap failed (%v) and fallback read failed: %w", err, readErr)
		}
		return decode(data)
	}

	return decode([]byte(m))
}

// LoadReader builds a program image from an arbitrary io.Reader (e.g.
// os.Stdin), always using a plain read since mmap requires a regular file.
func LoadReader(r io.Reader) (*sasm.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) (*sasm.Program, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	body := data[HeaderSize:]
	return sasm.NewProgram(body, int(header.DataPointer), int(header.CodePointer)), nil
}
