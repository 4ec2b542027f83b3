// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

import "math"

// Program is the immutable image a Processor executes: a flat byte buffer
// split into a data region ([dataPointer, codePointer)) and a code region
// ([codePointer, len(program))).
type Program struct {
	program     []byte
	dataPointer int
	codePointer int
}

// NewProgram wraps a raw program image whose data/code split has already
// been determined by the caller (see sasm/image for the on-disk loader that
// derives these pointers from a header).
func NewProgram(program []byte, dataPointer, codePointer int) *Program {
	return &Program{program: program, dataPointer: dataPointer, codePointer: codePointer}
}

// NewProgramForTests exists purely for unit tests that need to construct a
// Program with explicit pointers without going through sasm/image.
func NewProgramForTests(program []byte, dataPointer, codePointer int) *Program {
	return NewProgram(program, dataPointer, codePointer)
}

func (p *Program) Program() []byte     { return p.program }
func (p *Program) Size() int           { return len(p.program) }
func (p *Program) DataPointer() int    { return p.dataPointer }
func (p *Program) DataPointerEnd() int { return p.codePointer }
func (p *Program) CodePointer() int    { return p.codePointer }
func (p *Program) CodePointerEnd() int { return p.Size() }

// ReadAt copies len(bytes) bytes from the image starting at index.
func (p *Program) ReadAt(index int, bytes []byte) Action {
	numBytes := len(bytes)
	lastIndex := index + numBytes
	if lastIndex > p.Size() || index < 0 {
		return Panic("Segmentation Fault")
	}
	copy(bytes, p.program[index:lastIndex])
	return Ok
}

func (p *Program) ReadU8At(index int) (uint8, Action) {
	var b [1]byte
	if a := p.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return b[0], Ok
}

func (p *Program) ReadU16At(index int) (uint16, Action) {
	var b [2]byte
	if a := p.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return endianess.Uint16(b[:]), Ok
}

func (p *Program) ReadU32At(index int) (uint32, Action) {
	var b [4]byte
	if a := p.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return endianess.Uint32(b[:]), Ok
}

func (p *Program) ReadU64At(index int) (uint64, Action) {
	var b [8]byte
	if a := p.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return endianess.Uint64(b[:]), Ok
}

func (p *Program) ReadI8At(index int) (int8, Action) {
	v, a := p.ReadU8At(index)
	return int8(v), a
}

func (p *Program) ReadI16At(index int) (int16, Action) {
	v, a := p.ReadU16At(index)
	return int16(v), a
}

func (p *Program) ReadI32At(index int) (int32, Action) {
	v, a := p.ReadU32At(index)
	return int32(v), a
}

func (p *Program) ReadI64At(index int) (int64, Action) {
	v, a := p.ReadU64At(index)
	return int64(v), a
}

func (p *Program) ReadF32At(index int) (float32, Action) {
	v, a := p.ReadU32At(index)
	return math.Float32frombits(v), a
}

func (p *Program) ReadF64At(index int) (float64, Action) {
	v, a := p.ReadU64At(index)
	return math.Float64frombits(v), a
}
