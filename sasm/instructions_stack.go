// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

// Drop8 drops a ?8 from the stack.
//
// Stack:
// - ?8
func Drop8(p *Processor) Action {
	_, a := p.PopU8()
	return a
}

// Drop16 drops a ?16 from the stack.
//
// Stack:
// - ?16
func Drop16(p *Processor) Action {
	_, a := p.PopU16()
	return a
}

// Drop32 drops a ?32 from the stack.
//
// Stack:
// - ?32
func Drop32(p *Processor) Action {
	_, a := p.PopU32()
	return a
}

// Drop64 drops a ?64 from the stack.
//
// Stack:
// - ?64
func Drop64(p *Processor) Action {
	_, a := p.PopU64()
	return a
}

// Const8 reads a ?8 immediate from the code stream and pushes it.
//
// Stack:
// + ?8
func Const8(p *Processor) Action {
	v, a := p.CodeNextU8()
	if !a.IsOk() {
		return a
	}
	return p.PushU8(v)
}

// Const16 reads a ?16 immediate from the code stream and pushes it.
//
// Stack:
// + ?16
func Const16(p *Processor) Action {
	v, a := p.CodeNextU16()
	if !a.IsOk() {
		return a
	}
	return p.PushU16(v)
}

// Const32 reads a ?32 immediate from the code stream and pushes it.
//
// Stack:
// + ?32
func Const32(p *Processor) Action {
	v, a := p.CodeNextU32()
	if !a.IsOk() {
		return a
	}
	return p.PushU32(v)
}

// Const64 reads a ?64 immediate from the code stream and pushes it.
//
// Stack:
// + ?64
func Const64(p *Processor) Action {
	v, a := p.CodeNextU64()
	if !a.IsOk() {
		return a
	}
	return p.PushU64(v)
}
