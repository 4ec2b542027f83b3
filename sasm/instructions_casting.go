// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

// Extend8To16 zero-extends a ?8 value to a u16 value.
//
// Stack:
// - ?8 - Input value.
// + u16 - Output value.
func Extend8To16(p *Processor) Action {
	v, a := p.PopU8()
	if !a.IsOk() {
		return a
	}
	return p.PushU16(uint16(v))
}

// Extend8To32 zero-extends a ?8 value to a u32 value.
func Extend8To32(p *Processor) Action {
	v, a := p.PopU8()
	if !a.IsOk() {
		return a
	}
	return p.PushU32(uint32(v))
}

// Extend16To32 zero-extends a ?16 value to a u32 value.
func Extend16To32(p *Processor) Action {
	v, a := p.PopU16()
	if !a.IsOk() {
		return a
	}
	return p.PushU32(uint32(v))
}

// Extend8To64 zero-extends a ?8 value to a u64 value.
func Extend8To64(p *Processor) Action {
	v, a := p.PopU8()
	if !a.IsOk() {
		return a
	}
	return p.PushU64(uint64(v))
}

// Extend16To64 zero-extends a ?16 value to a u64 value.
func Extend16To64(p *Processor) Action {
	v, a := p.PopU16()
	if !a.IsOk() {
		return a
	}
	return p.PushU64(uint64(v))
}

// Extend32To64 zero-extends a ?32 value to a u64 value.
func Extend32To64(p *Processor) Action {
	v, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.PushU64(uint64(v))
}

// ExtendSign8To16 sign-extends an i8 value to an i16 value.
//
// Stack:
// - ?8 - Input value.
// + i16 - Output value.
func ExtendSign8To16(p *Processor) Action {
	v, a := p.PopI8()
	if !a.IsOk() {
		return a
	}
	return p.PushI16(int16(v))
}

// ExtendSign8To32 sign-extends an i8 value to an i32 value.
func ExtendSign8To32(p *Processor) Action {
	v, a := p.PopI8()
	if !a.IsOk() {
		return a
	}
	return p.PushI32(int32(v))
}

// ExtendSign16To32 sign-extends an i16 value to an i32 value.
func ExtendSign16To32(p *Processor) Action {
	v, a := p.PopI16()
	if !a.IsOk() {
		return a
	}
	return p.PushI32(int32(v))
}

// ExtendSign8To64 sign-extends an i8 value to an i64 value.
func ExtendSign8To64(p *Processor) Action {
	v, a := p.PopI8()
	if !a.IsOk() {
		return a
	}
	return p.PushI64(int64(v))
}

// ExtendSign16To64 sign-extends an i16 value to an i64 value.
func ExtendSign16To64(p *Processor) Action {
	v, a := p.PopI16()
	if !a.IsOk() {
		return a
	}
	return p.PushI64(int64(v))
}

// ExtendSign32To64 sign-extends an i32 value to an i64 value.
func ExtendSign32To64(p *Processor) Action {
	v, a := p.PopI32()
	if !a.IsOk() {
		return a
	}
	return p.PushI64(int64(v))
}

// Trunc16To8 truncates a ?16 value, keeping its low byte.
//
// Stack:
// - ?16 - Input value.
// + ?8  - Output value.
func Trunc16To8(p *Processor) Action {
	v, a := p.PopU16()
	if !a.IsOk() {
		return a
	}
	return p.PushU8(uint8(v))
}

// Trunc32To8 truncates a ?32 value, keeping its low byte.
func Trunc32To8(p *Processor) Action {
	v, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.PushU8(uint8(v))
}

// Trunc32To16 truncates a ?32 value, keeping its low two bytes.
func Trunc32To16(p *Processor) Action {
	v, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.PushU16(uint16(v))
}

// Trunc64To8 truncates a ?64 value, keeping its low byte.
func Trunc64To8(p *Processor) Action {
	v, a := p.PopU64()
	if !a.IsOk() {
		return a
	}
	return p.PushU8(uint8(v))
}

// Trunc64To16 truncates a ?64 value, keeping its low two bytes.
func Trunc64To16(p *Processor) Action {
	v, a := p.PopU64()
	if !a.IsOk() {
		return a
	}
	return p.PushU16(uint16(v))
}

// Trunc64To32 truncates a ?64 value, keeping its low four bytes.
func Trunc64To32(p *Processor) Action {
	v, a := p.PopU64()
	if !a.IsOk() {
		return a
	}
	return p.PushU32(uint32(v))
}
