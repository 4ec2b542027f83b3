// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

import "testing"

func TestProgramReadAt(t *testing.T) {
	size := 5
	data := make([]byte, size)
	for i := 0; i < size; i++ {
		data[i] = byte(i + 1)
	}
	program := NewProgramForTests(data, size, size)

	var one [1]byte
	for i := 0; i < size; i++ {
		if a := program.ReadAt(i, one[:]); !a.IsOk() {
			t.Fatalf("[1] cannot read byte at index %d: %v", i, a)
		}
		if one[0] != byte(i+1) {
			t.Fatalf("[1] value at index %d is incorrect: got %d", i, one[0])
		}
	}

	if a := program.ReadAt(size, one[:]); a.IsOk() || a.UnwrapPanic() != "Segmentation Fault" {
		t.Fatalf("[1] read past the end must fail with Segmentation Fault, got %v", a)
	}

	var three [3]byte
	if a := program.ReadAt(1, three[:]); !a.IsOk() {
		t.Fatalf("[2] cannot read many bytes: %v", a)
	}
	if three != [3]byte{2, 3, 4} {
		t.Fatalf("[2] bytes are incorrect: %v", three)
	}
}

func TestProgramTypedReads(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0xef, 0xab, 0xcd, 0x09}
	program := NewProgramForTests(data, len(data), len(data))

	if v, a := program.ReadI8At(0); !a.IsOk() || v != 0x12 {
		t.Fatalf("[1] i8 mismatch: got %v, %v", v, a)
	}
	if v, a := program.ReadI16At(0); !a.IsOk() || v != 0x3412 {
		t.Fatalf("[2] i16 mismatch: got %v, %v", v, a)
	}
	if v, a := program.ReadI32At(0); !a.IsOk() || v != 0x78563412 {
		t.Fatalf("[3] i32 mismatch: got %v, %v", v, a)
	}
	if v, a := program.ReadI64At(0); !a.IsOk() || v != 0x09cdabef78563412 {
		t.Fatalf("[4] i64 mismatch: got %#x, %v", v, a)
	}
	if v, a := program.ReadU8At(0); !a.IsOk() || v != 0x12 {
		t.Fatalf("[5] u8 mismatch: got %v, %v", v, a)
	}
	if v, a := program.ReadU16At(0); !a.IsOk() || v != 0x3412 {
		t.Fatalf("[6] u16 mismatch: got %v, %v", v, a)
	}
	if v, a := program.ReadU32At(0); !a.IsOk() || v != 0x78563412 {
		t.Fatalf("[7] u32 mismatch: got %v, %v", v, a)
	}
	if v, a := program.ReadU64At(0); !a.IsOk() || v != 0x09cdabef78563412 {
		t.Fatalf("[8] u64 mismatch: got %#x, %v", v, a)
	}
}
