// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

import "testing"

func TestMemoryGrow(t *testing.T) {
	memory := NewEmptyMemory(1, 5)

	if a := memory.AddEmptyPage(); !a.IsOk() {
		t.Fatalf("[1] cannot add an empty page: %v", a)
	}
	if a := memory.AddEmptyPages(3); !a.IsOk() {
		t.Fatalf("[1] cannot add many empty pages: %v", a)
	}
	if a := memory.AddPage([]byte{2}); !a.IsOk() {
		t.Fatalf("[1] cannot add a custom page: %v", a)
	}

	if a := memory.AddEmptyPage(); a.IsOk() || a.UnwrapPanic() != "Memory out of bounds" {
		t.Fatalf("[1] adding another empty page must fail with Memory out of bounds, got %v", a)
	}
	if a := memory.AddEmptyPages(5); a.IsOk() || a.UnwrapPanic() != "Memory out of bounds" {
		t.Fatalf("[1] adding other empty pages must fail with Memory out of bounds, got %v", a)
	}
	if a := memory.AddPage([]byte{3}); a.IsOk() || a.UnwrapPanic() != "Memory out of bounds" {
		t.Fatalf("[1] adding another custom page must fail with Memory out of bounds, got %v", a)
	}
}

func TestMemoryReadAt(t *testing.T) {
	maxPages := 5
	memory := NewEmptyMemory(1, maxPages)
	for i := 1; i <= maxPages; i++ {
		if a := memory.AddPage([]byte{byte(i)}); !a.IsOk() {
			t.Fatalf("[1] cannot add a custom page for %d: %v", i, a)
		}
	}

	var one [1]byte
	for i := 0; i < maxPages; i++ {
		if a := memory.ReadAt(i, one[:]); !a.IsOk() {
			t.Fatalf("[1] cannot read byte at index %d: %v", i, a)
		}
		if one[0] != byte(i+1) {
			t.Fatalf("[1] value at index %d is incorrect: got %d", i, one[0])
		}
	}

	if a := memory.ReadAt(maxPages, one[:]); a.IsOk() || a.UnwrapPanic() != "Segmentation Fault" {
		t.Fatalf("[1] read past the last page must fail with Segmentation Fault, got %v", a)
	}

	var three [3]byte
	if a := memory.ReadAt(1, three[:]); !a.IsOk() {
		t.Fatalf("[2] cannot read many bytes: %v", a)
	}
	if three[0] != 2 || three[1] != 3 || three[2] != 4 {
		t.Fatalf("[2] bytes are incorrect: %v", three)
	}
}

func TestMemoryWriteAt(t *testing.T) {
	maxPages := 5
	memory := NewEmptyMemory(1, maxPages)
	if a := memory.AddEmptyPages(maxPages); !a.IsOk() {
		t.Fatalf("cannot reserve pages: %v", a)
	}

	if a := memory.WriteAt(1, []byte{9, 8, 7}); !a.IsOk() {
		t.Fatalf("cannot write spanning pages: %v", a)
	}

	var b [3]byte
	if a := memory.ReadAt(1, b[:]); !a.IsOk() {
		t.Fatalf("cannot read back written bytes: %v", a)
	}
	if b != [3]byte{9, 8, 7} {
		t.Fatalf("written bytes are incorrect: %v", b)
	}

	if a := memory.WriteAt(3, []byte{1, 2, 3}); a.IsOk() || a.UnwrapPanic() != "Segmentation Fault" {
		t.Fatalf("write past the last page must fail with Segmentation Fault, got %v", a)
	}
}

func TestMemoryTypedReadWrite(t *testing.T) {
	memory := NewEmptyMemory(MemoryDefaultPageSize, 1)
	if a := memory.AddEmptyPage(); !a.IsOk() {
		t.Fatalf("cannot add page: %v", a)
	}

	if a := memory.WriteU32At(0, 0x67452301); !a.IsOk() {
		t.Fatalf("cannot write u32: %v", a)
	}
	got, a := memory.ReadU32At(0)
	if !a.IsOk() {
		t.Fatalf("cannot read u32: %v", a)
	}
	if got != 0x67452301 {
		t.Fatalf("u32 round-trip mismatch: got %#x", got)
	}

	if a := memory.WriteU64At(8, 0xefcdab8967452301); !a.IsOk() {
		t.Fatalf("cannot write u64: %v", a)
	}
	got64, a := memory.ReadU64At(8)
	if !a.IsOk() {
		t.Fatalf("cannot read u64: %v", a)
	}
	if got64 != 0xefcdab8967452301 {
		t.Fatalf("u64 round-trip mismatch: got %#x", got64)
	}
}
