// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

import "testing"

func newTestProcessor(t *testing.T, stackSize int) *Processor {
	t.Helper()
	program := NewProgramForTests(nil, 0, 0)
	// A single page of exactly stackSize bytes keeps the stack size a
	// multiple of the page size for sizes smaller than the default page.
	memory := NewEmptyMemory(stackSize, 1)
	if a := memory.AddEmptyPage(); !a.IsOk() {
		t.Fatalf("cannot reserve the stack page: %v", a)
	}
	p := NewProcessor(memory, program, stackSize)
	return p
}

func TestProcessorPushPopRoundTrip(t *testing.T) {
	p := newTestProcessor(t, MemoryDefaultPageSize)

	if a := p.PushU8(0x12); !a.IsOk() {
		t.Fatalf("cannot push u8: %v", a)
	}
	if a := p.PushU32(0x78563412); !a.IsOk() {
		t.Fatalf("cannot push u32: %v", a)
	}
	if a := p.PushU64(0x09cdabef78563412); !a.IsOk() {
		t.Fatalf("cannot push u64: %v", a)
	}

	v64, a := p.PopU64()
	if !a.IsOk() || v64 != 0x09cdabef78563412 {
		t.Fatalf("u64 round-trip mismatch: got %#x, %v", v64, a)
	}
	v32, a := p.PopU32()
	if !a.IsOk() || v32 != 0x78563412 {
		t.Fatalf("u32 round-trip mismatch: got %#x, %v", v32, a)
	}
	v8, a := p.PopU8()
	if !a.IsOk() || v8 != 0x12 {
		t.Fatalf("u8 round-trip mismatch: got %#x, %v", v8, a)
	}

	if !p.IsStackEmpty() {
		t.Fatalf("stack should be empty after draining all pushes")
	}
}

func TestProcessorPopUnderflow(t *testing.T) {
	p := newTestProcessor(t, MemoryDefaultPageSize)

	if _, a := p.PopU8(); a.IsOk() || a.UnwrapPanic() != "Stack underflow" {
		t.Fatalf("pop on empty stack must fail with Stack underflow, got %v", a)
	}
}

func TestProcessorPushOverflow(t *testing.T) {
	p := newTestProcessor(t, 4)

	if a := p.PushU32(1); !a.IsOk() {
		t.Fatalf("first push should fit exactly: %v", a)
	}
	if a := p.PushU8(1); a.IsOk() || a.UnwrapPanic() != "Stack overflow" {
		t.Fatalf("push past stack size must fail with Stack overflow, got %v", a)
	}
}

func TestProcessorSetStackPointer(t *testing.T) {
	p := newTestProcessor(t, 8)

	if a := p.SetStackPointer(4); !a.IsOk() {
		t.Fatalf("setting stack pointer within bounds must succeed: %v", a)
	}
	if p.StackPointer() != 4 {
		t.Fatalf("stack pointer mismatch: got %d", p.StackPointer())
	}
	if a := p.SetStackPointer(8); a.IsOk() || a.UnwrapPanic() != "Stack overflow" {
		t.Fatalf("setting stack pointer at stack size must fail with Stack overflow, got %v", a)
	}
}

func TestProcessorCodeNextAdvancesProgramCounter(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}
	program := NewProgramForTests(data, len(data), 0)
	p := NewEmptyProcessor(program, MemoryDefaultPageSize)

	v, a := p.CodeNextU8()
	if !a.IsOk() || v != 0x01 {
		t.Fatalf("first byte mismatch: got %#x, %v", v, a)
	}
	if p.ProgramCounter() != 1 {
		t.Fatalf("program counter should advance by 1, got %d", p.ProgramCounter())
	}

	v32, a := p.CodeNextU32()
	if a.IsOk() {
		t.Fatalf("reading 4 bytes from a 3-byte remainder must fail")
	}
	_ = v32
}

func TestProcessorSetProgramCounterIsLazy(t *testing.T) {
	data := []byte{0x00}
	program := NewProgramForTests(data, len(data), 0)
	p := NewEmptyProcessor(program, MemoryDefaultPageSize)

	p.SetProgramCounter(100)
	if p.ProgramCounter() != 100 {
		t.Fatalf("program counter should be stored unconditionally, got %d", p.ProgramCounter())
	}

	if _, a := p.CodeNextU8(); a.IsOk() || a.UnwrapPanic() != "Segmentation Fault" {
		t.Fatalf("fetching past the end must fault lazily with Segmentation Fault, got %v", a)
	}
}

type recordingTraceSink struct {
	entries []TraceEntry
}

func (s *recordingTraceSink) Trace(entry TraceEntry) {
	s.entries = append(s.entries, entry)
}

func TestNewProcessorWithTraceSinkOption(t *testing.T) {
	sink := &recordingTraceSink{}
	program := NewProgramForTests([]byte{0x01}, 0, 0)
	p := NewEmptyProcessor(program, MemoryDefaultPageSize, WithTraceSink(sink))

	if a := p.Step(); !a.IsOk() {
		t.Fatalf("step failed: %v", a)
	}
	if len(sink.entries) != 1 {
		t.Fatalf("expected 1 traced instruction, got %d", len(sink.entries))
	}
	if sink.entries[0].OpName != "nop" {
		t.Fatalf("expected nop, got %s", sink.entries[0].OpName)
	}
}
