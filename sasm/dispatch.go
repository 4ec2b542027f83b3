// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

// Opcode identifies a single instruction in a program image's code region.
type Opcode byte

// Opcodes are grouped by family, leaving headroom in each block for
// instructions not yet defined (arithmetic, comparisons, calls).
const (
	OpUnreachable Opcode = 0x00
	OpNop         Opcode = 0x01
	OpDebug       Opcode = 0x02
	OpBranch      Opcode = 0x03
	OpBranchIf8   Opcode = 0x04
	OpBranchIf16  Opcode = 0x05
	OpBranchIf32  Opcode = 0x06
	OpBranchIf64  Opcode = 0x07

	OpDrop8   Opcode = 0x10
	OpDrop16  Opcode = 0x11
	OpDrop32  Opcode = 0x12
	OpDrop64  Opcode = 0x13
	OpConst8  Opcode = 0x14
	OpConst16 Opcode = 0x15
	OpConst32 Opcode = 0x16
	OpConst64 Opcode = 0x17

	OpMemorySize        Opcode = 0x20
	OpMemoryGrow        Opcode = 0x21
	OpMemoryFill8       Opcode = 0x22
	OpMemoryFill16      Opcode = 0x23
	OpMemoryFill32      Opcode = 0x24
	OpMemoryFill64      Opcode = 0x25
	OpMemoryCopy        Opcode = 0x26
	OpMemoryLoad8       Opcode = 0x27
	OpMemoryLoad16      Opcode = 0x28
	OpMemoryLoad32      Opcode = 0x29
	OpMemoryLoad64      Opcode = 0x2A
	OpMemoryStore8      Opcode = 0x2B
	OpMemoryStore16     Opcode = 0x2C
	OpMemoryStore32     Opcode = 0x2D
	OpMemoryStore64     Opcode = 0x2E
	OpProgramDataLoad8  Opcode = 0x2F
	OpProgramDataLoad16 Opcode = 0x30
	OpProgramDataLoad32 Opcode = 0x31
	OpProgramDataLoad64 Opcode = 0x32

	OpExtend8To16      Opcode = 0x40
	OpExtend8To32      Opcode = 0x41
	OpExtend16To32     Opcode = 0x42
	OpExtend8To64      Opcode = 0x43
	OpExtend16To64     Opcode = 0x44
	OpExtend32To64     Opcode = 0x45
	OpExtendSign8To16  Opcode = 0x46
	OpExtendSign8To32  Opcode = 0x47
	OpExtendSign16To32 Opcode = 0x48
	OpExtendSign8To64  Opcode = 0x49
	OpExtendSign16To64 Opcode = 0x4A
	OpExtendSign32To64 Opcode = 0x4B
	OpTrunc16To8       Opcode = 0x4C
	OpTrunc32To8       Opcode = 0x4D
	OpTrunc32To16      Opcode = 0x4E
	OpTrunc64To8       Opcode = 0x4F
	OpTrunc64To16      Opcode = 0x50
	OpTrunc64To32      Opcode = 0x51
)

// Handler executes one instruction against a Processor.
type Handler func(*Processor) Action

// dispatchEntry pairs a handler with the name recorded in trace entries.
type dispatchEntry struct {
	name    string
	handler Handler
}

var dispatchTable = [256]dispatchEntry{
	OpUnreachable: {"unreachable", Unreachable},
	OpNop:         {"nop", Nop},
	OpDebug:       {"debug", Debug},
	OpBranch:      {"branch", Branch},
	OpBranchIf8:   {"branch_if_8", BranchIf8},
	OpBranchIf16:  {"branch_if_16", BranchIf16},
	OpBranchIf32:  {"branch_if_32", BranchIf32},
	OpBranchIf64:  {"branch_if_64", BranchIf64},

	OpDrop8:   {"drop_8", Drop8},
	OpDrop16:  {"drop_16", Drop16},
	OpDrop32:  {"drop_32", Drop32},
	OpDrop64:  {"drop_64", Drop64},
	OpConst8:  {"const_8", Const8},
	OpConst16: {"const_16", Const16},
	OpConst32: {"const_32", Const32},
	OpConst64: {"const_64", Const64},

	OpMemorySize:        {"memory_size", MemorySize},
	OpMemoryGrow:        {"memory_grow", MemoryGrow},
	OpMemoryFill8:       {"memory_fill_8", MemoryFill8},
	OpMemoryFill16:      {"memory_fill_16", MemoryFill16},
	OpMemoryFill32:      {"memory_fill_32", MemoryFill32},
	OpMemoryFill64:      {"memory_fill_64", MemoryFill64},
	OpMemoryCopy:        {"memory_copy", MemoryCopy},
	OpMemoryLoad8:       {"memory_load_8", MemoryLoad8},
	OpMemoryLoad16:      {"memory_load_16", MemoryLoad16},
	OpMemoryLoad32:      {"memory_load_32", MemoryLoad32},
	OpMemoryLoad64:      {"memory_load_64", MemoryLoad64},
	OpMemoryStore8:      {"memory_store_8", MemoryStore8},
	OpMemoryStore16:     {"memory_store_16", MemoryStore16},
	OpMemoryStore32:     {"memory_store_32", MemoryStore32},
	OpMemoryStore64:     {"memory_store_64", MemoryStore64},
	OpProgramDataLoad8:  {"program_data_load_8", ProgramDataLoad8},
	OpProgramDataLoad16: {"program_data_load_16", ProgramDataLoad16},
	OpProgramDataLoad32: {"program_data_load_32", ProgramDataLoad32},
	OpProgramDataLoad64: {"program_data_load_64", ProgramDataLoad64},

	OpExtend8To16:      {"extend_8_to_16", Extend8To16},
	OpExtend8To32:      {"extend_8_to_32", Extend8To32},
	OpExtend16To32:     {"extend_16_to_32", Extend16To32},
	OpExtend8To64:      {"extend_8_to_64", Extend8To64},
	OpExtend16To64:     {"extend_16_to_64", Extend16To64},
	OpExtend32To64:     {"extend_32_to_64", Extend32To64},
	OpExtendSign8To16:  {"extend_sign_8_to_16", ExtendSign8To16},
	OpExtendSign8To32:  {"extend_sign_8_to_32", ExtendSign8To32},
	OpExtendSign16To32: {"extend_sign_16_to_32", ExtendSign16To32},
	OpExtendSign8To64:  {"extend_sign_8_to_64", ExtendSign8To64},
	OpExtendSign16To64: {"extend_sign_16_to_64", ExtendSign16To64},
	OpExtendSign32To64: {"extend_sign_32_to_64", ExtendSign32To64},
	OpTrunc16To8:       {"trunc_16_to_8", Trunc16To8},
	OpTrunc32To8:       {"trunc_32_to_8", Trunc32To8},
	OpTrunc32To16:      {"trunc_32_to_16", Trunc32To16},
	OpTrunc64To8:       {"trunc_64_to_8", Trunc64To8},
	OpTrunc64To16:      {"trunc_64_to_16", Trunc64To16},
	OpTrunc64To32:      {"trunc_64_to_32", Trunc64To32},
}

// ErrUnknownOpcode is the Panic message used when Step encounters a code
// byte with no registered handler.
const ErrUnknownOpcode = "Unknown opcode"

// Step fetches the next opcode from the code stream, executes its handler,
// and reports the instruction to the Processor's TraceSink.
func (p *Processor) Step() Action {
	stackStart := p.StackPointer()
	pcBeforeFetch := p.ProgramCounter()

	opByte, a := p.CodeNextU8()
	if !a.IsOk() {
		return a
	}

	entry := dispatchTable[opByte]
	if entry.handler == nil {
		return Panic(ErrUnknownOpcode)
	}

	result := entry.handler(p)

	p.trace.Trace(TraceEntry{
		OpCode:         opByte,
		OpName:         entry.name,
		ProgramCounter: pcBeforeFetch,
		StackStart:     stackStart,
		StackFinish:    p.StackPointer(),
	})

	return result
}

// Run steps the processor until it halts or panics.
func (p *Processor) Run() Action {
	for {
		a := p.Step()
		if !a.IsOk() {
			return a
		}
	}
}
