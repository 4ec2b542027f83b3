// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

import "math"

// Processor is a VM's registers plus its view of memory and program image.
// The stack lives at the bottom of memory: stackPointer is the offset of
// the first free byte above the stack, stackSize is its capacity.
type Processor struct {
	memory  *Memory
	program *Program

	programCounter int
	stackPointer   int
	stackSize      int
	overflowFlag   bool

	trace TraceSink
}

// ProcessorOption customizes a Processor at construction time: a private
// config struct, filled in by applying each option in order, read once
// during construction.
type ProcessorOption func(*processorConfig)

type processorConfig struct {
	trace TraceSink
}

// WithTraceSink installs a TraceSink invoked after every instruction the
// Processor executes through Step. sasm cannot depend on pgx directly
// without an import cycle back from sasm/tracepg, so sasm/tracepg.Sink
// exposes its own Option() that wraps WithTraceSink.
func WithTraceSink(sink TraceSink) ProcessorOption {
	return func(c *processorConfig) {
		c.trace = sink
	}
}

func applyProcessorOptions(opts []ProcessorOption) TraceSink {
	config := processorConfig{trace: NoopTraceSink{}}
	for _, opt := range opts {
		opt(&config)
	}
	if config.trace == nil {
		config.trace = NoopTraceSink{}
	}
	return config.trace
}

// NewProcessor builds a Processor over an already-sized memory.
func NewProcessor(memory *Memory, program *Program, stackSize int, opts ...ProcessorOption) *Processor {
	if stackSize > memory.Size() {
		panic("sasm: the stack size must be lower than or equal to the memory size")
	}
	return &Processor{memory: memory, program: program, stackSize: stackSize, trace: applyProcessorOptions(opts)}
}

// NewEmptyProcessor allocates a fresh memory whose first stackSize bytes are
// reserved for the stack, using the default page size.
func NewEmptyProcessor(program *Program, stackSize int, opts ...ProcessorOption) *Processor {
	if stackSize%MemoryDefaultPageSize != 0 {
		panic("sasm: the stack size must be a multiple of the page size")
	}

	memory := NewEmptyMemory(MemoryDefaultPageSize, int(^uint(0)>>1))
	if a := memory.AddEmptyPages(stackSize / MemoryDefaultPageSize); !a.IsOk() {
		panic("sasm: failed to reserve stack pages: " + a.Error())
	}

	return &Processor{memory: memory, program: program, stackSize: stackSize, trace: applyProcessorOptions(opts)}
}

// SetTraceSink installs a TraceSink invoked after every instruction executed
// through Step. A nil sink restores the no-op default. Prefer WithTraceSink
// at construction time; this setter remains for swapping sinks mid-run.
func (p *Processor) SetTraceSink(sink TraceSink) {
	if sink == nil {
		sink = NoopTraceSink{}
	}
	p.trace = sink
}

func (p *Processor) Memory() *Memory     { return p.memory }
func (p *Processor) Program() *Program   { return p.program }
func (p *Processor) ProgramCounter() int { return p.programCounter }
func (p *Processor) StackPointer() int   { return p.stackPointer }
func (p *Processor) StackSize() int      { return p.stackSize }
func (p *Processor) IsStackEmpty() bool  { return p.stackPointer == 0 }
func (p *Processor) IsStackFull() bool   { return p.stackPointer >= p.stackSize }
func (p *Processor) OverflowFlag() bool  { return p.overflowFlag }

// SetProgramCounter stores the program counter unconditionally. An
// out-of-range value is not validated here: it faults lazily as a
// "Segmentation Fault" Panic on the next CodeNext* call, which re-checks
// bounds against the program image.
func (p *Processor) SetProgramCounter(programCounter int) {
	p.programCounter = programCounter
}

func (p *Processor) SetStackPointer(stackPointer int) Action {
	if stackPointer >= p.stackSize {
		return Panic("Stack overflow")
	}
	p.stackPointer = stackPointer
	return Ok
}

func (p *Processor) SetOverflowFlag(overflowFlag bool) {
	p.overflowFlag = overflowFlag
}

func (p *Processor) PopU8() (uint8, Action) {
	v, a := p.PeekU8()
	if !a.IsOk() {
		return 0, a
	}
	p.stackPointer -= 1
	return v, Ok
}

func (p *Processor) PopU16() (uint16, Action) {
	v, a := p.PeekU16()
	if !a.IsOk() {
		return 0, a
	}
	p.stackPointer -= 2
	return v, Ok
}

func (p *Processor) PopU32() (uint32, Action) {
	v, a := p.PeekU32()
	if !a.IsOk() {
		return 0, a
	}
	p.stackPointer -= 4
	return v, Ok
}

func (p *Processor) PopU64() (uint64, Action) {
	v, a := p.PeekU64()
	if !a.IsOk() {
		return 0, a
	}
	p.stackPointer -= 8
	return v, Ok
}

func (p *Processor) PopI8() (int8, Action) {
	v, a := p.PopU8()
	return int8(v), a
}

func (p *Processor) PopI16() (int16, Action) {
	v, a := p.PopU16()
	return int16(v), a
}

func (p *Processor) PopI32() (int32, Action) {
	v, a := p.PopU32()
	return int32(v), a
}

func (p *Processor) PopI64() (int64, Action) {
	v, a := p.PopU64()
	return int64(v), a
}

func (p *Processor) PopF32() (float32, Action) {
	v, a := p.PeekF32()
	if !a.IsOk() {
		return 0, a
	}
	p.stackPointer -= 4
	return v, Ok
}

func (p *Processor) PopF64() (float64, Action) {
	v, a := p.PeekF64()
	if !a.IsOk() {
		return 0, a
	}
	p.stackPointer -= 8
	return v, Ok
}

func (p *Processor) push(numBytes int, write func(index int) Action) Action {
	if p.stackPointer+numBytes > p.stackSize {
		return Panic("Stack overflow")
	}
	if a := write(p.stackPointer); !a.IsOk() {
		return a
	}
	p.stackPointer += numBytes
	return Ok
}

func (p *Processor) PushU8(value uint8) Action {
	return p.push(1, func(i int) Action { return p.memory.WriteU8At(i, value) })
}

func (p *Processor) PushU16(value uint16) Action {
	return p.push(2, func(i int) Action { return p.memory.WriteU16At(i, value) })
}

func (p *Processor) PushU32(value uint32) Action {
	return p.push(4, func(i int) Action { return p.memory.WriteU32At(i, value) })
}

func (p *Processor) PushU64(value uint64) Action {
	return p.push(8, func(i int) Action { return p.memory.WriteU64At(i, value) })
}

func (p *Processor) PushI8(value int8) Action   { return p.PushU8(uint8(value)) }
func (p *Processor) PushI16(value int16) Action { return p.PushU16(uint16(value)) }
func (p *Processor) PushI32(value int32) Action { return p.PushU32(uint32(value)) }
func (p *Processor) PushI64(value int64) Action { return p.PushU64(uint64(value)) }

func (p *Processor) PushF32(value float32) Action {
	return p.push(4, func(i int) Action { return p.memory.WriteF32At(i, value) })
}

func (p *Processor) PushF64(value float64) Action {
	return p.push(8, func(i int) Action { return p.memory.WriteF64At(i, value) })
}

func (p *Processor) PeekU8() (uint8, Action) {
	if 1 > p.stackPointer {
		return 0, Panic("Stack underflow")
	}
	return p.memory.ReadU8At(p.stackPointer - 1)
}

func (p *Processor) PeekU16() (uint16, Action) {
	if 2 > p.stackPointer {
		return 0, Panic("Stack underflow")
	}
	return p.memory.ReadU16At(p.stackPointer - 2)
}

func (p *Processor) PeekU32() (uint32, Action) {
	if 4 > p.stackPointer {
		return 0, Panic("Stack underflow")
	}
	return p.memory.ReadU32At(p.stackPointer - 4)
}

func (p *Processor) PeekU64() (uint64, Action) {
	if 8 > p.stackPointer {
		return 0, Panic("Stack underflow")
	}
	return p.memory.ReadU64At(p.stackPointer - 8)
}

func (p *Processor) PeekI8() (int8, Action) {
	v, a := p.PeekU8()
	return int8(v), a
}

func (p *Processor) PeekI16() (int16, Action) {
	v, a := p.PeekU16()
	return int16(v), a
}

func (p *Processor) PeekI32() (int32, Action) {
	v, a := p.PeekU32()
	return int32(v), a
}

func (p *Processor) PeekI64() (int64, Action) {
	v, a := p.PeekU64()
	return int64(v), a
}

func (p *Processor) PeekF32() (float32, Action) {
	if 4 > p.stackPointer {
		return 0, Panic("Stack underflow")
	}
	return p.memory.ReadF32At(p.stackPointer - 4)
}

func (p *Processor) PeekF64() (float64, Action) {
	if 8 > p.stackPointer {
		return 0, Panic("Stack underflow")
	}
	return p.memory.ReadF64At(p.stackPointer - 8)
}

func (p *Processor) CodeNextU8() (uint8, Action) {
	v, a := p.program.ReadU8At(p.programCounter)
	if !a.IsOk() {
		return 0, a
	}
	p.programCounter += 1
	return v, Ok
}

func (p *Processor) CodeNextU16() (uint16, Action) {
	v, a := p.program.ReadU16At(p.programCounter)
	if !a.IsOk() {
		return 0, a
	}
	p.programCounter += 2
	return v, Ok
}

func (p *Processor) CodeNextU32() (uint32, Action) {
	v, a := p.program.ReadU32At(p.programCounter)
	if !a.IsOk() {
		return 0, a
	}
	p.programCounter += 4
	return v, Ok
}

func (p *Processor) CodeNextU64() (uint64, Action) {
	v, a := p.program.ReadU64At(p.programCounter)
	if !a.IsOk() {
		return 0, a
	}
	p.programCounter += 8
	return v, Ok
}

func (p *Processor) CodeNextI8() (int8, Action) {
	v, a := p.CodeNextU8()
	return int8(v), a
}

func (p *Processor) CodeNextI16() (int16, Action) {
	v, a := p.CodeNextU16()
	return int16(v), a
}

func (p *Processor) CodeNextI32() (int32, Action) {
	v, a := p.CodeNextU32()
	return int32(v), a
}

func (p *Processor) CodeNextI64() (int64, Action) {
	v, a := p.CodeNextU64()
	return int64(v), a
}

func (p *Processor) CodeNextF32() (float32, Action) {
	v, a := p.CodeNextU32()
	if !a.IsOk() {
		return 0, a
	}
	return math.Float32frombits(v), Ok
}

func (p *Processor) CodeNextF64() (float64, Action) {
	v, a := p.CodeNextU64()
	if !a.IsOk() {
		return 0, a
	}
	return math.Float64frombits(v), Ok
}
