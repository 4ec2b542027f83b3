// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

// MemorySize pushes the current memory size in bytes.
//
// Stack:
// + u32 - Memory size
func MemorySize(p *Processor) Action {
	return p.PushU32(uint32(p.Memory().Size()))
}

// MemoryGrow expands memory by at least increaseAmount bytes, rounded up to
// a whole number of pages. A failed grow does not panic: it sets the
// overflow flag and still pushes the previous size.
//
// Stack:
// - u32 - Increase amount
// + u32 - Previous size.
func MemoryGrow(p *Processor) Action {
	increaseAmount, a := p.PopU32()
	if !a.IsOk() {
		return a
	}

	memorySize := uint32(p.Memory().Size())
	pageSize := uint32(p.Memory().PageSize())
	pages := increaseAmount / pageSize
	if increaseAmount%pageSize != 0 {
		pages++
	}

	growResult := p.Memory().AddEmptyPages(int(pages))
	p.SetOverflowFlag(!growResult.IsOk())

	return p.PushU32(memorySize)
}

// fillStride fills numberOfWords*strideBytes bytes starting at startPointer,
// writing the value at multiples of strideBytes. The stride equals the
// element width, the canonical (non-buggy) behavior.
func fillStride(p *Processor, startPointer, numberOfWords, strideBytes int, write func(at int) Action) Action {
	for word := 0; word < numberOfWords; word++ {
		if a := write(startPointer + word*strideBytes); !a.IsOk() {
			return a
		}
	}
	return Ok
}

// MemoryFill8 fills a region of memory with a repeated u8 value.
//
// Stack:
// - u8  - The value to use to fill the memory.
// - u32 - Number of words.
// - u32 - Start pointer.
func MemoryFill8(p *Processor) Action {
	value, a := p.PopU8()
	if !a.IsOk() {
		return a
	}
	numberOfWords, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	startPointer, a := p.PopU32()
	if !a.IsOk() {
		return a
	}

	return fillStride(p, int(startPointer), int(numberOfWords), 1, func(at int) Action {
		return p.Memory().WriteU8At(at, value)
	})
}

// MemoryFill16 is MemoryFill8 for u16 values.
func MemoryFill16(p *Processor) Action {
	value, a := p.PopU16()
	if !a.IsOk() {
		return a
	}
	numberOfWords, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	startPointer, a := p.PopU32()
	if !a.IsOk() {
		return a
	}

	return fillStride(p, int(startPointer), int(numberOfWords), 2, func(at int) Action {
		return p.Memory().WriteU16At(at, value)
	})
}

// MemoryFill32 is MemoryFill8 for u32 values.
func MemoryFill32(p *Processor) Action {
	value, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	numberOfWords, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	startPointer, a := p.PopU32()
	if !a.IsOk() {
		return a
	}

	return fillStride(p, int(startPointer), int(numberOfWords), 4, func(at int) Action {
		return p.Memory().WriteU32At(at, value)
	})
}

// MemoryFill64 is MemoryFill8 for u64 values.
func MemoryFill64(p *Processor) Action {
	value, a := p.PopU64()
	if !a.IsOk() {
		return a
	}
	numberOfWords, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	startPointer, a := p.PopU32()
	if !a.IsOk() {
		return a
	}

	return fillStride(p, int(startPointer), int(numberOfWords), 8, func(at int) Action {
		return p.Memory().WriteU64At(at, value)
	})
}

// MemoryCopy copies numberOfBytes bytes from originPointer to targetPointer.
// The two regions may overlap: the copy direction is chosen so the result
// is identical to copying through a temporary buffer (forward when target
// is below origin, backward when target is above origin, a no-op when they
// coincide).
//
// Stack:
// - u32 - Target pointer.
// - u32 - Number of bytes.
// - u32 - Origin pointer.
func MemoryCopy(p *Processor) Action {
	targetPointer, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	numberOfBytes, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	originPointer, a := p.PopU32()
	if !a.IsOk() {
		return a
	}

	origin := int(originPointer)
	target := int(targetPointer)
	count := int(numberOfBytes)

	if origin == target || count == 0 {
		return Ok
	}

	mem := p.Memory()

	if target < origin {
		for i := 0; i < count; i++ {
			v, a := mem.ReadU8At(origin + i)
			if !a.IsOk() {
				return a
			}
			if a := mem.WriteU8At(target+i, v); !a.IsOk() {
				return a
			}
		}
		return Ok
	}

	for i := count - 1; i >= 0; i-- {
		v, a := mem.ReadU8At(origin + i)
		if !a.IsOk() {
			return a
		}
		if a := mem.WriteU8At(target+i, v); !a.IsOk() {
			return a
		}
	}
	return Ok
}

// MemoryLoad8 loads a ?8 value from memory and pushes it.
//
// Stack:
// - u32 - Memory position.
// + ?8  - Memory value.
func MemoryLoad8(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	value, a := p.Memory().ReadU8At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU8(value)
}

// MemoryLoad16 is MemoryLoad8 for ?16 values.
func MemoryLoad16(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	value, a := p.Memory().ReadU16At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU16(value)
}

// MemoryLoad32 is MemoryLoad8 for ?32 values.
func MemoryLoad32(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	value, a := p.Memory().ReadU32At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU32(value)
}

// MemoryLoad64 is MemoryLoad8 for ?64 values.
func MemoryLoad64(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	value, a := p.Memory().ReadU64At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU64(value)
}

// MemoryStore8 pops a ?8 value and a memory position, storing the value.
//
// Stack:
// - ?8  - Value.
// - u32 - Memory position.
func MemoryStore8(p *Processor) Action {
	value, a := p.PopU8()
	if !a.IsOk() {
		return a
	}
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.Memory().WriteU8At(int(position), value)
}

// MemoryStore16 is MemoryStore8 for ?16 values.
func MemoryStore16(p *Processor) Action {
	value, a := p.PopU16()
	if !a.IsOk() {
		return a
	}
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.Memory().WriteU16At(int(position), value)
}

// MemoryStore32 is MemoryStore8 for ?32 values.
func MemoryStore32(p *Processor) Action {
	value, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.Memory().WriteU32At(int(position), value)
}

// MemoryStore64 is MemoryStore8 for ?64 values.
func MemoryStore64(p *Processor) Action {
	value, a := p.PopU64()
	if !a.IsOk() {
		return a
	}
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	return p.Memory().WriteU64At(int(position), value)
}

func programDataBoundsCheck(p *Processor, position, width int) Action {
	last := position + width
	if position < p.Program().DataPointer() || last > p.Program().DataPointerEnd() {
		return Panic("Data Segmentation Fault")
	}
	return Ok
}

// ProgramDataLoad8 loads a ?8 value from the program's data region.
//
// Stack:
// - u32 - Memory position.
// + ?8  - Program data value.
func ProgramDataLoad8(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	if a := programDataBoundsCheck(p, int(position), 1); !a.IsOk() {
		return a
	}
	value, a := p.Program().ReadU8At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU8(value)
}

// ProgramDataLoad16 is ProgramDataLoad8 for ?16 values.
func ProgramDataLoad16(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	if a := programDataBoundsCheck(p, int(position), 2); !a.IsOk() {
		return a
	}
	value, a := p.Program().ReadU16At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU16(value)
}

// ProgramDataLoad32 is ProgramDataLoad8 for ?32 values.
func ProgramDataLoad32(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	if a := programDataBoundsCheck(p, int(position), 4); !a.IsOk() {
		return a
	}
	value, a := p.Program().ReadU32At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU32(value)
}

// ProgramDataLoad64 is ProgramDataLoad8 for ?64 values.
func ProgramDataLoad64(p *Processor) Action {
	position, a := p.PopU32()
	if !a.IsOk() {
		return a
	}
	if a := programDataBoundsCheck(p, int(position), 8); !a.IsOk() {
		return a
	}
	value, a := p.Program().ReadU64At(int(position))
	if !a.IsOk() {
		return a
	}
	return p.PushU64(value)
}
