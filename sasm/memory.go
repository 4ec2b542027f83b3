// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

import (
	"encoding/binary"
	"math"
)

// endianess is little-endian byte order for all typed reads/writes.
var endianess = binary.LittleEndian

// MemoryDefaultPageSize is the default memory page size: 64KiB.
const MemoryDefaultPageSize = 64 * 1024

// MemoryDefaultStackSize is the default stack size: 2MiB.
const MemoryDefaultStackSize = 2 * 1024 * 1024

// Memory is a paginated linear-memory abstraction. Every page has the same
// fixed size; pages are allocated lazily up to maxPages.
type Memory struct {
	pageSize int
	maxPages int
	pages    [][]byte
}

// NewMemory builds a Memory from a fixed set of pre-sized pages.
func NewMemory(pageSize, maxPages int, pages [][]byte) *Memory {
	if pageSize == 0 {
		panic("sasm: the page size cannot be zero")
	}
	if len(pages) > maxPages {
		panic("sasm: the number of heap pages is greater than the maximum")
	}
	for i, page := range pages {
		if len(page) != pageSize {
			panic("sasm: a page size does not match the memory's page size")
		}
		_ = i
	}

	return &Memory{pageSize: pageSize, maxPages: maxPages, pages: pages}
}

// NewEmptyMemory builds a Memory with no pages allocated yet.
func NewEmptyMemory(pageSize, maxPages int) *Memory {
	if pageSize == 0 {
		panic("sasm: the page size cannot be zero")
	}
	return &Memory{pageSize: pageSize, maxPages: maxPages, pages: nil}
}

// NewDefaultMemory builds a Memory using the default page size and an
// unbounded page count.
func NewDefaultMemory() *Memory {
	return NewEmptyMemory(MemoryDefaultPageSize, int(^uint(0)>>1))
}

func (m *Memory) PageSize() int { return m.pageSize }
func (m *Memory) MaxPages() int { return m.maxPages }
func (m *Memory) Pages() int    { return len(m.pages) }
func (m *Memory) Size() int     { return len(m.pages) * m.pageSize }

// ReadAt copies len(bytes) bytes starting at index into bytes, spanning
// page boundaries transparently.
func (m *Memory) ReadAt(index int, bytes []byte) Action {
	numBytes := len(bytes)
	if index+numBytes > m.Size() {
		return Panic("Segmentation Fault")
	}

	pageIndex := index / m.pageSize
	indexInPage := index % m.pageSize
	indexInBytes := 0
	for {
		remaining := numBytes - indexInBytes
		lastIndexInPage := indexInPage + remaining
		if lastIndexInPage > m.pageSize {
			lastIndexInBytes := indexInBytes + (m.pageSize - indexInPage)
			copy(bytes[indexInBytes:lastIndexInBytes], m.pages[pageIndex][indexInPage:])
			pageIndex++
			indexInPage = 0
			indexInBytes = lastIndexInBytes
		} else {
			copy(bytes[indexInBytes:], m.pages[pageIndex][indexInPage:indexInPage+remaining])
			break
		}
	}

	return Ok
}

// WriteAt copies bytes into memory starting at index, spanning page
// boundaries transparently.
func (m *Memory) WriteAt(index int, bytes []byte) Action {
	numBytes := len(bytes)
	if index+numBytes > m.Size() {
		return Panic("Segmentation Fault")
	}

	pageIndex := index / m.pageSize
	indexInPage := index % m.pageSize
	indexInBytes := 0
	for {
		remaining := numBytes - indexInBytes
		lastIndexInPage := indexInPage + remaining
		if lastIndexInPage > m.pageSize {
			lastIndexInBytes := indexInBytes + (m.pageSize - indexInPage)
			copy(m.pages[pageIndex][indexInPage:], bytes[indexInBytes:lastIndexInBytes])
			pageIndex++
			indexInPage = 0
			indexInBytes = lastIndexInBytes
		} else {
			copy(m.pages[pageIndex][indexInPage:indexInPage+remaining], bytes[indexInBytes:])
			break
		}
	}

	return Ok
}

func (m *Memory) ReadU8At(index int) (uint8, Action) {
	var b [1]byte
	if a := m.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return b[0], Ok
}

func (m *Memory) ReadU16At(index int) (uint16, Action) {
	var b [2]byte
	if a := m.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return endianess.Uint16(b[:]), Ok
}

func (m *Memory) ReadU32At(index int) (uint32, Action) {
	var b [4]byte
	if a := m.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return endianess.Uint32(b[:]), Ok
}

func (m *Memory) ReadU64At(index int) (uint64, Action) {
	var b [8]byte
	if a := m.ReadAt(index, b[:]); !a.IsOk() {
		return 0, a
	}
	return endianess.Uint64(b[:]), Ok
}

func (m *Memory) ReadI8At(index int) (int8, Action) {
	v, a := m.ReadU8At(index)
	return int8(v), a
}

func (m *Memory) ReadI16At(index int) (int16, Action) {
	v, a := m.ReadU16At(index)
	return int16(v), a
}

func (m *Memory) ReadI32At(index int) (int32, Action) {
	v, a := m.ReadU32At(index)
	return int32(v), a
}

func (m *Memory) ReadI64At(index int) (int64, Action) {
	v, a := m.ReadU64At(index)
	return int64(v), a
}

func (m *Memory) ReadF32At(index int) (float32, Action) {
	v, a := m.ReadU32At(index)
	return math.Float32frombits(v), a
}

func (m *Memory) ReadF64At(index int) (float64, Action) {
	v, a := m.ReadU64At(index)
	return math.Float64frombits(v), a
}

func (m *Memory) WriteU8At(index int, value uint8) Action {
	return m.WriteAt(index, []byte{value})
}

func (m *Memory) WriteU16At(index int, value uint16) Action {
	var b [2]byte
	endianess.PutUint16(b[:], value)
	return m.WriteAt(index, b[:])
}

func (m *Memory) WriteU32At(index int, value uint32) Action {
	var b [4]byte
	endianess.PutUint32(b[:], value)
	return m.WriteAt(index, b[:])
}

func (m *Memory) WriteU64At(index int, value uint64) Action {
	var b [8]byte
	endianess.PutUint64(b[:], value)
	return m.WriteAt(index, b[:])
}

func (m *Memory) WriteI8At(index int, value int8) Action {
	return m.WriteU8At(index, uint8(value))
}

func (m *Memory) WriteI16At(index int, value int16) Action {
	return m.WriteU16At(index, uint16(value))
}

func (m *Memory) WriteI32At(index int, value int32) Action {
	return m.WriteU32At(index, uint32(value))
}

func (m *Memory) WriteI64At(index int, value int64) Action {
	return m.WriteU64At(index, uint64(value))
}

func (m *Memory) WriteF32At(index int, value float32) Action {
	return m.WriteU32At(index, math.Float32bits(value))
}

func (m *Memory) WriteF64At(index int, value float64) Action {
	return m.WriteU64At(index, math.Float64bits(value))
}

// AddPage appends a single pre-sized page.
func (m *Memory) AddPage(page []byte) Action {
	if len(page) != m.pageSize {
		panic("sasm: cannot insert a page whose length does not match the page size")
	}
	if len(m.pages)+1 > m.maxPages {
		return Panic("Memory out of bounds")
	}
	m.pages = append(m.pages, page)
	return Ok
}

// AddEmptyPage appends a single zeroed page.
func (m *Memory) AddEmptyPage() Action {
	return m.AddEmptyPages(1)
}

// AddEmptyPages appends amount zeroed pages.
func (m *Memory) AddEmptyPages(amount int) Action {
	newPages := len(m.pages) + amount
	if newPages > m.maxPages {
		return Panic("Memory out of bounds")
	}
	for len(m.pages) < newPages {
		m.pages = append(m.pages, make([]byte, m.pageSize))
	}
	return Ok
}
