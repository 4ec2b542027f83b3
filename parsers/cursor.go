// Package parsers implements a hand-rolled recursive-descent combinator
// library for the Sand language, together with the grammar built on top of
// it. There is no off-the-shelf Go parser-combinator library in the
// ecosystem with this package's three-state result semantics (found,
// not-found/backtrackable, committed error), so the primitives here are
// written from scratch rather than imported.
package parsers

import "unicode/utf8"

// Cursor is an immutable position in a source file: a byte offset plus the
// line/column it falls on. Cursors are value types, cheap to save and
// restore when a combinator needs to backtrack.
type Cursor struct {
	byteOffset int
	line       int
	column     int
}

// NewCursor builds the cursor for the start of a file.
func NewCursor() Cursor {
	return Cursor{byteOffset: 0, line: 1, column: 1}
}

func (c Cursor) ByteOffset() int { return c.byteOffset }
func (c Cursor) Line() int       { return c.line }
func (c Cursor) Column() int     { return c.column }

// advance returns the cursor obtained by consuming r, updating line/column
// bookkeeping on newlines.
func (c Cursor) advance(r rune) Cursor {
	c.byteOffset += utf8.RuneLen(r)
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return c
}
