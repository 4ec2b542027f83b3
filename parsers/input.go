package parsers

import "unicode/utf8"

// Input is the mutable cursor a parse function advances over a fixed
// source string, carrying the ParserContext alongside it.
type Input struct {
	source  string
	cursor  Cursor
	context *ParserContext
}

// NewInput builds an Input positioned at the start of source.
func NewInput(source string, context *ParserContext) *Input {
	if context == nil {
		context = NewParserContext(nil, ParserIgnoreConfig{})
	}
	return &Input{source: source, cursor: NewCursor(), context: context}
}

func (in *Input) Context() *ParserContext { return in.context }
func (in *Input) Source() string          { return in.source }
func (in *Input) ByteOffset() int         { return in.cursor.byteOffset }

// SaveCursor returns the current cursor so a combinator can restore it
// later if the parse attempt fails.
func (in *Input) SaveCursor() Cursor { return in.cursor }

// Restore rewinds the input to a previously saved cursor.
func (in *Input) Restore(c Cursor) { in.cursor = c }

// AtEnd reports whether the input has no remaining bytes.
func (in *Input) AtEnd() bool { return in.cursor.byteOffset >= len(in.source) }

// Remaining returns the unconsumed tail of the source.
func (in *Input) Remaining() string { return in.source[in.cursor.byteOffset:] }

// PeekRune decodes the next rune without consuming it.
func (in *Input) PeekRune() (rune, bool) {
	if in.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(in.Remaining())
	return r, true
}

// AdvanceRune consumes one rune, returning it.
func (in *Input) AdvanceRune() (rune, bool) {
	r, ok := in.PeekRune()
	if !ok {
		return 0, false
	}
	in.cursor = in.cursor.advance(r)
	return r, true
}

// SubstringToCurrent builds the Span between a previously saved cursor and
// the input's current position.
func (in *Input) SubstringToCurrent(start Cursor) Span {
	return newSpan(in.source[start.byteOffset:in.cursor.byteOffset], start, in.cursor)
}

// HasPrefix reports whether the remaining input starts with text, without
// consuming anything.
func (in *Input) HasPrefix(text string) bool {
	remaining := in.Remaining()
	return len(remaining) >= len(text) && remaining[:len(text)] == text
}

// ConsumeText consumes text if it prefixes the remaining input.
func (in *Input) ConsumeText(text string) bool {
	if !in.HasPrefix(text) {
		return false
	}
	for _, r := range text {
		in.cursor = in.cursor.advance(r)
	}
	return true
}
