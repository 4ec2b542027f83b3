package commons

import (
	"unicode"

	"github.com/mosfetlang/sand/parsers"
)

// headChars and bodyChars classify identifier characters. The ranges are
// Swift's identifier classification, reused here since Sand's own grammar
// adopts the same boundaries: punctuation, control characters and most
// symbols are excluded, while a wide band of letter-like codepoints plus a
// handful of combining marks are allowed in the body.
var headChars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'A', Hi: 'Z', Stride: 1},
		{Lo: '_', Hi: '_', Stride: 1},
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 0x00A8, Hi: 0x00A8, Stride: 1},
		{Lo: 0x00AA, Hi: 0x00AA, Stride: 1},
		{Lo: 0x00AD, Hi: 0x00AD, Stride: 1},
		{Lo: 0x00AF, Hi: 0x00AF, Stride: 1},
		{Lo: 0x00B2, Hi: 0x00B5, Stride: 1},
		{Lo: 0x00B7, Hi: 0x00BA, Stride: 1},
		{Lo: 0x00BC, Hi: 0x00BE, Stride: 1},
		{Lo: 0x00C0, Hi: 0x00D6, Stride: 1},
		{Lo: 0x00D8, Hi: 0x00F6, Stride: 1},
		{Lo: 0x00F8, Hi: 0x02FF, Stride: 1},
		{Lo: 0x0370, Hi: 0x167F, Stride: 1},
		{Lo: 0x1681, Hi: 0x180D, Stride: 1},
		{Lo: 0x180F, Hi: 0x1DBF, Stride: 1},
		{Lo: 0x1E00, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200B, Hi: 0x200D, Stride: 1},
		{Lo: 0x202A, Hi: 0x202E, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
		{Lo: 0x2054, Hi: 0x2054, Stride: 1},
		{Lo: 0x2060, Hi: 0x20CF, Stride: 1},
		{Lo: 0x2100, Hi: 0x218F, Stride: 1},
		{Lo: 0x2460, Hi: 0x24FF, Stride: 1},
		{Lo: 0x2776, Hi: 0x2793, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2DFF, Stride: 1},
		{Lo: 0x2E80, Hi: 0x2FFF, Stride: 1},
		{Lo: 0x3004, Hi: 0x3007, Stride: 1},
		{Lo: 0x3021, Hi: 0x302F, Stride: 1},
		{Lo: 0x3031, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFD3D, Stride: 1},
		{Lo: 0xFD40, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFE1F, Stride: 1},
		{Lo: 0xFE30, Hi: 0xFE44, Stride: 1},
		{Lo: 0xFE47, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x1FFFD, Stride: 1},
		{Lo: 0x20000, Hi: 0x2FFFD, Stride: 1},
		{Lo: 0x30000, Hi: 0x3FFFD, Stride: 1},
		{Lo: 0x40000, Hi: 0x4FFFD, Stride: 1},
		{Lo: 0x50000, Hi: 0x5FFFD, Stride: 1},
		{Lo: 0x60000, Hi: 0x6FFFD, Stride: 1},
		{Lo: 0x70000, Hi: 0x7FFFD, Stride: 1},
		{Lo: 0x80000, Hi: 0x8FFFD, Stride: 1},
		{Lo: 0x90000, Hi: 0x9FFFD, Stride: 1},
		{Lo: 0xA0000, Hi: 0xAFFFD, Stride: 1},
		{Lo: 0xB0000, Hi: 0xBFFFD, Stride: 1},
		{Lo: 0xC0000, Hi: 0xCFFFD, Stride: 1},
		{Lo: 0xD0000, Hi: 0xDFFFD, Stride: 1},
		{Lo: 0xE0000, Hi: 0xEFFFD, Stride: 1},
	},
}

var bodyChars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '0', Hi: '9', Stride: 1},
		{Lo: 0x0300, Hi: 0x036F, Stride: 1},
		{Lo: 0x1DC0, Hi: 0x1DFF, Stride: 1},
		{Lo: 0x20D0, Hi: 0x20FF, Stride: 1},
		{Lo: 0xFE20, Hi: 0xFE2F, Stride: 1},
	},
}

// Identifier is a valid Sand identifier: a head character followed by zero
// or more head-or-body characters.
type Identifier struct {
	span parsers.Span
}

func (i Identifier) Span() parsers.Span { return i.span }

// ParseIdentifier parses an identifier.
func ParseIdentifier(in *parsers.Input) parsers.Result[Identifier] {
	start := in.SaveCursor()

	r, ok := in.PeekRune()
	if !ok || !unicode.Is(headChars, r) {
		return parsers.Miss[Identifier]()
	}
	in.AdvanceRune()

	for {
		r, ok := in.PeekRune()
		if !ok || !(unicode.Is(headChars, r) || unicode.Is(bodyChars, r)) {
			break
		}
		in.AdvanceRune()
	}

	return parsers.Ok(Identifier{span: in.SubstringToCurrent(start)})
}

// ReadKeyword matches an exact keyword, failing (without consuming input) if
// the identifier at the cursor is merely prefixed by it (e.g. "const" must
// not match inside "constant").
func ReadKeyword(keyword string) parsers.ParseFunc[struct{}] {
	return func(in *parsers.Input) parsers.Result[struct{}] {
		start := in.SaveCursor()
		result := ParseIdentifier(in)
		if !result.IsFound() {
			return parsers.Result[struct{}]{Kind: result.Kind, Err: result.Err}
		}
		if result.Value.Span().Content() != keyword {
			in.Restore(start)
			return parsers.Miss[struct{}]()
		}
		return parsers.Ok(struct{}{})
	}
}
