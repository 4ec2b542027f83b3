// Package commons holds the small grammar rules shared by several larger
// Sand constructs: identifiers, comments, and the multiline whitespace that
// separates top-level statements.
package commons

import (
	"unicode"

	"github.com/mosfetlang/sand/parsers"
)

// Whitespace is a run of one or more whitespace characters and/or
// single-line comments, possibly spanning several lines.
type Whitespace struct {
	span parsers.Span
}

func (w Whitespace) Span() parsers.Span { return w.span }

// IsMultiline reports whether the run spans more than one source line.
func (w Whitespace) IsMultiline() bool {
	return w.span.StartCursor().Line() != w.span.EndCursor().Line()
}

func isSingleLineSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// ParseWhitespace parses one or more whitespace runs and/or comments.
func ParseWhitespace(in *parsers.Input) parsers.Result[Whitespace] {
	start := in.SaveCursor()

	found := false
	for {
		spaceStart := in.SaveCursor()
		if r, ok := in.PeekRune(); ok && (unicode.IsSpace(r) || r == '\n') {
			for {
				r, ok := in.PeekRune()
				if !ok || !(unicode.IsSpace(r) || r == '\n') {
					break
				}
				in.AdvanceRune()
			}
			found = true
			continue
		}
		in.Restore(spaceStart)

		commentResult := ParseComment(in)
		if commentResult.IsFound() {
			found = true
			continue
		}
		if commentResult.IsErrored() {
			return parsers.Fail[Whitespace](commentResult.Err)
		}
		break
	}

	if !found {
		in.Restore(start)
		return parsers.Miss[Whitespace]()
	}

	return parsers.Ok(Whitespace{span: in.SubstringToCurrent(start)})
}
