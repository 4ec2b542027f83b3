package commons

import (
	"strings"

	"github.com/mosfetlang/sand/parsers"
)

// CommentStartToken begins a single-line comment.
const CommentStartToken = "#"

// commentForbiddenStartChars may not be the first character after a
// comment's leading run of '#'.
const commentForbiddenStartChars = "[{(+-"

// Comment is a single-line comment: '#' followed by free-form text up to the
// next newline. The first character after the leading run of '#' must not
// be one of '[', '{', '(', '+' or '-'; "#text", "# text", "#   text" and
// "#" (empty) are all comments, while "#[text" is not.
type Comment struct {
	span parsers.Span
}

func (c Comment) Span() parsers.Span { return c.span }

// Message returns the comment's text with the leading token stripped and
// surrounding whitespace trimmed.
func (c Comment) Message() string {
	content := c.span.Content()[len(CommentStartToken):]
	return trimSpace(content)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// ParseComment parses a single-line comment starting with '#'.
func ParseComment(in *parsers.Input) parsers.Result[Comment] {
	start := in.SaveCursor()

	if !in.ConsumeText(CommentStartToken) {
		return parsers.Miss[Comment]()
	}

	rest := strings.TrimLeft(in.Remaining(), CommentStartToken)
	if rest != "" && strings.IndexByte(commentForbiddenStartChars, rest[0]) >= 0 {
		in.Restore(start)
		return parsers.Miss[Comment]()
	}

	for {
		r, ok := in.PeekRune()
		if !ok || r == '\n' {
			break
		}
		in.AdvanceRune()
	}

	return parsers.Ok(Comment{span: in.SubstringToCurrent(start)})
}
