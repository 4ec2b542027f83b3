package parsers

// Span is a borrowed slice of source text between two cursors.
type Span struct {
	content string
	start   Cursor
	end     Cursor
}

func newSpan(content string, start, end Cursor) Span {
	return Span{content: content, start: start, end: end}
}

func (s Span) Content() string     { return s.content }
func (s Span) StartCursor() Cursor { return s.start }
func (s Span) EndCursor() Cursor   { return s.end }

// Node is implemented by every AST node: it carries the span of source text
// it was parsed from.
type Node interface {
	Span() Span
}
