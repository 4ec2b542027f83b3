// Package diagnostics models structured parser diagnostics as plain data:
// a title, free-form notes, and highlighted source ranges. Rendering them
// (to ANSI text, JSON, an editor's problem panel, ...) is left to whatever
// consumes a Log; this package only builds the data.
package diagnostics

// Color names a highlight's emphasis. The zero value, ColorNone, means "use
// the renderer's default" rather than any specific color.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorMagenta
	ColorYellow
)

// Highlight marks a byte range of the source with an optional message.
type Highlight struct {
	Start   int
	End     int
	Message string
	Color   Color
}

// Note is a labeled piece of supplementary information shown alongside a
// Log (e.g. "Max value" / "+2147483647").
type Note struct {
	Label string
	Value string
}

// Log is a single structured diagnostic: a title, the source file it
// refers to, and the highlighted ranges plus notes that explain it.
type Log struct {
	Title      string
	FilePath   string
	HasPath    bool
	Highlights []Highlight
	Notes      []Note
}

// NewLog builds an empty Log with the given title.
func NewLog(title string) *Log {
	return &Log{Title: title}
}

// WithFilePath attaches the source file path the diagnostic refers to.
func (l *Log) WithFilePath(path string) *Log {
	l.FilePath = path
	l.HasPath = true
	return l
}

// HighlightSection records a highlighted byte range with no message.
func (l *Log) HighlightSection(start, end int, color Color) *Log {
	l.Highlights = append(l.Highlights, Highlight{Start: start, End: end, Color: color})
	return l
}

// HighlightSectionMessage records a highlighted byte range with a message.
func (l *Log) HighlightSectionMessage(start, end int, message string, color Color) *Log {
	l.Highlights = append(l.Highlights, Highlight{Start: start, End: end, Message: message, Color: color})
	return l
}

// HighlightCursorMessage records a zero-width highlight at a single byte
// offset, used to point at "insert something here" positions.
func (l *Log) HighlightCursorMessage(at int, message string, color Color) *Log {
	return l.HighlightSectionMessage(at, at, message, color)
}

// AddNote appends a labeled note.
func (l *Log) AddNote(label, value string) *Log {
	l.Notes = append(l.Notes, Note{Label: label, Value: value})
	return l
}
