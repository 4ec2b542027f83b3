package parsers

import "github.com/mosfetlang/sand/diagnostics"

// ParserWarningKind enumerates the recoverable issues a parse can flag
// without failing.
type ParserWarningKind int

const (
	NumberWithLeadingZeroes ParserWarningKind = iota
	NumberWithTrailingZeroes
)

// ParserWarning is a non-fatal diagnostic raised during parsing.
type ParserWarning struct {
	Kind ParserWarningKind
	Log  *diagnostics.Log
}

// AddWarning records a non-fatal diagnostic against in's context.
func AddWarning(in *Input, kind ParserWarningKind, title string, build func(log *diagnostics.Log)) {
	log := diagnostics.NewLog(title)
	if path, ok := in.Context().FilePath(); ok {
		log.WithFilePath(path)
	}
	if build != nil {
		build(log)
	}
	in.Context().AddWarning(ParserWarning{Kind: kind, Log: log})
}
