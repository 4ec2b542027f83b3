package parsers

import "github.com/mosfetlang/sand/diagnostics"

// ParserErrorKind enumerates the committed parse failures the grammar can
// raise.
type ParserErrorKind int

const (
	NumberWithoutDigitsAfterDecimalSeparator ParserErrorKind = iota
	NumberWithoutDigitsAfterExponentToken
	NumberTooBig
	NumberTooBigExponent

	ConstDeclarationWithoutIdentifier
	ConstDeclarationWithoutAssignExpression
	ConstDeclarationWithoutExpression

	ModuleTwoStatementsInline
	ModuleUnrecognizedEOF
)

// ParserError is a committed parse failure: the grammar matched enough of a
// construct that reporting it beats silently backtracking.
type ParserError struct {
	Kind ParserErrorKind
	Log  *diagnostics.Log
}

func (e *ParserError) Error() string {
	if e.Log == nil {
		return "parse error"
	}
	return e.Log.Title
}

// GenerateError builds a committed ParserError, attaching the source file
// path from in's context when one is set.
func GenerateError(in *Input, kind ParserErrorKind, title string, build func(log *diagnostics.Log)) *ParserError {
	log := diagnostics.NewLog(title)
	if build != nil {
		build(log)
	}
	if path, ok := in.Context().FilePath(); ok {
		log.WithFilePath(path)
	}
	return &ParserError{Kind: kind, Log: log}
}
