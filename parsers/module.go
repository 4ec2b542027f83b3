package parsers

import (
	"github.com/mosfetlang/sand/diagnostics"
	"github.com/mosfetlang/sand/parsers/commons"
	"github.com/mosfetlang/sand/parsers/stmt"
)

// Module is a Sand module: normally a whole source file, parsed as a
// sequence of statements.
type Module struct {
	span       Span
	statements []stmt.Statement
}

func (m Module) Span() Span                   { return m.span }
func (m Module) Statements() []stmt.Statement { return m.statements }

// ParseModule parses a whole module from in. The first statement needs no
// leading separator; every later statement must be preceded by whitespace
// spanning at least two lines, otherwise it is reported as
// ModuleTwoStatementsInline. Once statements stop matching, any remaining
// unconsumed input is reported as ModuleUnrecognizedEOF.
func ParseModule(in *Input) Result[Module] {
	start := in.SaveCursor()

	var statements []stmt.Statement
	first := true

	for {
		beforeWhitespace := in.SaveCursor()
		wsResult := commons.ParseWhitespace(in)

		stmtStart := in.SaveCursor()
		stmtResult := stmt.ParseStatement(in)
		if stmtResult.IsNotFound() {
			in.Restore(stmtStart)
			if !wsResult.IsFound() {
				in.Restore(beforeWhitespace)
			}
			break
		}
		if stmtResult.IsErrored() {
			return Fail[Module](stmtResult.Err)
		}

		if !first {
			switch {
			case wsResult.IsFound() && wsResult.Value.IsMultiline():
				// separator accepted
			default:
				return Fail[Module](errorTwoStatementsInline(in, stmtResult.Value))
			}
		}
		first = false

		statements = append(statements, stmtResult.Value)
	}

	commons.ParseWhitespace(in)

	if !in.AtEnd() {
		return Fail[Module](errorUnrecognizedEOF(in))
	}

	return Ok(Module{span: in.SubstringToCurrent(start), statements: statements})
}

func errorTwoStatementsInline(in *Input, statement stmt.Statement) *ParserError {
	span := statement.Span()
	return GenerateError(in, ModuleTwoStatementsInline, "Statements cannot be inline with others", func(log *diagnostics.Log) {
		log.HighlightCursorMessage(span.StartCursor().ByteOffset(), "Insert a line break here, e.g. '\\n'", diagnostics.ColorNone).
			HighlightSection(span.StartCursor().ByteOffset(), span.EndCursor().ByteOffset(), diagnostics.ColorMagenta)
	})
}

func errorUnrecognizedEOF(in *Input) *ParserError {
	return GenerateError(in, ModuleUnrecognizedEOF, "The module must finish here", func(log *diagnostics.Log) {
		log.HighlightCursorMessage(in.ByteOffset(), "The file is expected to end here", diagnostics.ColorNone).
			HighlightSectionMessage(in.ByteOffset(), len(in.Source()), "Unrecognized content (remove it)", diagnostics.ColorMagenta)
	})
}
