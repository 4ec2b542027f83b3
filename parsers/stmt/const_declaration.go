// Package stmt implements the Sand statement grammar.
package stmt

import (
	"github.com/mosfetlang/sand/diagnostics"
	"github.com/mosfetlang/sand/parsers"
	"github.com/mosfetlang/sand/parsers/commons"
	"github.com/mosfetlang/sand/parsers/expr"
)

// ConstDeclarationKeyword introduces a constant declaration.
const ConstDeclarationKeyword = "const"

// ConstDeclarationAssignOperator separates a constant's name from its value.
const ConstDeclarationAssignOperator = "="

// ConstDeclaration binds a name to a constant expression: "const <id> = <expr>".
type ConstDeclaration struct {
	span       parsers.Span
	identifier commons.Identifier
	expression expr.Expression
}

func (c ConstDeclaration) Span() parsers.Span             { return c.span }
func (c ConstDeclaration) Identifier() commons.Identifier { return c.identifier }
func (c ConstDeclaration) Expression() expr.Expression    { return c.expression }

// ParseConstDeclaration parses a constant declaration. Cursors captured
// right after the identifier and after the assign operator's trailing
// whitespace let the
// later error builders point at exactly where the missing piece belongs.
func ParseConstDeclaration(in *parsers.Input) parsers.Result[ConstDeclaration] {
	start := in.SaveCursor()

	if !commons.ReadKeyword(ConstDeclarationKeyword)(in).IsFound() {
		in.Restore(start)
		return parsers.Miss[ConstDeclaration]()
	}
	commons.ParseWhitespace(in)

	idResult := commons.ParseIdentifier(in)
	if !idResult.IsFound() {
		return parsers.Fail[ConstDeclaration](errorWithoutIdentifier(in, start))
	}
	identifier := idResult.Value
	postIdentifier := in.SaveCursor()

	commons.ParseWhitespace(in)
	if !in.ConsumeText(ConstDeclarationAssignOperator) {
		return parsers.Fail[ConstDeclaration](errorWithoutAssignExpression(in, start, postIdentifier))
	}
	commons.ParseWhitespace(in)
	postAssignOperator := in.SaveCursor()

	exprResult := expr.ParseExpression(in)
	switch exprResult.Kind {
	case parsers.Found:
		return parsers.Ok(ConstDeclaration{
			span:       in.SubstringToCurrent(start),
			identifier: identifier,
			expression: exprResult.Value,
		})
	case parsers.NotFound:
		return parsers.Fail[ConstDeclaration](errorWithoutExpression(in, start, postAssignOperator))
	default:
		return parsers.Fail[ConstDeclaration](exprResult.Err)
	}
}

func errorWithoutIdentifier(in *parsers.Input, start parsers.Cursor) *parsers.ParserError {
	endIndex := start.ByteOffset() + len(ConstDeclarationKeyword)
	return parsers.GenerateError(in, parsers.ConstDeclarationWithoutIdentifier,
		"Missing identifier after the constant declaration keyword 'const'", func(log *diagnostics.Log) {
			log.HighlightSection(start.ByteOffset(), endIndex, diagnostics.ColorMagenta).
				HighlightCursorMessage(in.ByteOffset(), "Add an identifier here", diagnostics.ColorNone)
		})
}

func errorWithoutAssignExpression(in *parsers.Input, start, postIdentifier parsers.Cursor) *parsers.ParserError {
	return parsers.GenerateError(in, parsers.ConstDeclarationWithoutAssignExpression,
		"Constant declarations require a value after their identifiers", func(log *diagnostics.Log) {
			log.HighlightSection(start.ByteOffset(), postIdentifier.ByteOffset(), diagnostics.ColorMagenta).
				HighlightCursorMessage(in.ByteOffset(), "Add an expression here: = <expr>", diagnostics.ColorNone)
		})
}

func errorWithoutExpression(in *parsers.Input, start, postAssignOperator parsers.Cursor) *parsers.ParserError {
	return parsers.GenerateError(in, parsers.ConstDeclarationWithoutExpression,
		"Constant declarations require an expression after the assign operator '='", func(log *diagnostics.Log) {
			log.HighlightSection(start.ByteOffset(), postAssignOperator.ByteOffset(), diagnostics.ColorMagenta).
				HighlightCursorMessage(postAssignOperator.ByteOffset(), "Add an expression here", diagnostics.ColorNone)
		})
}
