package expr

import "github.com/mosfetlang/sand/parsers"

// ExpressionKind tags which alternative an Expression holds.
type ExpressionKind int

const (
	ExpressionLiteral ExpressionKind = iota
)

// Expression is a value-producing construct; today that's only literals,
// but ConstDeclaration's right-hand side is typed as Expression so the
// grammar can grow arithmetic/identifiers later without changing callers.
type Expression struct {
	kind    ExpressionKind
	literal Literal
}

func (e Expression) Span() parsers.Span {
	switch e.kind {
	case ExpressionLiteral:
		return e.literal.Span()
	default:
		panic("parsers/expr: unknown expression kind")
	}
}

func (e Expression) IsLiteral() bool { return e.kind == ExpressionLiteral }

func (e Expression) UnwrapLiteral() Literal {
	if e.kind != ExpressionLiteral {
		panic("parsers/expr: expression is not a literal")
	}
	return e.literal
}

// ParseExpression parses an expression.
func ParseExpression(in *parsers.Input) parsers.Result[Expression] {
	result := ParseLiteral(in)
	switch result.Kind {
	case parsers.Found:
		return parsers.Ok(Expression{kind: ExpressionLiteral, literal: result.Value})
	case parsers.NotFound:
		return parsers.Miss[Expression]()
	default:
		return parsers.Fail[Expression](result.Err)
	}
}
