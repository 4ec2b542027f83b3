package expr

import "github.com/mosfetlang/sand/parsers"

// LiteralKind tags which alternative a Literal holds. There is only one
// today; the tagged-union shape is kept so adding string/boolean literals
// later doesn't change every caller's type.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
)

// Literal is a literal value appearing in an expression.
type Literal struct {
	kind   LiteralKind
	number Number
}

func (l Literal) Span() parsers.Span {
	switch l.kind {
	case LiteralNumber:
		return l.number.Span()
	default:
		panic("parsers/expr: unknown literal kind")
	}
}

func (l Literal) IsNumber() bool { return l.kind == LiteralNumber }

func (l Literal) UnwrapNumber() Number {
	if l.kind != LiteralNumber {
		panic("parsers/expr: literal is not a number")
	}
	return l.number
}

// ParseLiteral parses a literal value.
func ParseLiteral(in *parsers.Input) parsers.Result[Literal] {
	result := ParseDecimalNumber(in)
	switch result.Kind {
	case parsers.Found:
		return parsers.Ok(Literal{kind: LiteralNumber, number: result.Value})
	case parsers.NotFound:
		return parsers.Miss[Literal]()
	default:
		return parsers.Fail[Literal](result.Err)
	}
}
