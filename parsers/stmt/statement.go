package stmt

import "github.com/mosfetlang/sand/parsers"

// StatementKind tags which alternative a Statement holds.
type StatementKind int

const (
	StatementConstDeclaration StatementKind = iota
)

// Statement is a single top-level program statement.
type Statement struct {
	kind             StatementKind
	constDeclaration ConstDeclaration
}

func (s Statement) Span() parsers.Span {
	switch s.kind {
	case StatementConstDeclaration:
		return s.constDeclaration.Span()
	default:
		panic("parsers/stmt: unknown statement kind")
	}
}

func (s Statement) IsConstDeclaration() bool { return s.kind == StatementConstDeclaration }

func (s Statement) UnwrapConstDeclaration() ConstDeclaration {
	if s.kind != StatementConstDeclaration {
		panic("parsers/stmt: statement is not a const declaration")
	}
	return s.constDeclaration
}

// ParseStatement parses a statement.
func ParseStatement(in *parsers.Input) parsers.Result[Statement] {
	result := ParseConstDeclaration(in)
	switch result.Kind {
	case parsers.Found:
		return parsers.Ok(Statement{kind: StatementConstDeclaration, constDeclaration: result.Value})
	case parsers.NotFound:
		return parsers.Miss[Statement]()
	default:
		return parsers.Fail[Statement](result.Err)
	}
}
