package stmt

import (
	"testing"

	"github.com/mosfetlang/sand/parsers"
)

func TestParseStatementConstDeclaration(t *testing.T) {
	in := parsers.NewInput("const id = 32", nil)
	result := ParseStatement(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if !result.Value.IsConstDeclaration() {
		t.Fatalf("expected const declaration statement")
	}
}

func TestParseStatementNotFound(t *testing.T) {
	in := parsers.NewInput("", nil)
	result := ParseStatement(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
}

func TestParseStatementPropagatesError(t *testing.T) {
	in := parsers.NewInput("const =", nil)
	result := ParseStatement(in)
	if !result.IsErrored() {
		t.Fatalf("expected errored, got %v", result.Kind)
	}
	if result.Err.Kind != parsers.ConstDeclarationWithoutIdentifier {
		t.Fatalf("unexpected error kind %v", result.Err.Kind)
	}
}
