package expr

import (
	"testing"

	"github.com/mosfetlang/sand/parsers"
)

func TestParseExpressionLiteral(t *testing.T) {
	in := parsers.NewInput("42", nil)
	result := ParseExpression(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if !result.Value.IsLiteral() {
		t.Fatalf("expected literal expression")
	}
	if !result.Value.UnwrapLiteral().IsNumber() {
		t.Fatalf("expected number literal")
	}
}

func TestParseExpressionNotFound(t *testing.T) {
	in := parsers.NewInput("", nil)
	result := ParseExpression(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
}
