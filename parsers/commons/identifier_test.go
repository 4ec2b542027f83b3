package commons

import (
	"testing"

	"github.com/mosfetlang/sand/parsers"
)

func TestParseIdentifierBasic(t *testing.T) {
	in := parsers.NewInput("hello_world2 rest", nil)
	result := ParseIdentifier(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if result.Value.Span().Content() != "hello_world2" {
		t.Fatalf("unexpected content %q", result.Value.Span().Content())
	}
}

func TestParseIdentifierCannotStartWithDigit(t *testing.T) {
	in := parsers.NewInput("2abc", nil)
	result := ParseIdentifier(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
}

func TestReadKeywordExactMatch(t *testing.T) {
	in := parsers.NewInput("const rest", nil)
	result := ReadKeyword("const")(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if in.Remaining() != " rest" {
		t.Fatalf("unexpected remaining %q", in.Remaining())
	}
}

func TestReadKeywordRejectsPrefixOfLongerIdentifier(t *testing.T) {
	in := parsers.NewInput("constant", nil)
	result := ReadKeyword("const")(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
	if in.ByteOffset() != 0 {
		t.Fatalf("expected cursor untouched, got offset %d", in.ByteOffset())
	}
}
