package commons

import (
	"testing"

	"github.com/mosfetlang/sand/parsers"
)

func TestParseWhitespaceSingleLine(t *testing.T) {
	in := parsers.NewInput("   rest", nil)
	result := ParseWhitespace(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if result.Value.IsMultiline() {
		t.Fatalf("expected single line")
	}
	if in.Remaining() != "rest" {
		t.Fatalf("unexpected remaining %q", in.Remaining())
	}
}

func TestParseWhitespaceMultiline(t *testing.T) {
	in := parsers.NewInput("  \n  rest", nil)
	result := ParseWhitespace(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if !result.Value.IsMultiline() {
		t.Fatalf("expected multiline")
	}
}

func TestParseWhitespaceWithComment(t *testing.T) {
	in := parsers.NewInput("  # a comment\n  rest", nil)
	result := ParseWhitespace(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if in.Remaining() != "rest" {
		t.Fatalf("unexpected remaining %q", in.Remaining())
	}
}

func TestParseWhitespaceNotFound(t *testing.T) {
	in := parsers.NewInput("rest", nil)
	result := ParseWhitespace(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
	if in.ByteOffset() != 0 {
		t.Fatalf("expected cursor untouched, got offset %d", in.ByteOffset())
	}
}
