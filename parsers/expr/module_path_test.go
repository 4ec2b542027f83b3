package expr

import (
	"reflect"
	"testing"

	"github.com/mosfetlang/sand/parsers"
)

func TestParseModulePathSingleSegment(t *testing.T) {
	in := parsers.NewInput("id1::", nil)
	result := ParseModulePath(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if !reflect.DeepEqual(result.Value.Parts(), []string{"id1"}) {
		t.Fatalf("unexpected parts %v", result.Value.Parts())
	}
}

func TestParseModulePathStopsBeforeNonSeparatedIdentifier(t *testing.T) {
	in := parsers.NewInput("id1::id_terminator", nil)
	result := ParseModulePath(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	if !reflect.DeepEqual(result.Value.Parts(), []string{"id1"}) {
		t.Fatalf("unexpected parts %v", result.Value.Parts())
	}
	if in.Remaining() != "id_terminator" {
		t.Fatalf("unexpected remaining %q", in.Remaining())
	}
}

func TestParseModulePathMultipleSegments(t *testing.T) {
	in := parsers.NewInput("long::path::to::module", nil)
	result := ParseModulePath(in)
	if !result.IsFound() {
		t.Fatalf("expected found, got %v", result.Kind)
	}
	want := []string{"long", "path", "to"}
	if !reflect.DeepEqual(result.Value.Parts(), want) {
		t.Fatalf("unexpected parts %v", result.Value.Parts())
	}
	if in.Remaining() != "module" {
		t.Fatalf("unexpected remaining %q", in.Remaining())
	}
}

func TestParseModulePathNotFoundCases(t *testing.T) {
	cases := []string{"", "id1", "id1:", "2abc::"}
	for _, content := range cases {
		in := parsers.NewInput(content, nil)
		result := ParseModulePath(in)
		if !result.IsNotFound() {
			t.Fatalf("content %q: expected not found, got %v", content, result.Kind)
		}
		if in.ByteOffset() != 0 {
			t.Fatalf("content %q: expected cursor untouched, got offset %d", content, in.ByteOffset())
		}
	}
}
