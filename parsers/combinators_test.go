package parsers

import "testing"

func digit(in *Input) Result[rune] {
	r, ok := in.PeekRune()
	if !ok || r < '0' || r > '9' {
		return Miss[rune]()
	}
	in.AdvanceRune()
	return Ok(r)
}

func letter(in *Input) Result[rune] {
	r, ok := in.PeekRune()
	if !ok || r < 'a' || r > 'z' {
		return Miss[rune]()
	}
	in.AdvanceRune()
	return Ok(r)
}

func TestAlternativeTriesEachOption(t *testing.T) {
	in := NewInput("a1", nil)
	parse := Alternative(digit, letter)
	result := parse(in)
	if !result.IsFound() || result.Value != 'a' {
		t.Fatalf("expected found 'a', got %v %v", result.Kind, result.Value)
	}
}

func TestAlternativeAllMiss(t *testing.T) {
	in := NewInput("!", nil)
	parse := Alternative(digit, letter)
	result := parse(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
	if in.ByteOffset() != 0 {
		t.Fatalf("expected cursor untouched")
	}
}

func TestOptionalFoundAndNotFound(t *testing.T) {
	in := NewInput("1", nil)
	found := Optional(digit)(in)
	if !found.IsFound() || found.Value == nil || *found.Value != '1' {
		t.Fatalf("expected found pointer to '1', got %v", found)
	}

	in2 := NewInput("a", nil)
	missing := Optional(digit)(in2)
	if !missing.IsFound() || missing.Value != nil {
		t.Fatalf("expected found nil, got %v", missing)
	}
	if in2.ByteOffset() != 0 {
		t.Fatalf("expected cursor untouched on miss")
	}
}

func TestEnsurePromotesNotFoundToError(t *testing.T) {
	in := NewInput("a", nil)
	parse := Ensure(digit, func(in *Input) *ParserError {
		return &ParserError{Kind: NumberTooBig}
	})
	result := parse(in)
	if !result.IsErrored() {
		t.Fatalf("expected errored, got %v", result.Kind)
	}
}

func TestVerifyDemotesFailingPredicate(t *testing.T) {
	in := NewInput("5", nil)
	parse := Verify(digit, func(r rune) bool { return r == '1' })
	result := parse(in)
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %v", result.Kind)
	}
	if in.ByteOffset() != 0 {
		t.Fatalf("expected cursor restored")
	}
}

func TestRepeatCollectsAndEnforcesMin(t *testing.T) {
	in := NewInput("123a", nil)
	result := Repeat(1, digit)(in)
	if !result.IsFound() || len(result.Value) != 3 {
		t.Fatalf("expected 3 digits, got %v", result)
	}

	in2 := NewInput("a", nil)
	result2 := Repeat(1, digit)(in2)
	if !result2.IsNotFound() {
		t.Fatalf("expected not found, got %v", result2.Kind)
	}
	if in2.ByteOffset() != 0 {
		t.Fatalf("expected cursor restored")
	}
}

func TestPrecededDiscardsPrefix(t *testing.T) {
	in := NewInput("1a", nil)
	result := Preceded(digit, letter)(in)
	if !result.IsFound() || result.Value != 'a' {
		t.Fatalf("expected found 'a', got %v", result)
	}
}

func TestCursorAdvanceTracksLineAndColumn(t *testing.T) {
	c := NewCursor()
	c = c.advance('a')
	if c.Line() != 1 || c.Column() != 2 {
		t.Fatalf("unexpected position after 'a': line=%d column=%d", c.Line(), c.Column())
	}
	c = c.advance('\n')
	if c.Line() != 2 || c.Column() != 1 {
		t.Fatalf("unexpected position after newline: line=%d column=%d", c.Line(), c.Column())
	}
}

func TestInputSubstringToCurrent(t *testing.T) {
	in := NewInput("hello", nil)
	start := in.SaveCursor()
	in.AdvanceRune()
	in.AdvanceRune()
	span := in.SubstringToCurrent(start)
	if span.Content() != "he" {
		t.Fatalf("unexpected span content %q", span.Content())
	}
}
