// Package expr implements the Sand expression grammar: module paths,
// numeric literals, and the tagged-union Literal/Expression nodes built on
// top of them.
package expr

import (
	"strings"

	"github.com/mosfetlang/sand/parsers"
	"github.com/mosfetlang/sand/parsers/commons"
)

// ModulePathSeparator joins the segments of a module path.
const ModulePathSeparator = "::"

// ModulePath is a sequence of identifiers joined by "::", with a trailing
// separator (e.g. "a::b::").
type ModulePath struct {
	span parsers.Span
}

func (m ModulePath) Span() parsers.Span { return m.span }

// Parts splits the path into its identifier segments.
func (m ModulePath) Parts() []string {
	trimmed := strings.TrimSuffix(m.span.Content(), ModulePathSeparator)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ModulePathSeparator)
}

// ParseModulePath parses one or more "identifier::" segments.
func ParseModulePath(in *parsers.Input) parsers.Result[ModulePath] {
	start := in.SaveCursor()

	segments := 0
	for {
		segmentStart := in.SaveCursor()

		idResult := commons.ParseIdentifier(in)
		if !idResult.IsFound() {
			in.Restore(segmentStart)
			break
		}
		if !in.ConsumeText(ModulePathSeparator) {
			in.Restore(segmentStart)
			break
		}
		segments++
	}

	if segments == 0 {
		in.Restore(start)
		return parsers.Miss[ModulePath]()
	}

	return parsers.Ok(ModulePath{span: in.SubstringToCurrent(start)})
}
