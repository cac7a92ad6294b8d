package lsp

import "github.com/corelang/funl/internal/langerr"

// Definition is a resolved declaration site, the result of
// textDocument/definition.
type Definition struct {
	URI   string
	Range langerr.Range
}

// DefinitionAt implements textDocument/definition by reusing the hover
// index's smallest-containing-range search (spec.md's [EXPANSION] in
// SPEC_FULL.md §4.5) and reading off the winning entry's DefinitionURI.
// A hover entry with no recorded definition site (DefinitionURI == "")
// reports ok == false, matching the teacher's handler_definition.go
// returning a nil result whenever resolution fails at any step.
func (s *Server) DefinitionAt(uri string, pos langerr.Position) (Definition, bool) {
	entry, ok := s.HoverAt(uri, pos)
	if !ok || entry.DefinitionURI == "" {
		return Definition{}, false
	}
	return Definition{URI: entry.DefinitionURI, Range: entry.DefinitionRange}, true
}
