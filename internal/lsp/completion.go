package lsp

import "strings"

// CompletionSource supplies the three in-process candidate lists
// spec.md §4.5 concatenates with getIdents: reserved words, module
// names, and prelude-derived completions.
type CompletionSource interface {
	ReservedWords() []string
	ModuleNames() []string
	PreludeIdents() []string
}

// CompletionItem is one candidate, rendered with the original prefix so
// the client can filter and replace client-side.
type CompletionItem struct {
	Label  string
	Prefix string
}

// CompletionPrefix computes the completion prefix at the cursor by
// walking left through identifier characters on line, stopping at col
// (spec.md §4.5).
func CompletionPrefix(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	end := col
	start := end
	for start > 0 && isIdentRune(rune(line[start-1])) {
		start--
	}
	return line[start:end]
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '.' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Complete builds the four-list candidate concatenation of spec.md
// §4.5: reserved-word completions, module-name completions, externally
// supplied identifier completions (getIdents), then prelude-derived
// completions, each filtered to names that start with prefix.
func (s *Server) Complete(src CompletionSource, prefix string) []CompletionItem {
	var out []CompletionItem
	add := func(names []string) {
		for _, n := range names {
			if strings.HasPrefix(n, prefix) {
				out = append(out, CompletionItem{Label: n, Prefix: prefix})
			}
		}
	}

	add(src.ReservedWords())
	add(src.ModuleNames())
	if s.GetIdents != nil {
		add(s.GetIdents())
	}
	add(src.PreludeIdents())

	return out
}
