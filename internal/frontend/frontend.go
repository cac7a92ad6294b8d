package frontend

import (
	"github.com/corelang/funl/internal/ast"
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/prelude"
	"github.com/corelang/funl/internal/types"
)

// HoverRange is one entry of the hover ranges parseAndInfer produces:
// a source range paired with a short label the LSP core can display
// verbatim (spec.md §4.5 treats the elaborated expression as opaque and
// only consumes hoverRanges and diagnostics).
type HoverRange struct {
	Range langerr.Range
	Label string
}

// Result is the Right branch of parseAndInfer (spec.md §4.5): the
// elaborated expression (opaque to the LSP core), its inferred scheme,
// and the hover ranges collected while parsing.
type Result struct {
	Expr        ast.Expr
	Scheme      types.Type
	HoverRanges []HoverRange
}

// ValidateInput rejects disallowed input types for the current host
// context (spec.md §6's validateInput hook).
type ValidateInput func(types.Type) error

// ParseAndInfer is the external collaborator of spec.md §4.5: given the
// prelude module map, externally supplied identifier names, source
// text and an input-type validator, it produces either diagnostics or
// an elaborated Result. This stand-in performs no real type inference
// (out of scope): Scheme is always types.TNil{} and validation is only
// run against that placeholder, which is sufficient for exercising the
// LSP core and evaluator against real source text in tests.
func ParseAndInfer(modules prelude.ModuleMap, formals []string, src string, validate ValidateInput) (Result, []langerr.Diagnostic) {
	expr, hovers, err := Parse(src, formals)
	if err != nil {
		return Result{}, []langerr.Diagnostic{{
			Range:    langerr.Range{},
			Severity: langerr.SeverityError,
			Code:     "parse-error",
			Message:  err.Error(),
		}}
	}

	scheme := types.TNil{}
	if validate != nil {
		if verr := validate(scheme); verr != nil {
			return Result{}, []langerr.Diagnostic{{
				Range:    langerr.Range{},
				Severity: langerr.SeverityError,
				Code:     "invalid-input-type",
				Message:  verr.Error(),
			}}
		}
	}

	return Result{Expr: expr, Scheme: scheme, HoverRanges: hovers}, nil
}

// ReservedWords lists the keywords this frontend recognizes, for
// completion candidates (spec.md §4.5's reserved-word completion list).
func ReservedWords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	return words
}
