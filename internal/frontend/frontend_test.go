package frontend

import (
	"testing"

	"github.com/corelang/funl/internal/ast"
	"github.com/corelang/funl/internal/prelude"
	"github.com/corelang/funl/internal/types"
)

func TestParseSimpleArithmeticDesugarsToApp(t *testing.T) {
	expr, _, err := Parse("1 + 2", nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	outer, ok := expr.(ast.App)
	if !ok {
		t.Fatalf("top-level expr = %T, want ast.App (binary op desugars to nested App)", expr)
	}
	inner, ok := outer.Fn.(ast.App)
	if !ok {
		t.Fatalf("outer.Fn = %T, want ast.App wrapping the operator", outer.Fn)
	}
	opRef, ok := inner.Fn.(ast.VarPinned)
	if !ok || opRef.Hash != "+" {
		t.Fatalf("inner.Fn = %+v, want VarPinned{Hash: \"+\"}", inner.Fn)
	}
}

func TestParseLetInImplicit(t *testing.T) {
	expr, _, err := Parse(`let ?x = 1 in ?x`, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	let, ok := expr.(ast.Let)
	if !ok {
		t.Fatalf("expr = %T, want ast.Let", expr)
	}
	if !let.Implicit || let.Name != "x" {
		t.Errorf("Let = %+v, want Implicit=true Name=x", let)
	}
	if _, ok := let.Body.(ast.VarImplicit); !ok {
		t.Errorf("Let.Body = %T, want ast.VarImplicit", let.Body)
	}
}

func TestParseFormalsBecomeVarImplicit(t *testing.T) {
	expr, _, err := Parse("cfg", []string{"cfg"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, ok := expr.(ast.VarImplicit); !ok || v.Name != "cfg" {
		t.Fatalf("expr = %+v, want VarImplicit{Name: cfg} since cfg is in formals", expr)
	}
}

func TestParseIdentNotInFormalsIsVarExplicit(t *testing.T) {
	expr, _, err := Parse("x", nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := expr.(ast.VarExplicit); !ok {
		t.Fatalf("expr = %T, want ast.VarExplicit", expr)
	}
}

func TestParseCaseWithArms(t *testing.T) {
	expr, _, err := Parse(`case x of { 1 -> "one" | _ -> "other" }`, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c, ok := expr.(ast.Case)
	if !ok {
		t.Fatalf("expr = %T, want ast.Case", expr)
	}
	if len(c.Arms) != 2 {
		t.Fatalf("Arms = %v, want 2", c.Arms)
	}
	if _, ok := c.Arms[1].Pattern.(ast.PWildcard); !ok {
		t.Errorf("second arm pattern = %T, want ast.PWildcard", c.Arms[1].Pattern)
	}
}

func TestParseTrailingTokenIsError(t *testing.T) {
	if _, _, err := Parse("1 2 )", nil); err == nil {
		t.Fatal("a stray trailing token should be a parse error")
	}
}

func TestParseRecordsHoverRangeForIdentifier(t *testing.T) {
	_, hovers, err := Parse("x", nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(hovers) != 1 || hovers[0].Label != "x" {
		t.Fatalf("hovers = %+v, want one entry labeled x", hovers)
	}
}

func TestReservedWordsIncludesKeywords(t *testing.T) {
	words := ReservedWords()
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	for _, want := range []string{"let", "case", "fun", "if", "assert"} {
		if !set[want] {
			t.Errorf("ReservedWords() = %v, missing %q", words, want)
		}
	}
}

func TestParseAndInferSurfacesParseErrorAsDiagnostic(t *testing.T) {
	_, diags := ParseAndInfer(prelude.ModuleMap{}, nil, "let x = in x", nil)
	if len(diags) != 1 || diags[0].Code != "parse-error" {
		t.Fatalf("diags = %+v, want one parse-error diagnostic", diags)
	}
}

func TestParseAndInferSucceedsAndReturnsHovers(t *testing.T) {
	result, diags := ParseAndInfer(prelude.ModuleMap{}, nil, "x", nil)
	if diags != nil {
		t.Fatalf("diags = %v, want nil for valid input", diags)
	}
	if result.Expr == nil {
		t.Fatal("Result.Expr should be populated on success")
	}
	if len(result.HoverRanges) != 1 {
		t.Fatalf("HoverRanges = %v, want 1 entry", result.HoverRanges)
	}
}

func TestParseAndInferValidateRejectsScheme(t *testing.T) {
	reject := func(types.Type) error { return errValidate }
	_, diags := ParseAndInfer(prelude.ModuleMap{}, nil, "x", reject)
	if len(diags) != 1 || diags[0].Code != "invalid-input-type" {
		t.Fatalf("diags = %+v, want one invalid-input-type diagnostic", diags)
	}
}

type validateErr struct{}

func (validateErr) Error() string { return "rejected by validator" }

var errValidate = validateErr{}
