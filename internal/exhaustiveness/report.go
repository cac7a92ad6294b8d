package exhaustiveness

import "github.com/corelang/funl/internal/ast"

// Report aggregates the two outcomes of analyzing a whole case block
// (spec.md §4.3): which arms are redundant given earlier arms, and
// whether the match is exhaustive.
type Report struct {
	// Overlap[i] is -1 if arm i is useful, or the index of the earliest
	// arm that already covers it (CheckUsefulness).
	Overlap []int

	// Exhaustive is false when Missing holds a witness pattern not
	// covered by any arm.
	Exhaustive bool
	Missing    Pat
}

// lowerPattern converts a single ast.Pattern into a Pat.
func lowerPattern(p ast.Pattern) Pat {
	switch pat := p.(type) {
	case ast.PWildcard:
		return W()
	case ast.PVar:
		return W()
	case ast.PLit:
		if pat.Int != nil {
			return C(IntCon(*pat.Int))
		}
		return C(TextCon(*pat.Text))
	case ast.PEnum:
		return C(EnumCon(pat.Hash, pat.Tag))
	case ast.POne:
		return C(OneCon(), lowerPattern(pat.Inner))
	case ast.PEmpty:
		return C(EmptyCon())
	case ast.PTuple:
		subs := make([]Pat, len(pat.Elements))
		for i, el := range pat.Elements {
			subs[i] = lowerPattern(el)
		}
		return C(TupleCon(len(pat.Elements)), subs...)
	}
	return W()
}

// Lower builds the single-column Matrix for a Case's arms. A case
// expression always scrutinizes one value, so every row has width 1.
func Lower(c ast.Case) Matrix {
	m := make(Matrix, len(c.Arms))
	for i, arm := range c.Arms {
		m[i] = Row{lowerPattern(arm.Pattern)}
	}
	return m
}

// Analyze runs the full usefulness/exhaustiveness check over a Case,
// producing the Report a diagnostics layer publishes directly.
func Analyze(sigs EnumSigs, c ast.Case) Report {
	m := Lower(c)
	width := 1 // a case always scrutinizes exactly one value
	overlap := CheckUsefulness(sigs, m)
	missing, exhaustive := Exhaustive(sigs, m, width)
	rep := Report{Overlap: overlap, Exhaustive: exhaustive}
	if !exhaustive && len(missing) > 0 {
		rep.Missing = missing[0]
	}
	return rep
}
