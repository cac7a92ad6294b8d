package eval

import (
	"github.com/corelang/funl/internal/ast"
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/value"
)

// evalCase tries each arm's pattern in source order; the first match
// wins and its body is evaluated in the extended environment.
func (e *Evaluator) evalCase(l *value.Scope, n ast.Case) (value.V, error) {
	sv, err := e.Eval(l, n.Scrutinee)
	if err != nil {
		return nil, err
	}
	for _, arm := range n.Arms {
		next, ok := matchPattern(l, arm.Pattern, sv)
		if ok {
			return e.Eval(next, arm.Body)
		}
	}
	return nil, langerr.NewRuntimeError("non-exhaustive patterns in case")
}

// matchPattern attempts to match v against pat, returning the lexical
// environment extended with any bindings the pattern introduces.
// Patterns are linear, so sub-bindings never collide and can simply be
// threaded through nested recursive calls.
func matchPattern(l *value.Scope, pat ast.Pattern, v value.V) (*value.Scope, bool) {
	switch p := pat.(type) {

	case ast.PWildcard:
		return l, true

	case ast.PVar:
		next := l.Extend()
		next.Bind(value.Explicit(p.Name), v)
		return next, true

	case ast.PLit:
		if p.Int != nil {
			iv, ok := v.(value.VInt)
			return l, ok && iv.I == *p.Int
		}
		if p.Text != nil {
			tv, ok := v.(value.VText)
			return l, ok && tv.S == *p.Text
		}
		return l, false

	case ast.PEnum:
		ev, ok := v.(value.VEnum)
		return l, ok && ev.OwnerHash == p.Hash && ev.Constructor == p.Tag

	case ast.POne:
		ov, ok := v.(value.VOne)
		if !ok {
			return l, false
		}
		return matchPattern(l, p.Inner, ov.Elem)

	case ast.PEmpty:
		_, ok := v.(value.VEmpty)
		return l, ok

	case ast.PTuple:
		tv, ok := v.(value.VTuple)
		if !ok || len(tv.Elems) != len(p.Elements) {
			return l, false
		}
		cur := l
		for i, sub := range p.Elements {
			next, ok := matchPattern(cur, sub, tv.Elems[i])
			if !ok {
				return l, false
			}
			cur = next
		}
		return cur, true
	}

	return l, false
}
