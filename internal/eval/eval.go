// Package eval implements the tree-walking evaluator of spec.md §4.1:
// eval(L, P, I, expr) -> V over the elaborated AST of internal/ast.
package eval

import (
	"strings"

	"github.com/corelang/funl/internal/ast"
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

// Evaluator holds the pinned environment P and the current implicit
// environment I. I is reader-scoped (dynamic), not lexical: it is not
// captured by closures at definition time. Let with an implicit binding
// pushes a new frame for the duration of its body and pops it back on
// the way out (mirroring the teacher's witness-stack discipline), so a
// Lam's body sees whichever I frame is live at call time.
type Evaluator struct {
	P        *value.Pinned
	implicit *value.Scope
}

// New creates an Evaluator over the given pinned environment, with an
// empty initial implicit environment.
func New(p *value.Pinned) *Evaluator {
	return &Evaluator{P: p, implicit: value.NewScope()}
}

// SeedImplicit permanently binds name in the evaluator's base implicit
// frame, for a host supplying top-level implicit parameters (e.g. from
// CLI flags) before any expression runs. Unlike pushImplicit, this
// binding is not popped; it exists for the lifetime of the Evaluator.
func (e *Evaluator) SeedImplicit(name string, v value.V) {
	e.implicit.Bind(value.Implicit(name), v)
}

// pushImplicit extends the current implicit frame with name -> v and
// returns a restore function the caller must invoke when the scope of
// the binding ends.
func (e *Evaluator) pushImplicit(name string, v value.V) func() {
	old := e.implicit
	next := old.Extend()
	next.Bind(value.Implicit(name), v)
	e.implicit = next
	return func() { e.implicit = old }
}

// Eval evaluates expr under the lexical environment L, using e.P and
// e.implicit for pinned and implicit lookups respectively.
func (e *Evaluator) Eval(l *value.Scope, expr ast.Expr) (value.V, error) {
	switch n := expr.(type) {

	case ast.IntLit:
		return e.evalIntLit(n), nil

	case ast.DoubleLit:
		return value.VDouble{F: n.Value}, nil

	case ast.HexLit:
		return value.VWord64{W: n.Value}, nil

	case ast.TextLit:
		return value.VText{S: n.Value}, nil

	case ast.InterpolatedString:
		return e.evalInterpolated(l, n)

	case ast.ArrayLit:
		elems := make([]value.V, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.Eval(l, el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.VArray{Elems: elems}, nil

	case ast.ArrayComp:
		return e.evalArrayComp(l, n)

	case ast.EnumRef:
		if n.Hash == "" {
			return nil, langerr.NewRuntimeError("All enums must be pinned")
		}
		return value.VEnum{OwnerHash: n.Hash, Constructor: n.Tag}, nil

	case ast.VarExplicit:
		if v, ok := l.Get(value.Explicit(n.Name)); ok {
			return v, nil
		}
		return nil, langerr.NewRuntimeError("unbound variable %q", n.Name)

	case ast.VarImplicit:
		if v, ok := e.implicit.Get(value.Implicit(n.Name)); ok {
			return v, nil
		}
		return nil, langerr.NewNotFoundInImplicitEnv(n.Name)

	case ast.VarPinned:
		if v, ok := e.P.Get(n.Hash); ok {
			return v, nil
		}
		return nil, langerr.NewRuntimeError("unresolved pinned reference %q", n.Hash)

	case ast.TypeRepExpr:
		return value.VTypeRep{T: n.T}, nil

	case ast.Lam:
		return e.evalLam(l, n), nil

	case ast.App:
		return e.evalApp(l, n)

	case ast.Let:
		return e.evalLet(l, n)

	case ast.If:
		return e.evalIf(l, n)

	case ast.BoolAnd:
		return e.evalBoolAnd(l, n)

	case ast.BoolOr:
		return e.evalBoolOr(l, n)

	case ast.TupleLit:
		elems := make([]value.V, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.Eval(l, el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.VTuple{Elems: elems}, nil

	case ast.OneLit:
		v, err := e.Eval(l, n.Inner)
		if err != nil {
			return nil, err
		}
		return value.VOne{Elem: v}, nil

	case ast.EmptyLit:
		return value.VEmpty{}, nil

	case ast.Assert:
		return e.evalAssert(l, n)

	case ast.Case:
		return e.evalCase(l, n)

	// Transparent wrappers: spec.md §4.1.
	case ast.CommentAbove:
		return e.Eval(l, n.Inner)
	case ast.CommentAfter:
		return e.Eval(l, n.Inner)
	case ast.CommentBelow:
		return e.Eval(l, n.Inner)
	case ast.Bracketed:
		return e.Eval(l, n.Inner)
	case ast.RenameModule:
		return e.Eval(l, n.Inner)
	case ast.OpenModule:
		return e.Eval(l, n.Inner)
	}

	return nil, langerr.NewRuntimeError("eval: unhandled node %T", expr)
}

// evalIntLit implements the type-dispatched numeric literal of spec.md
// §4.1: an integer literal evaluates to a function of a VTypeRep.
func (e *Evaluator) evalIntLit(n ast.IntLit) value.V {
	val := n.Value
	return value.VFun{
		Name: "<int-literal>",
		Call: func(arg value.V) (value.V, error) {
			rep, ok := arg.(value.VTypeRep)
			if !ok {
				return nil, langerr.NewRuntimeError("Invalid runtime rep for numeric constant")
			}
			base, ok := rep.T.(types.TBase)
			if !ok {
				return nil, langerr.NewRuntimeError("Invalid runtime rep for numeric constant")
			}
			switch base.Kind {
			case types.TInt:
				return value.VInt{I: val}, nil
			case types.TDouble:
				return value.VDouble{F: float64(val)}, nil
			default:
				return nil, langerr.NewRuntimeError("Invalid runtime rep for numeric constant")
			}
		},
	}
}

func (e *Evaluator) evalInterpolated(l *value.Scope, n ast.InterpolatedString) (value.V, error) {
	var b strings.Builder
	for _, chunk := range n.Chunks {
		if chunk.Expr == nil {
			b.WriteString(chunk.Text)
			continue
		}
		v, err := e.Eval(l, chunk.Expr)
		if err != nil {
			return nil, err
		}
		b.WriteString(v.Pretty())
	}
	return value.VText{S: b.String()}, nil
}

func (e *Evaluator) evalLam(l *value.Scope, n ast.Lam) value.V {
	return e.curry(l, n.Params, n.Body)
}

// curry builds the chain of VFun closures for a multi-parameter Lam: one
// VFun per remaining parameter, each Call either binding and returning
// the next link or, once params is exhausted, evaluating the body.
func (e *Evaluator) curry(l *value.Scope, params []ast.LamParam, body ast.Expr) value.V {
	p := params[0]
	rest := params[1:]
	return value.VFun{
		Name: "<lambda>",
		Call: func(arg value.V) (value.V, error) {
			next := l
			if !p.Wildcard {
				next = l.Extend()
				next.Bind(value.Explicit(p.Name), arg)
			}
			if len(rest) == 0 {
				return e.Eval(next, body)
			}
			return e.curry(next, rest, body), nil
		},
	}
}

func (e *Evaluator) evalApp(l *value.Scope, n ast.App) (value.V, error) {
	fv, err := e.Eval(l, n.Fn)
	if err != nil {
		return nil, err
	}
	fn, ok := fv.(value.VFun)
	if !ok {
		return nil, langerr.NewRuntimeError("application of a non-function value")
	}
	av, err := e.Eval(l, n.Arg)
	if err != nil {
		return nil, err
	}
	return fn.Call(av)
}

func (e *Evaluator) evalLet(l *value.Scope, n ast.Let) (value.V, error) {
	v, err := e.Eval(l, n.Value)
	if err != nil {
		return nil, err
	}
	if n.Implicit {
		restore := e.pushImplicit(n.Name, v)
		defer restore()
		return e.Eval(l, n.Body)
	}
	next := l.Extend()
	next.Bind(value.Explicit(n.Name), v)
	return e.Eval(next, n.Body)
}

func (e *Evaluator) evalIf(l *value.Scope, n ast.If) (value.V, error) {
	cv, err := e.Eval(l, n.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := value.IsBool(cv)
	if !ok {
		return nil, langerr.NewRuntimeError("if condition did not evaluate to a boolean")
	}
	if b {
		return e.Eval(l, n.Then)
	}
	return e.Eval(l, n.Else)
}

// evalBoolAnd/evalBoolOr short-circuit via dedicated AST nodes rather
// than the general binary-operator pinned-hash path, so the untaken
// branch is never evaluated.
func (e *Evaluator) evalBoolAnd(l *value.Scope, n ast.BoolAnd) (value.V, error) {
	lv, err := e.Eval(l, n.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := value.IsBool(lv)
	if !ok {
		return nil, langerr.NewRuntimeError("&& left operand did not evaluate to a boolean")
	}
	if !lb {
		return value.False, nil
	}
	rv, err := e.Eval(l, n.Right)
	if err != nil {
		return nil, err
	}
	if _, ok := value.IsBool(rv); !ok {
		return nil, langerr.NewRuntimeError("&& right operand did not evaluate to a boolean")
	}
	return rv, nil
}

func (e *Evaluator) evalBoolOr(l *value.Scope, n ast.BoolOr) (value.V, error) {
	lv, err := e.Eval(l, n.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := value.IsBool(lv)
	if !ok {
		return nil, langerr.NewRuntimeError("|| left operand did not evaluate to a boolean")
	}
	if lb {
		return value.True, nil
	}
	rv, err := e.Eval(l, n.Right)
	if err != nil {
		return nil, err
	}
	if _, ok := value.IsBool(rv); !ok {
		return nil, langerr.NewRuntimeError("|| right operand did not evaluate to a boolean")
	}
	return rv, nil
}

func (e *Evaluator) evalAssert(l *value.Scope, n ast.Assert) (value.V, error) {
	cv, err := e.Eval(l, n.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := value.IsBool(cv)
	if !ok {
		return nil, langerr.NewRuntimeError("assert condition did not evaluate to a boolean")
	}
	if !b {
		return nil, langerr.ErrAssertionFailed
	}
	return e.Eval(l, n.Body)
}

func (e *Evaluator) evalArrayComp(l *value.Scope, n ast.ArrayComp) (value.V, error) {
	results, err := e.runGenerators(l, n.Generators, n.Body, n.Cond)
	if err != nil {
		return nil, err
	}
	return value.VArray{Elems: results}, nil
}

func (e *Evaluator) runGenerators(l *value.Scope, gens []ast.Generator, body ast.Expr, cond ast.Expr) ([]value.V, error) {
	if len(gens) == 0 {
		if cond != nil {
			cv, err := e.Eval(l, cond)
			if err != nil {
				return nil, err
			}
			b, ok := value.IsBool(cv)
			if !ok {
				return nil, langerr.NewRuntimeError("array comprehension condition did not evaluate to a boolean")
			}
			if !b {
				return nil, nil
			}
		}
		v, err := e.Eval(l, body)
		if err != nil {
			return nil, err
		}
		return []value.V{v}, nil
	}

	g := gens[0]
	rest := gens[1:]
	srcV, err := e.Eval(l, g.Source)
	if err != nil {
		return nil, err
	}
	arr, ok := srcV.(value.VArray)
	if !ok {
		return nil, langerr.NewRuntimeError("array comprehension generator source is not an array")
	}

	var out []value.V
	for _, elem := range arr.Elems {
		next := l.Extend()
		next.Bind(value.Explicit(g.Var), elem)
		sub, err := e.runGenerators(next, rest, body, cond)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}
