// Package ast defines the elaborated AST node set the evaluator and the
// exhaustiveness analyzer consume. Lexing and parsing are out of scope
// (spec.md §1); parseAndInfer and pinExpr/inferExpr are external
// collaborators whose only contract with this module is that they hand
// back a tree built from these node types, every Enum_ and operator
// occurrence already carrying a resolved hash (spec.md §3 invariant).
package ast

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
)

// Expr is any elaborated expression node.
type Expr interface {
	// Range reports the node's source span, used by the LSP core to
	// build the hover index (spec.md §3).
	Range() langerr.Range
}

// Base is embedded by every concrete Expr to carry its source range
// without repeating the Range() method on each type.
type Base struct{ Rng langerr.Range }

func (n Base) Range() langerr.Range { return n.Rng }

// IntLit is an integer literal. Per spec.md §4.1 it does not evaluate
// directly to a VInt: it evaluates to a type-dispatched function that
// resolves the literal's runtime representation from a VTypeRep witness.
type IntLit struct {
	Base
	Value int64
}

// DoubleLit is a floating literal (`LDouble`).
type DoubleLit struct {
	Base
	Value float64
}

// HexLit is a hex word literal (`LHex`), always a VWord64 regardless of
// its inferred narrower width — narrowing, if any, is the prelude's job.
type HexLit struct {
	Base
	Value uint64
}

// TextLit is a plain text literal (`LText`).
type TextLit struct {
	Base
	Value string
}

// StringChunk is one piece of an InterpolatedString: either a literal
// text run (Expr is nil) or a sub-expression to render and splice in.
type StringChunk struct {
	Text string
	Expr Expr
}

// InterpolatedString concatenates its chunks into a single VText,
// rendering sub-expressions through the canonical pretty form.
type InterpolatedString struct {
	Base
	Chunks []StringChunk
}

// ArrayLit is an array literal, evaluated left-to-right.
type ArrayLit struct {
	Base
	Elements []Expr
}

// Generator is one `x <- e_s` clause of an ArrayComp.
type Generator struct {
	Var    string
	Source Expr
}

// ArrayComp is a nested array comprehension with an optional guard.
type ArrayComp struct {
	Base
	Body       Expr
	Generators []Generator
	Cond       Expr // nil if no guard
}

// EnumRef is a pinned enum-constructor occurrence. Hash is the owning
// enum's content address; an empty Hash is a parse/elaboration bug the
// evaluator rejects with RuntimeError("All enums must be pinned").
type EnumRef struct {
	Base
	Hash string
	Tag  string
}

// VarExplicit is an ordinary (lexical) variable reference.
type VarExplicit struct {
	Base
	Name string
}

// VarImplicit is an implicit-parameter reference (`?name` in source).
type VarImplicit struct {
	Base
	Name string
}

// VarPinned is a pinned operator/global reference, resolved against P.
type VarPinned struct {
	Base
	Hash string
}

// TypeRepExpr reifies a type as a runtime VTypeRep value.
type TypeRepExpr struct {
	Base
	T types.Type
}

// LamParam is one parameter of a Lam: either a bound name or a wildcard
// that consumes and discards its argument.
type LamParam struct {
	Name     string // empty when Wildcard
	Wildcard bool
}

// Lam is a (possibly multi-argument) lambda; the evaluator curries it
// into a chain of VFuns, one per parameter.
type Lam struct {
	Base
	Params []LamParam
	Body   Expr
}

// App is function application.
type App struct {
	Base
	Fn  Expr
	Arg Expr
}

// Let is a binding form. Implicit selects whether Name extends the
// lexical environment L or the implicit environment I for the scope of
// Body.
type Let struct {
	Base
	Implicit bool
	Name     string
	Value    Expr
	Body     Expr
}

// If is the conditional form; Cond must evaluate to the Bool enum.
type If struct {
	Base
	Cond Expr
	Then Expr
	Else Expr
}

// BoolAnd/BoolOr are short-circuiting boolean connectives. Unlike the
// general binary-operator path (which always resolves through a pinned
// hash in P and evaluates both operands), these two nodes are evaluated
// specially so the untaken branch of `&&`/`||` is never touched — the
// one deliberate deviation from "all binops go through P" spec.md §4.1
// otherwise requires, carried over from the original implementation
// (see DESIGN.md).
type BoolAnd struct {
	Base
	Left, Right Expr
}

type BoolOr struct {
	Base
	Left, Right Expr
}

// TupleLit, OneLit, EmptyLit are the product/optional constructors.
type TupleLit struct {
	Base
	Elements []Expr
}

type OneLit struct {
	Base
	Inner Expr
}

type EmptyLit struct{ Base }

// Assert raises AssertionFailed when Cond evaluates to false.
type Assert struct {
	Base
	Cond Expr
	Body Expr
}

// CaseArm is one `pat -> body` arm of a Case.
type CaseArm struct {
	Pattern Pattern
	Body    Expr
}

// Case tries each arm's pattern in source order; the first match wins.
type Case struct {
	Base
	Scrutinee Expr
	Arms      []CaseArm
}

// CommentAbove, CommentAfter, CommentBelow, Bracketed, RenameModule, and
// OpenModule are transparent wrappers: they evaluate their inner
// expression and otherwise carry only presentation/scoping metadata that
// belongs to the parser/module-resolution boundary outside this module's
// scope.
type CommentAbove struct {
	Base
	Inner Expr
}
type CommentAfter struct {
	Base
	Inner Expr
}
type CommentBelow struct {
	Base
	Inner Expr
}
type Bracketed struct {
	Base
	Inner Expr
}
type RenameModule struct {
	Base
	Inner Expr
}
type OpenModule struct {
	Base
	Inner Expr
}

// NewBase is a constructor helper so callers (chiefly internal/frontend)
// can set a node's range without repeating the embedded-field literal.
func NewBase(r langerr.Range) Base { return Base{Rng: r} }
