// Package types implements InfernoType, the conventional ML type term
// consumed by the Cast bridge and the evaluator's numeric-literal
// dispatch (VCObject carries schemes as rendered strings). Unification and inference are out
// of this module's scope (spec.md §1); this package only models the
// elaborated type terms parseAndInfer/pinExpr would hand back.
package types

import (
	"fmt"
	"strings"

	"github.com/corelang/funl/internal/config"
)

// Type is any InfernoType term.
type Type interface {
	// String renders the type the way hover and diagnostics show it.
	String() string
	// Equal reports structural equality, the relation Cast.toType and the
	// exhaustiveness analyzer's enum signatures rely on.
	Equal(other Type) bool
}

// BaseKind enumerates the scalar type tags.
type BaseKind int

const (
	TInt BaseKind = iota
	TDouble
	TText
	TTime
	TWord16
	TWord32
	TWord64
)

func (k BaseKind) String() string {
	switch k {
	case TInt:
		return "Int"
	case TDouble:
		return "Double"
	case TText:
		return "Text"
	case TTime:
		return "Time"
	case TWord16:
		return "Word16"
	case TWord32:
		return "Word32"
	case TWord64:
		return "Word64"
	default:
		return "?base"
	}
}

// TBase is a scalar base type.
type TBase struct{ Kind BaseKind }

func (t TBase) String() string { return t.Kind.String() }
func (t TBase) Equal(other Type) bool {
	o, ok := other.(TBase)
	return ok && o.Kind == t.Kind
}

// TVar is an unresolved type variable. It only appears in schemes the
// external inferencer hands back; the evaluator never dispatches on one
// directly (every numeric literal is re-witnessed with a concrete TBase
// by the time it reaches eval, per spec.md §4.1).
type TVar struct{ Name string }

func (t TVar) String() string {
	if config.IsTestMode || config.IsLSPMode {
		if strings.HasPrefix(t.Name, "t") {
			if _, err := fmt.Sscanf(t.Name[1:], "%d", new(int)); err == nil {
				return "t?"
			}
		}
	}
	return t.Name
}

func (t TVar) Equal(other Type) bool {
	o, ok := other.(TVar)
	return ok && o.Name == t.Name
}

// TEnum is a nominal enum type. Owner is the content-addressed hash that
// disambiguates identically named constructors across distinct enum
// declarations (the "enum hash" of the GLOSSARY).
type TEnum struct {
	Owner        string
	Name         string
	Constructors []string
}

func (t TEnum) String() string { return t.Name }
func (t TEnum) Equal(other Type) bool {
	o, ok := other.(TEnum)
	return ok && o.Owner == t.Owner
}

// TArrow is a function type, always unary at this level: currying is
// expressed by nesting (A -> B -> C is TArrow{A, TArrow{B, C}}).
type TArrow struct {
	From Type
	To   Type
}

func (t TArrow) String() string {
	from := t.From.String()
	if _, ok := t.From.(TArrow); ok {
		from = "(" + from + ")"
	}
	return from + " -> " + t.To.String()
}

func (t TArrow) Equal(other Type) bool {
	o, ok := other.(TArrow)
	return ok && t.From.Equal(o.From) && t.To.Equal(o.To)
}

// TArray is a homogeneous array type.
type TArray struct{ Elem Type }

func (t TArray) String() string { return "[" + t.Elem.String() + "]" }
func (t TArray) Equal(other Type) bool {
	o, ok := other.(TArray)
	return ok && t.Elem.Equal(o.Elem)
}

// TOptional is the one-or-empty optional type.
type TOptional struct{ Elem Type }

func (t TOptional) String() string { return t.Elem.String() + "?" }
func (t TOptional) Equal(other Type) bool {
	o, ok := other.(TOptional)
	return ok && t.Elem.Equal(o.Elem)
}

// TTuple is a fixed-arity product type. spec.md §3 describes tuples as a
// "type list" terminated by TNil; Elements is that list flattened into a
// slice, which is an equivalent and simpler representation for a type
// with no structural recursion over the list (every consumer in this
// module wants random access by position, not head/tail peeling).
type TTuple struct{ Elements []Type }

func (t TTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TTuple) Equal(other Type) bool {
	if _, isNil := other.(TNil); isNil {
		return len(t.Elements) == 0
	}
	o, ok := other.(TTuple)
	if !ok || len(o.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// TNil is the empty tuple type, i.e. unit. Kept as a distinct term (rather
// than TTuple{nil}) so the "type list terminated by TNil" wording of
// spec.md §3 has a literal home; TTuple{} and TNil{} are Equal to each
// other since both denote unit.
type TNil struct{}

func (t TNil) String() string { return "()" }
func (t TNil) Equal(other Type) bool {
	switch o := other.(type) {
	case TNil:
		return true
	case TTuple:
		return len(o.Elements) == 0
	}
	return false
}
