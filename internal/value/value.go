// Package value implements V, the tagged runtime value sum type of
// spec.md §3, and the three environments the evaluator threads through a
// tree-walk (lexical, pinned, implicit). Values are created by the
// evaluator and live only within one evaluation; nothing here persists
// state between requests (spec.md §1 Non-goals).
package value

import (
	"fmt"

	"github.com/corelang/funl/internal/types"
)

// V is any runtime value. Concrete variants are the structs below;
// callers type-switch on the concrete type rather than on
// a Kind() tag, matching how a closed sum type is idiomatically modeled
// in Go (cf. the teacher's evaluator.Object interface, which instead uses
// an ObjectType string tag for funxy's much larger open-ended value set;
// our set is closed and small enough that a type switch reads better).
type V interface {
	// Pretty renders the canonical, observable form of spec.md §9: hex
	// words as "0x"+hex, functions as "<<function>>", epoch times with a
	// trailing "s", options as "Some v" / "None".
	Pretty() string
}

// VInt is a 64-bit signed integer.
type VInt struct{ I int64 }

func (v VInt) Pretty() string { return fmt.Sprintf("%d", v.I) }

// VDouble is a 64-bit float.
type VDouble struct{ F float64 }

func (v VDouble) Pretty() string { return fmt.Sprintf("%g", v.F) }

// VWord16/32/64 are fixed-width unsigned words, pretty-printed in hex.
type VWord16 struct{ W uint16 }
type VWord32 struct{ W uint32 }
type VWord64 struct{ W uint64 }

func (v VWord16) Pretty() string { return fmt.Sprintf("0x%x", v.W) }
func (v VWord32) Pretty() string { return fmt.Sprintf("0x%x", v.W) }
func (v VWord64) Pretty() string { return fmt.Sprintf("0x%x", v.W) }

// VEpochTime is seconds since the standard epoch.
type VEpochTime struct{ Seconds int64 }

func (v VEpochTime) Pretty() string { return fmt.Sprintf("%ds", v.Seconds) }

// VText is a text value.
type VText struct{ S string }

func (v VText) Pretty() string { return v.S }

// VEnum is an enum constructor value, tagged with the content address of
// the enum declaration that owns it (the "enum hash" of the GLOSSARY).
type VEnum struct {
	OwnerHash   string
	Constructor string
}

func (v VEnum) Pretty() string { return v.Constructor }

// BoolHash is the well-known owner hash of the built-in Bool enum that
// `if`, `assert`, and comprehension guards all check against (spec.md
// §4.1). It is a fixed sentinel, not a real VCObject hash, since Bool is
// a language primitive rather than a pinned, versioned declaration.
const BoolHash = "bool#builtin"

// True and False are the two Bool enum values every `if`/`assert`/guard
// compares against.
var True = VEnum{OwnerHash: BoolHash, Constructor: "true"}
var False = VEnum{OwnerHash: BoolHash, Constructor: "false"}

// IsBool reports whether v is the Bool enum, returning its truth value.
func IsBool(v V) (bool, bool) {
	e, ok := v.(VEnum)
	if !ok || e.OwnerHash != BoolHash {
		return false, false
	}
	return e.Constructor == "true", true
}

// VArray is a homogeneous (in principle) ordered collection.
type VArray struct{ Elems []V }

func (v VArray) Pretty() string {
	out := "["
	for i, e := range v.Elems {
		if i > 0 {
			out += ", "
		}
		out += e.Pretty()
	}
	return out + "]"
}

// VTuple is a fixed-arity heterogeneous product.
type VTuple struct{ Elems []V }

func (v VTuple) Pretty() string {
	out := "("
	for i, e := range v.Elems {
		if i > 0 {
			out += ", "
		}
		out += e.Pretty()
	}
	return out + ")"
}

// VOne is the present case of an optional value.
type VOne struct{ Elem V }

func (v VOne) Pretty() string { return "Some " + v.Elem.Pretty() }

// VEmpty is the absent case of an optional value.
type VEmpty struct{}

func (v VEmpty) Pretty() string { return "None" }

// Callable is a function value's invoke method: a closure over the
// implicit-environment monad, returning a value or a structured error
// (spec.md §9 Design Note 1). It is a plain function type rather than an
// interface with one method, since nothing else needs to implement it.
type Callable func(arg V) (V, error)

// VFun is a function value. Name is optional metadata used only for
// pretty-printing diagnostics (e.g. naming a prelude operator in an error
// message); it never appears in Pretty()'s output, which is always
// "<<function>>" regardless of Name, per spec.md §9.
type VFun struct {
	Call Callable
	Name string
}

func (v VFun) Pretty() string { return "<<function>>" }

// VTypeRep carries a runtime type descriptor, used by the evaluator to
// dispatch polymorphic numeric literals (spec.md §4.1) and by Cast's
// toType.
type VTypeRep struct{ T types.Type }

func (v VTypeRep) Pretty() string { return v.T.String() }

// VCustom wraps an opaque host value that does not fit any other V
// variant. The host is responsible for giving it a Pretty() rendering via
// the Render field; a nil Render falls back to fmt's default verb.
type VCustom struct {
	User   interface{}
	Render func(interface{}) string
}

func (v VCustom) Pretty() string {
	if v.Render != nil {
		return v.Render(v.User)
	}
	return fmt.Sprintf("%v", v.User)
}
