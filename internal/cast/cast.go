// Package cast implements the Cast bridge of spec.md §4.2: the bidirectional
// ToValue/FromValue relation between a host Go type and value.V, plus the
// ToType descriptor Cast.toType needs to advertise a host type to the
// inferencer-facing side of the pipeline.
//
// Go generics give this a natural, type-safe shape: Cast[A] is the
// (toValue, fromValue, toType) triple spec.md §4.2 describes, parameterized
// over the host type A rather than over a Proxy value (the teacher's
// funxy has no equivalent — this concern is grounded directly in spec.md,
// generalizing the teacher's evaluator.Object boxing pattern to a
// strongly-typed two-way bridge using the language feature Go itself
// offers for it).
package cast

import (
	"fmt"
	"math"
	"time"

	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

// Cast is the two-way bridge between host type A and V, plus its type
// descriptor.
type Cast[A any] struct {
	ToValue   func(a A) value.V
	FromValue func(v value.V) (A, error)
	TypeOf    func() types.Type
}

func wrongShape(v value.V, target string) error {
	return langerr.NewCastError(fmt.Sprintf("%T(%s)", v, v.Pretty()), target)
}

// Int is the bridge for host int64.
var Int = Cast[int64]{
	ToValue: func(a int64) value.V { return value.VInt{I: a} },
	FromValue: func(v value.V) (int64, error) {
		iv, ok := v.(value.VInt)
		if !ok {
			return 0, wrongShape(v, "Int")
		}
		return iv.I, nil
	},
	TypeOf: func() types.Type { return types.TBase{Kind: types.TInt} },
}

// HostInt is the bridge for Go's platform-sized int, which requires an
// i64-bounds range check before narrowing (spec.md §4.2: "Int (host-sized)
// must range-check against i64 bounds before converting; out-of-range is a
// cast error" — read the other direction here, since int64 is always the
// wider type on every platform Go supports).
var HostInt = Cast[int]{
	ToValue: func(a int) value.V { return value.VInt{I: int64(a)} },
	FromValue: func(v value.V) (int, error) {
		iv, ok := v.(value.VInt)
		if !ok {
			return 0, wrongShape(v, "Int")
		}
		if iv.I < math.MinInt || iv.I > math.MaxInt {
			return 0, langerr.NewCastError(fmt.Sprintf("VInt(%d)", iv.I), "host Int")
		}
		return int(iv.I), nil
	},
	TypeOf: func() types.Type { return types.TBase{Kind: types.TInt} },
}

// Double is the bridge for host float64.
var Double = Cast[float64]{
	ToValue: func(a float64) value.V { return value.VDouble{F: a} },
	FromValue: func(v value.V) (float64, error) {
		dv, ok := v.(value.VDouble)
		if !ok {
			return 0, wrongShape(v, "Double")
		}
		return dv.F, nil
	},
	TypeOf: func() types.Type { return types.TBase{Kind: types.TDouble} },
}

// Text is the bridge for host string.
var Text = Cast[string]{
	ToValue: func(a string) value.V { return value.VText{S: a} },
	FromValue: func(v value.V) (string, error) {
		tv, ok := v.(value.VText)
		if !ok {
			return "", wrongShape(v, "Text")
		}
		return tv.S, nil
	},
	TypeOf: func() types.Type { return types.TBase{Kind: types.TText} },
}

// Word16/Word32/Word64 are the bridges for fixed-width unsigned words.
var Word16 = Cast[uint16]{
	ToValue:   func(a uint16) value.V { return value.VWord16{W: a} },
	FromValue: func(v value.V) (uint16, error) { w, ok := v.(value.VWord16); if !ok { return 0, wrongShape(v, "Word16") }; return w.W, nil },
	TypeOf:    func() types.Type { return types.TBase{Kind: types.TWord16} },
}

var Word32 = Cast[uint32]{
	ToValue:   func(a uint32) value.V { return value.VWord32{W: a} },
	FromValue: func(v value.V) (uint32, error) { w, ok := v.(value.VWord32); if !ok { return 0, wrongShape(v, "Word32") }; return w.W, nil },
	TypeOf:    func() types.Type { return types.TBase{Kind: types.TWord32} },
}

var Word64 = Cast[uint64]{
	ToValue:   func(a uint64) value.V { return value.VWord64{W: a} },
	FromValue: func(v value.V) (uint64, error) { w, ok := v.(value.VWord64); if !ok { return 0, wrongShape(v, "Word64") }; return w.W, nil },
	TypeOf:    func() types.Type { return types.TBase{Kind: types.TWord64} },
}

// Bool bridges host bool to the language's Bool enum. Any other enum or
// shape is a cast error (spec.md §4.2).
var Bool = Cast[bool]{
	ToValue: func(a bool) value.V {
		if a {
			return value.True
		}
		return value.False
	},
	FromValue: func(v value.V) (bool, error) {
		b, ok := value.IsBool(v)
		if !ok {
			return false, wrongShape(v, "Bool")
		}
		return b, nil
	},
	TypeOf: func() types.Type {
		return types.TEnum{Owner: value.BoolHash, Name: "Bool", Constructors: []string{"true", "false"}}
	},
}

// Time bridges host time.Time to VEpochTime (seconds since the standard
// epoch, per spec.md §6).
var Time = Cast[time.Time]{
	ToValue: func(a time.Time) value.V { return value.VEpochTime{Seconds: a.Unix()} },
	FromValue: func(v value.V) (time.Time, error) {
		ev, ok := v.(value.VEpochTime)
		if !ok {
			return time.Time{}, wrongShape(v, "Time")
		}
		return time.Unix(ev.Seconds, 0).UTC(), nil
	},
	TypeOf: func() types.Type { return types.TBase{Kind: types.TTime} },
}

// Unit bridges host struct{} to the empty tuple, spec.md §4.2's "unit as
// empty tuple".
var Unit = Cast[struct{}]{
	ToValue:   func(struct{}) value.V { return value.VTuple{} },
	FromValue: func(v value.V) (struct{}, error) {
		t, ok := v.(value.VTuple)
		if !ok || len(t.Elems) != 0 {
			return struct{}{}, wrongShape(v, "()")
		}
		return struct{}{}, nil
	},
	TypeOf: func() types.Type { return types.TNil{} },
}

// Array builds the bridge for []A from the bridge for A.
func Array[A any](elem Cast[A]) Cast[[]A] {
	return Cast[[]A]{
		ToValue: func(a []A) value.V {
			elems := make([]value.V, len(a))
			for i, e := range a {
				elems[i] = elem.ToValue(e)
			}
			return value.VArray{Elems: elems}
		},
		FromValue: func(v value.V) ([]A, error) {
			av, ok := v.(value.VArray)
			if !ok {
				return nil, wrongShape(v, "Array")
			}
			out := make([]A, len(av.Elems))
			for i, e := range av.Elems {
				a, err := elem.FromValue(e)
				if err != nil {
					return nil, err
				}
				out[i] = a
			}
			return out, nil
		},
		TypeOf: func() types.Type { return types.TArray{Elem: elem.TypeOf()} },
	}
}

// Option is the host-side representation of an optional value, avoiding a
// nil-able pointer so FromValue/ToValue stay total functions.
type Option[A any] struct {
	Present bool
	Value   A
}

// Optional builds the bridge for Option[A] from the bridge for A.
func Optional[A any](elem Cast[A]) Cast[Option[A]] {
	return Cast[Option[A]]{
		ToValue: func(a Option[A]) value.V {
			if !a.Present {
				return value.VEmpty{}
			}
			return value.VOne{Elem: elem.ToValue(a.Value)}
		},
		FromValue: func(v value.V) (Option[A], error) {
			switch vv := v.(type) {
			case value.VEmpty:
				return Option[A]{}, nil
			case value.VOne:
				a, err := elem.FromValue(vv.Elem)
				if err != nil {
					return Option[A]{}, err
				}
				return Option[A]{Present: true, Value: a}, nil
			default:
				return Option[A]{}, wrongShape(v, "Option")
			}
		},
		TypeOf: func() types.Type { return types.TOptional{Elem: elem.TypeOf()} },
	}
}

// eitherHash tags the built-in two-constructor Either enum used to select
// between Left and Right, the same way value.BoolHash tags Bool: Either
// is a language primitive, not a user-declared VCObject enum.
const eitherHash = "either#builtin"

// Either is the host-side representation of a sum value.
type Either[L, R any] struct {
	IsLeft bool
	Left   L
	Right  R
}

// Sum builds the bridge for Either[L, R]. It is encoded on the wire as a
// 2-element VTuple of (selector enum, payload) since V has no dedicated
// sum-with-payload variant — Left/Right select which side's Cast decodes
// the payload slot.
func Sum[L, R any](left Cast[L], right Cast[R]) Cast[Either[L, R]] {
	return Cast[Either[L, R]]{
		ToValue: func(a Either[L, R]) value.V {
			if a.IsLeft {
				return value.VTuple{Elems: []value.V{
					value.VEnum{OwnerHash: eitherHash, Constructor: "Left"},
					left.ToValue(a.Left),
				}}
			}
			return value.VTuple{Elems: []value.V{
				value.VEnum{OwnerHash: eitherHash, Constructor: "Right"},
				right.ToValue(a.Right),
			}}
		},
		FromValue: func(v value.V) (Either[L, R], error) {
			t, ok := v.(value.VTuple)
			if !ok || len(t.Elems) != 2 {
				return Either[L, R]{}, wrongShape(v, "Either")
			}
			tag, ok := t.Elems[0].(value.VEnum)
			if !ok || tag.OwnerHash != eitherHash {
				return Either[L, R]{}, wrongShape(v, "Either")
			}
			switch tag.Constructor {
			case "Left":
				l, err := left.FromValue(t.Elems[1])
				if err != nil {
					return Either[L, R]{}, err
				}
				return Either[L, R]{IsLeft: true, Left: l}, nil
			case "Right":
				r, err := right.FromValue(t.Elems[1])
				if err != nil {
					return Either[L, R]{}, err
				}
				return Either[L, R]{Right: r}, nil
			default:
				return Either[L, R]{}, wrongShape(v, "Either")
			}
		},
		TypeOf: func() types.Type {
			// Represented to the inferencer as a 2-tuple of (tag, either payload type);
			// the payload's concrete type depends on the selector, so this reports the
			// left projection, matching how a host binding would declare its Funxy type
			// signature for the common case of a homogeneous-ish Either usage.
			return types.TTuple{Elements: []types.Type{
				types.TEnum{Owner: eitherHash, Name: "Either", Constructors: []string{"Left", "Right"}},
				left.TypeOf(),
			}}
		},
	}
}

// Func builds the bridge for a curried host function A -> B: the produced
// VFun coerces its argument with arg.FromValue and its result with
// ret.ToValue (spec.md §4.2).
func Func[A, B any](arg Cast[A], ret Cast[B], host func(A) B) value.VFun {
	return value.VFun{
		Call: func(v value.V) (value.V, error) {
			a, err := arg.FromValue(v)
			if err != nil {
				return nil, err
			}
			return ret.ToValue(host(a)), nil
		},
	}
}

// FuncErr is Func's variant for a host function that can itself fail,
// surfacing the failure as a RuntimeError.
func FuncErr[A, B any](arg Cast[A], ret Cast[B], host func(A) (B, error)) value.VFun {
	return value.VFun{
		Call: func(v value.V) (value.V, error) {
			a, err := arg.FromValue(v)
			if err != nil {
				return nil, err
			}
			b, err := host(a)
			if err != nil {
				return nil, langerr.NewRuntimeError("%s", err.Error())
			}
			return ret.ToValue(b), nil
		},
	}
}

// ImplicitLookup resolves a labelled implicit parameter from the current
// implicit environment at call time. It is supplied by the evaluator (the
// only component that knows the "current" implicit scope, per spec.md §9
// Design Note 2's task-local-state option), keeping this package decoupled
// from internal/eval.
type ImplicitLookup func(label string) (value.V, bool)

// Implicit builds an ImplicitCast value (spec.md §4.2): a VFun that, on
// invocation, looks label up via lookup, coerces it with arg, and
// delegates to host. The invocation argument itself is ignored — an
// implicit-cast function's real input comes from the implicit
// environment, not from App's explicit argument, so conventionally it is
// applied to the unit value.
func Implicit[A, B any](label string, arg Cast[A], ret Cast[B], host func(A) B, lookup ImplicitLookup) value.VFun {
	return value.VFun{
		Name: "?" + label,
		Call: func(value.V) (value.V, error) {
			raw, ok := lookup(label)
			if !ok {
				return nil, langerr.NewNotFoundInImplicitEnv(label)
			}
			a, err := arg.FromValue(raw)
			if err != nil {
				return nil, err
			}
			return ret.ToValue(host(a)), nil
		},
	}
}
