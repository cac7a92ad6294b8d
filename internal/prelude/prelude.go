// Package prelude installs the arithmetic, trig, bit, array, time, text
// and option operations spec.md §4.1 describes as "not primitive in the
// evaluator": VFuns pre-installed in a Pinned environment P and reached
// through the ordinary variable/operator mechanism. The evaluator makes
// no assumption about their internals beyond the Cast-advertised
// argument/return shapes.
package prelude

import (
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

// Entry is one module-scoped binding, surfaced to the host as a
// (Type, Value) pair (spec.md §6: "Prelude: consumed as a ModuleMap").
type Entry struct {
	Type  types.Type
	Value value.V
}

// ModuleMap is keyed by module name, then by identifier.
type ModuleMap map[string]map[string]Entry

// hashOf is the stable pinned-hash naming scheme used for every prelude
// binding: "<module>.<name>", or the bare name for root-module ("")
// bindings, mirroring how the evaluator's Case/VarPinned
// nodes expect a resolvable hash (spec.md §4.1, §4.4's "builtin" pin kind).
func hashOf(module, name string) string {
	if module == "" {
		return name
	}
	return module + "." + name
}

// Build constructs the pinned environment and the parallel ModuleMap the
// host consumes, populating both from the same binding list so they can
// never drift apart.
func Build() (*value.Pinned, ModuleMap) {
	pinned := value.NewPinned()
	modules := make(ModuleMap)

	add := func(module, name string, t types.Type, v value.V) {
		pinned.Set(hashOf(module, name), v)
		if _, ok := modules[module]; !ok {
			modules[module] = make(map[string]Entry)
		}
		modules[module][name] = Entry{Type: t, Value: v}
	}

	installBool(add)
	installArith(add)
	installCompare(add)
	installTrig(add)
	installBits(add)
	installArray(add)
	installTime(add)
	installText(add)
	installOption(add)

	return pinned, modules
}

// EnumSigs returns the enum-owner-hash -> constructor-tag signature table
// for the enums this package owns (currently just bool), for use by
// internal/exhaustiveness's isCompleteSignature.
func EnumSigs() map[string][]string {
	return map[string][]string{
		value.BoolHash: {"false", "true"},
	}
}

type adder func(module, name string, t types.Type, v value.V)

func installBool(add adder) {
	add("", "true", types.TEnum{Owner: value.BoolHash, Name: "Bool", Constructors: []string{"false", "true"}}, value.True)
	add("", "false", types.TEnum{Owner: value.BoolHash, Name: "Bool", Constructors: []string{"false", "true"}}, value.False)
}

func binaryVFun(name string, call func(a, b value.V) (value.V, error)) value.VFun {
	return value.VFun{
		Name: name,
		Call: func(a value.V) (value.V, error) {
			return value.VFun{
				Name: name,
				Call: func(b value.V) (value.V, error) {
					return call(a, b)
				},
			}, nil
		},
	}
}

func unaryVFun(name string, call func(a value.V) (value.V, error)) value.VFun {
	return value.VFun{Name: name, Call: call}
}
