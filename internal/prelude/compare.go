package prelude

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

func boolOf(b bool) value.V {
	if b {
		return value.True
	}
	return value.False
}

func installCompare(add adder) {
	arrow := func() types.Type {
		num := types.TBase{Kind: types.TInt}
		return types.TArrow{From: num, To: types.TArrow{From: num, To: types.TEnum{Owner: value.BoolHash, Name: "Bool", Constructors: []string{"false", "true"}}}}
	}

	cmp := func(name string, op func(a, b float64) bool) value.VFun {
		return binaryVFun(name, func(a, b value.V) (value.V, error) {
			af, bf, _, ok := numericPair(a, b)
			if !ok {
				return nil, langerr.NewRuntimeError("%s: operands are not numeric", name)
			}
			return boolOf(op(af, bf)), nil
		})
	}

	add("", "<", arrow(), cmp("<", func(a, b float64) bool { return a < b }))
	add("", ">", arrow(), cmp(">", func(a, b float64) bool { return a > b }))
	add("", "<=", arrow(), cmp("<=", func(a, b float64) bool { return a <= b }))
	add("", ">=", arrow(), cmp(">=", func(a, b float64) bool { return a >= b }))

	add("", "==", arrow(), binaryVFun("==", func(a, b value.V) (value.V, error) {
		return boolOf(value.Equal(a, b)), nil
	}))
	add("", "<>", arrow(), binaryVFun("<>", func(a, b value.V) (value.V, error) {
		return boolOf(!value.Equal(a, b)), nil
	}))
}
