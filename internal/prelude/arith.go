package prelude

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

// numericPair widens a and b to float64, reporting whether either is a
// VDouble. Both operands must be VInt or VDouble, otherwise ok is false.
func numericPair(a, b value.V) (af, bf float64, isDouble bool, ok bool) {
	ai, aIsInt := a.(value.VInt)
	ad, aIsDouble := a.(value.VDouble)
	bi, bIsInt := b.(value.VInt)
	bd, bIsDouble := b.(value.VDouble)

	if !(aIsInt || aIsDouble) || !(bIsInt || bIsDouble) {
		return 0, 0, false, false
	}
	isDouble = aIsDouble || bIsDouble
	if aIsInt {
		af = float64(ai.I)
	} else {
		af = ad.F
	}
	if bIsInt {
		bf = float64(bi.I)
	} else {
		bf = bd.F
	}
	return af, bf, isDouble, true
}

func numericResult(f float64, isDouble bool) value.V {
	if isDouble {
		return value.VDouble{F: f}
	}
	return value.VInt{I: int64(f)}
}

func installArith(add adder) {
	arithOp := func(name string, op func(a, b float64) float64) value.VFun {
		return binaryVFun(name, func(a, b value.V) (value.V, error) {
			af, bf, isDouble, ok := numericPair(a, b)
			if !ok {
				return nil, langerr.NewRuntimeError("%s: operands are not numeric", name)
			}
			return numericResult(op(af, bf), isDouble), nil
		})
	}

	arrow := func() types.Type {
		num := types.TBase{Kind: types.TInt}
		return types.TArrow{From: num, To: types.TArrow{From: num, To: num}}
	}

	add("", "+", arrow(), arithOp("+", func(a, b float64) float64 { return a + b }))
	add("", "-", arrow(), arithOp("-", func(a, b float64) float64 { return a - b }))
	add("", "*", arrow(), arithOp("*", func(a, b float64) float64 { return a * b }))
	add("", "/", arrow(), arithOp("/", func(a, b float64) float64 { return a / b }))
	add("", "max", arrow(), arithOp("max", func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}))
	add("", "min", arrow(), arithOp("min", func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	}))

	add("", "neg", types.TArrow{From: types.TBase{Kind: types.TInt}, To: types.TBase{Kind: types.TInt}},
		unaryVFun("neg", func(v value.V) (value.V, error) {
			switch n := v.(type) {
			case value.VInt:
				return value.VInt{I: -n.I}, nil
			case value.VDouble:
				return value.VDouble{F: -n.F}, nil
			default:
				return nil, langerr.NewRuntimeError("neg: operand is not numeric")
			}
		}))
}
