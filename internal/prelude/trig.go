package prelude

import (
	"math"

	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

func installTrig(add adder) {
	unaryDouble := func(name string, op func(float64) float64) value.VFun {
		return unaryVFun(name, func(v value.V) (value.V, error) {
			d, ok := v.(value.VDouble)
			if !ok {
				return nil, langerr.NewRuntimeError("%s: operand is not a Double", name)
			}
			return value.VDouble{F: op(d.F)}, nil
		})
	}

	doubleArrow := types.TArrow{From: types.TBase{Kind: types.TDouble}, To: types.TBase{Kind: types.TDouble}}

	add("Math", "sin", doubleArrow, unaryDouble("Math.sin", math.Sin))
	add("Math", "cos", doubleArrow, unaryDouble("Math.cos", math.Cos))
	add("Math", "tan", doubleArrow, unaryDouble("Math.tan", math.Tan))
	add("Math", "sqrt", doubleArrow, unaryDouble("Math.sqrt", math.Sqrt))
	add("Math", "exp", doubleArrow, unaryDouble("Math.exp", math.Exp))
	add("Math", "log", doubleArrow, unaryDouble("Math.log", math.Log))
	add("Math", "floor", doubleArrow, unaryDouble("Math.floor", math.Floor))
	add("Math", "ceil", doubleArrow, unaryDouble("Math.ceil", math.Ceil))

	add("Math", "pi", types.TBase{Kind: types.TDouble}, value.VDouble{F: math.Pi})
}
