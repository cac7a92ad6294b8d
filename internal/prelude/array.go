package prelude

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

func installArray(add adder) {
	elemT := types.TVar{Name: "a"}
	arrT := types.TArray{Elem: elemT}

	add("Array", "reduce", types.TArrow{From: types.TArrow{From: elemT, To: types.TArrow{From: elemT, To: elemT}},
		To: types.TArrow{From: elemT, To: types.TArrow{From: arrT, To: elemT}}},
		value.VFun{Name: "Array.reduce", Call: func(fnV value.V) (value.V, error) {
			fn, ok := fnV.(value.VFun)
			if !ok {
				return nil, langerr.NewRuntimeError("Array.reduce: first argument is not a function")
			}
			return value.VFun{Name: "Array.reduce", Call: func(zero value.V) (value.V, error) {
				return value.VFun{Name: "Array.reduce", Call: func(arrV value.V) (value.V, error) {
					arr, ok := arrV.(value.VArray)
					if !ok {
						return nil, langerr.NewRuntimeError("Array.reduce: third argument is not an array")
					}
					acc := zero
					for _, elem := range arr.Elems {
						step, err := fn.Call(acc)
						if err != nil {
							return nil, err
						}
						stepFn, ok := step.(value.VFun)
						if !ok {
							return nil, langerr.NewRuntimeError("Array.reduce: reducer is not a binary function")
						}
						acc, err = stepFn.Call(elem)
						if err != nil {
							return nil, err
						}
					}
					return acc, nil
				}}, nil
			}}, nil
		}})

	add("Array", "map", types.TArrow{From: types.TArrow{From: elemT, To: elemT}, To: types.TArrow{From: arrT, To: arrT}},
		value.VFun{Name: "Array.map", Call: func(fnV value.V) (value.V, error) {
			fn, ok := fnV.(value.VFun)
			if !ok {
				return nil, langerr.NewRuntimeError("Array.map: first argument is not a function")
			}
			return value.VFun{Name: "Array.map", Call: func(arrV value.V) (value.V, error) {
				arr, ok := arrV.(value.VArray)
				if !ok {
					return nil, langerr.NewRuntimeError("Array.map: second argument is not an array")
				}
				out := make([]value.V, len(arr.Elems))
				for i, elem := range arr.Elems {
					v, err := fn.Call(elem)
					if err != nil {
						return nil, err
					}
					out[i] = v
				}
				return value.VArray{Elems: out}, nil
			}}, nil
		}})

	add("Array", "range", types.TArrow{From: types.TBase{Kind: types.TInt}, To: types.TArrow{From: types.TBase{Kind: types.TInt}, To: types.TArray{Elem: types.TBase{Kind: types.TInt}}}},
		binaryVFun("Array.range", func(a, b value.V) (value.V, error) {
			ai, ok1 := a.(value.VInt)
			bi, ok2 := b.(value.VInt)
			if !ok1 || !ok2 {
				return nil, langerr.NewRuntimeError("Array.range: bounds are not Int")
			}
			var elems []value.V
			for n := ai.I; n <= bi.I; n++ {
				elems = append(elems, value.VInt{I: n})
			}
			return value.VArray{Elems: elems}, nil
		}))

	add("Array", "length", types.TArrow{From: arrT, To: types.TBase{Kind: types.TInt}},
		unaryVFun("Array.length", func(v value.V) (value.V, error) {
			arr, ok := v.(value.VArray)
			if !ok {
				return nil, langerr.NewRuntimeError("Array.length: operand is not an array")
			}
			return value.VInt{I: int64(len(arr.Elems))}, nil
		}))
}
