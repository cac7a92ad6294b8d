package prelude

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

func installOption(add adder) {
	elemT := types.TVar{Name: "a"}
	optT := types.TOptional{Elem: elemT}

	add("Option", "fromOption", types.TArrow{From: elemT, To: types.TArrow{From: optT, To: elemT}},
		binaryVFun("Option.fromOption", func(def, opt value.V) (value.V, error) {
			switch o := opt.(type) {
			case value.VOne:
				return o.Elem, nil
			case value.VEmpty:
				return def, nil
			default:
				return nil, langerr.NewRuntimeError("Option.fromOption: second argument is not an Option")
			}
		}))

	add("Option", "isSome", types.TArrow{From: optT, To: types.TEnum{Owner: value.BoolHash, Name: "Bool", Constructors: []string{"false", "true"}}},
		unaryVFun("Option.isSome", func(v value.V) (value.V, error) {
			switch v.(type) {
			case value.VOne:
				return value.True, nil
			case value.VEmpty:
				return value.False, nil
			default:
				return nil, langerr.NewRuntimeError("Option.isSome: operand is not an Option")
			}
		}))

	add("Option", "map", types.TArrow{From: types.TArrow{From: elemT, To: elemT}, To: types.TArrow{From: optT, To: optT}},
		value.VFun{Name: "Option.map", Call: func(fnV value.V) (value.V, error) {
			fn, ok := fnV.(value.VFun)
			if !ok {
				return nil, langerr.NewRuntimeError("Option.map: first argument is not a function")
			}
			return value.VFun{Name: "Option.map", Call: func(opt value.V) (value.V, error) {
				switch o := opt.(type) {
				case value.VOne:
					v, err := fn.Call(o.Elem)
					if err != nil {
						return nil, err
					}
					return value.VOne{Elem: v}, nil
				case value.VEmpty:
					return value.VEmpty{}, nil
				default:
					return nil, langerr.NewRuntimeError("Option.map: second argument is not an Option")
				}
			}}, nil
		}})
}
