package prelude

import (
	"strings"

	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

func installText(add adder) {
	textT := types.TBase{Kind: types.TText}
	intT := types.TBase{Kind: types.TInt}

	add("Text", "concat", types.TArrow{From: textT, To: types.TArrow{From: textT, To: textT}},
		binaryVFun("Text.concat", func(a, b value.V) (value.V, error) {
			ta, ok := a.(value.VText)
			if !ok {
				return nil, langerr.NewRuntimeError("Text.concat: first argument is not Text")
			}
			tb, ok := b.(value.VText)
			if !ok {
				return nil, langerr.NewRuntimeError("Text.concat: second argument is not Text")
			}
			return value.VText{S: ta.S + tb.S}, nil
		}))

	add("Text", "length", types.TArrow{From: textT, To: intT},
		unaryVFun("Text.length", func(v value.V) (value.V, error) {
			t, ok := v.(value.VText)
			if !ok {
				return nil, langerr.NewRuntimeError("Text.length: operand is not Text")
			}
			return value.VInt{I: int64(len(t.S))}, nil
		}))

	add("Text", "toUpper", types.TArrow{From: textT, To: textT},
		unaryVFun("Text.toUpper", func(v value.V) (value.V, error) {
			t, ok := v.(value.VText)
			if !ok {
				return nil, langerr.NewRuntimeError("Text.toUpper: operand is not Text")
			}
			return value.VText{S: strings.ToUpper(t.S)}, nil
		}))

	add("Text", "toLower", types.TArrow{From: textT, To: textT},
		unaryVFun("Text.toLower", func(v value.V) (value.V, error) {
			t, ok := v.(value.VText)
			if !ok {
				return nil, langerr.NewRuntimeError("Text.toLower: operand is not Text")
			}
			return value.VText{S: strings.ToLower(t.S)}, nil
		}))
}
