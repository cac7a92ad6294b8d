package prelude

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

func installTime(add adder) {
	timeT := types.TBase{Kind: types.TTime}
	intT := types.TBase{Kind: types.TInt}

	add("Time", "addSeconds", types.TArrow{From: timeT, To: types.TArrow{From: intT, To: timeT}},
		binaryVFun("Time.addSeconds", func(a, b value.V) (value.V, error) {
			t, ok := a.(value.VEpochTime)
			if !ok {
				return nil, langerr.NewRuntimeError("Time.addSeconds: first argument is not a CTime")
			}
			n, ok := b.(value.VInt)
			if !ok {
				return nil, langerr.NewRuntimeError("Time.addSeconds: second argument is not an Int")
			}
			return value.VEpochTime{Seconds: t.Seconds + n.I}, nil
		}))

	add("Time", "diffSeconds", types.TArrow{From: timeT, To: types.TArrow{From: timeT, To: intT}},
		binaryVFun("Time.diffSeconds", func(a, b value.V) (value.V, error) {
			ta, ok := a.(value.VEpochTime)
			if !ok {
				return nil, langerr.NewRuntimeError("Time.diffSeconds: first argument is not a CTime")
			}
			tb, ok := b.(value.VEpochTime)
			if !ok {
				return nil, langerr.NewRuntimeError("Time.diffSeconds: second argument is not a CTime")
			}
			return value.VInt{I: ta.Seconds - tb.Seconds}, nil
		}))
}
