package prelude

import (
	"github.com/corelang/funl/internal/langerr"
	"github.com/corelang/funl/internal/types"
	"github.com/corelang/funl/internal/value"
)

// wordKind tags which Word size a VWord16/32/64 carries, so a binary bit
// operation can check both operands share one before combining them.
type wordKind int

const (
	wordNone wordKind = iota
	word16
	word32
	word64
)

func asWord(v value.V) (kind wordKind, bits uint64) {
	switch w := v.(type) {
	case value.VWord16:
		return word16, uint64(w.W)
	case value.VWord32:
		return word32, uint64(w.W)
	case value.VWord64:
		return word64, w.W
	}
	return wordNone, 0
}

func wordResult(kind wordKind, bits uint64) value.V {
	switch kind {
	case word16:
		return value.VWord16{W: uint16(bits)}
	case word32:
		return value.VWord32{W: uint32(bits)}
	default:
		return value.VWord64{W: bits}
	}
}

func installBits(add adder) {
	bitOp := func(name string, op func(a, b uint64) uint64) value.VFun {
		return binaryVFun(name, func(a, b value.V) (value.V, error) {
			ka, ba := asWord(a)
			kb, bb := asWord(b)
			if ka == wordNone || ka != kb {
				return nil, langerr.NewRuntimeError("%s: operands are not matching Word types", name)
			}
			return wordResult(ka, op(ba, bb)), nil
		})
	}

	word := types.TBase{Kind: types.TWord64}
	arrow := types.TArrow{From: word, To: types.TArrow{From: word, To: word}}

	add("Bits", "and", arrow, bitOp("Bits.and", func(a, b uint64) uint64 { return a & b }))
	add("Bits", "or", arrow, bitOp("Bits.or", func(a, b uint64) uint64 { return a | b }))
	add("Bits", "xor", arrow, bitOp("Bits.xor", func(a, b uint64) uint64 { return a ^ b }))

	add("Bits", "not", types.TArrow{From: word, To: word}, unaryVFun("Bits.not", func(v value.V) (value.V, error) {
		k, b := asWord(v)
		if k == wordNone {
			return nil, langerr.NewRuntimeError("Bits.not: operand is not a Word type")
		}
		switch k {
		case word16:
			return value.VWord16{W: ^uint16(b)}, nil
		case word32:
			return value.VWord32{W: ^uint32(b)}, nil
		default:
			return value.VWord64{W: ^b}, nil
		}
	}))
}
