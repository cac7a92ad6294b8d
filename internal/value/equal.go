package value

// Equal implements the structural equality of spec.md §3: every
// non-function variant compares structurally; VFun is never equal to
// anything, including another VFun (spec.md §9 Design Note 1 / Open
// Question 3), which is the language's `==` on functions rather than an
// accident of this implementation.
func Equal(a, b V) bool {
	switch av := a.(type) {
	case VInt:
		bv, ok := b.(VInt)
		return ok && av.I == bv.I
	case VDouble:
		bv, ok := b.(VDouble)
		return ok && av.F == bv.F
	case VWord16:
		bv, ok := b.(VWord16)
		return ok && av.W == bv.W
	case VWord32:
		bv, ok := b.(VWord32)
		return ok && av.W == bv.W
	case VWord64:
		bv, ok := b.(VWord64)
		return ok && av.W == bv.W
	case VEpochTime:
		bv, ok := b.(VEpochTime)
		return ok && av.Seconds == bv.Seconds
	case VText:
		bv, ok := b.(VText)
		return ok && av.S == bv.S
	case VEnum:
		bv, ok := b.(VEnum)
		return ok && av.OwnerHash == bv.OwnerHash && av.Constructor == bv.Constructor
	case VArray:
		bv, ok := b.(VArray)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case VTuple:
		bv, ok := b.(VTuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case VOne:
		bv, ok := b.(VOne)
		return ok && Equal(av.Elem, bv.Elem)
	case VEmpty:
		_, ok := b.(VEmpty)
		return ok
	case VFun:
		return false
	case VTypeRep:
		bv, ok := b.(VTypeRep)
		return ok && av.T.Equal(bv.T)
	case VCustom:
		if eq, ok := av.User.(interface{ EqualValue(interface{}) bool }); ok {
			bv, ok2 := b.(VCustom)
			return ok2 && eq.EqualValue(bv.User)
		}
		return false
	default:
		return false
	}
}
