package exhaustiveness

// isUseful decides whether q can match a value not already matched by
// any row of p (spec.md §4.3). Both p and q are assumed the same width;
// the recursion peels one column per call until the width reaches zero.
func isUseful(sigs EnumSigs, p Matrix, q Row) bool {
	if len(q) == 0 {
		// [] -> true (empty matrix is never covering); any row is empty -> false.
		return len(p) == 0
	}

	head, tail := q[0], q[1:]

	if !head.Wildcard {
		newP := specialize(head.Con, p)
		newQ := specialize(head.Con, Matrix{q})
		if len(newQ) == 0 {
			return false
		}
		return isUseful(sigs, newP, newQ[0])
	}

	sigma := conNames(col(p))
	sig := isCompleteSignature(sigs, sigma)
	if !sig.wildcardWitness && sig.complete {
		for _, c := range sigma {
			newP := specialize(c, p)
			newQ := specialize(c, Matrix{q})
			if len(newQ) == 0 {
				continue
			}
			if isUseful(sigs, newP, newQ[0]) {
				return true
			}
		}
		return false
	}

	return isUseful(sigs, defaultMatrix(p), tail)
}

// IsUseful is the exported entry point for isUseful.
func IsUseful(sigs EnumSigs, p Matrix, q Row) bool {
	return isUseful(sigs, p, q)
}

// exhaustive threads a single missing constructor into the inductive
// position as it unwinds, returning a witness row of length width when p
// does not cover every value, or (nil, true) when it does.
func exhaustive(sigs EnumSigs, p Matrix, width int) (Row, bool) {
	if width == 0 {
		if len(p) == 0 {
			return Row{}, false
		}
		return nil, true
	}

	sigma := conNames(col(p))
	sig := isCompleteSignature(sigs, sigma)

	if !sig.wildcardWitness && sig.complete {
		for _, c := range sigma {
			newP := specialize(c, p)
			newWidth := width - 1 + c.Size()
			sub, ok := exhaustive(sigs, newP, newWidth)
			if !ok {
				conSubs := append(Row{}, sub[:c.Size()]...)
				rest := sub[c.Size():]
				missing := append(Row{C(c, conSubs...)}, rest...)
				return missing, false
			}
		}
		return nil, true
	}

	sub, ok := exhaustive(sigs, defaultMatrix(p), width-1)
	if ok {
		return nil, true
	}

	var head Pat
	if sig.wildcardWitness {
		head = W()
	} else {
		subs := make([]Pat, sig.witness.Size())
		for i := range subs {
			subs[i] = W()
		}
		head = C(sig.witness, subs...)
	}
	missing := append(Row{head}, sub...)
	return missing, false
}

// Exhaustive is the exported entry point for exhaustive. width is the
// scrutinee's pattern arity (almost always 1, a single scrutinee column).
func Exhaustive(sigs EnumSigs, p Matrix, width int) (Row, bool) {
	return exhaustive(sigs, p, width)
}

// CheckUsefulness returns, for each row of p, -1 if the row is useful
// given the preceding rows, or the index of the earliest row that
// already covers it (spec.md §4.3).
func CheckUsefulness(sigs EnumSigs, p Matrix) []int {
	overlap := make([]int, len(p))
	for i := range overlap {
		overlap[i] = -1
	}
	for i := 1; i < len(p); i++ {
		if isUseful(sigs, p[:i], p[i]) {
			continue
		}
		for j := 0; j < i; j++ {
			if !isUseful(sigs, Matrix{p[j]}, p[i]) {
				overlap[i] = j
				break
			}
		}
		if overlap[i] == -1 {
			overlap[i] = 0
		}
	}
	return overlap
}
