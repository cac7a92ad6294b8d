package exhaustiveness

import "sort"

// EnumSigs maps an enum's owner hash to the full, ordered set of
// constructor tags it declares — the "enumSigs" of spec.md §4.3,
// supplied by the VCObject/prelude layer that knows every enum
// declaration's shape.
type EnumSigs map[string][]string

// specialize(c, P): for each row, if the head is C(c', rs) with c'==c,
// keep the row with rs prepended; if the head is W, prepend cSize(c)
// wildcards. Rows whose head is a different constructor are dropped.
func specialize(c Con, m Matrix) Matrix {
	out := make(Matrix, 0, len(m))
	for _, row := range m {
		if len(row) == 0 {
			continue // ill-formed row, per spec.md §4.3
		}
		head, rest := row[0], row[1:]
		switch {
		case head.Wildcard:
			newRow := make(Row, 0, c.Size()+len(rest))
			for i := 0; i < c.Size(); i++ {
				newRow = append(newRow, W())
			}
			newRow = append(newRow, rest...)
			out = append(out, newRow)
		case head.Con.Key() == c.Key():
			newRow := make(Row, 0, len(head.Sub)+len(rest))
			newRow = append(newRow, head.Sub...)
			newRow = append(newRow, rest...)
			out = append(out, newRow)
		}
	}
	return out
}

// defaultMatrix(P): drop rows whose head is a constructor; strip the head
// wildcard from the rest.
func defaultMatrix(m Matrix) Matrix {
	out := make(Matrix, 0, len(m))
	for _, row := range m {
		if len(row) == 0 {
			continue
		}
		if row[0].Wildcard {
			out = append(out, row[1:])
		}
	}
	return out
}

// col(P): the head pattern of every row.
func col(m Matrix) []Pat {
	heads := make([]Pat, 0, len(m))
	for _, row := range m {
		if len(row) > 0 {
			heads = append(heads, row[0])
		}
	}
	return heads
}

// conNames(ps): the set of constructors mentioned among ps, ignoring
// wildcards, deduplicated and returned in first-seen order.
func conNames(ps []Pat) []Con {
	seen := make(map[string]bool)
	out := make([]Con, 0, len(ps))
	for _, p := range ps {
		if p.Wildcard {
			continue
		}
		k := p.Con.Key()
		if !seen[k] {
			seen[k] = true
			out = append(out, p.Con)
		}
	}
	return out
}

// sigResult is the outcome of isCompleteSignature: either the signature S
// is complete, or it is missing at least one constructor, represented by
// witness (wildcardWitness when S itself is empty: spec.md §4.3's
// "{} -> Incomplete(W)").
type sigResult struct {
	complete        bool
	witness         Con
	wildcardWitness bool
}

// isCompleteSignature decides completeness of the constructor set S for
// the type implied by S's own members (spec.md §4.3). A CInf signature is
// always incomplete; its witness is a literal not in S, found by
// inferSuccessor.
func isCompleteSignature(enumSigs EnumSigs, s []Con) sigResult {
	if len(s) == 0 {
		return sigResult{wildcardWitness: true}
	}

	switch s[0].Kind {
	case COne, CEmpty:
		hasOne, hasEmpty := false, false
		for _, c := range s {
			switch c.Kind {
			case COne:
				hasOne = true
			case CEmpty:
				hasEmpty = true
			}
		}
		if hasOne && hasEmpty {
			return sigResult{complete: true}
		}
		if hasOne {
			return sigResult{witness: EmptyCon()}
		}
		return sigResult{witness: OneCon()}

	case CTuple:
		// The only constructor of a tuple type: always complete.
		return sigResult{complete: true}

	case CEnum:
		owner := s[0].OwnerHash
		full := enumSigs[owner]
		seen := make(map[string]bool, len(s))
		for _, c := range s {
			seen[c.Tag] = true
		}
		if len(seen) >= len(full) {
			return sigResult{complete: true}
		}
		missing := make([]string, 0, len(full)-len(seen))
		for _, tag := range full {
			if !seen[tag] {
				missing = append(missing, tag)
			}
		}
		sort.Strings(missing)
		return sigResult{witness: EnumCon(owner, missing[0])}

	case CInf:
		return sigResult{witness: inferSuccessor(s)}
	}

	return sigResult{wildcardWitness: true}
}
