package exhaustiveness

// inferSuccessor synthesizes a CInf witness known to be outside the
// encountered set s (spec.md §4.3/§9): it is a witness generator, not a
// semantic successor. For integers it walks 0, 1, 2, ... skipping values
// already in s; for text it doubles a string starting from "a" ("a",
// "aa", "aaaa", ...) skipping strings already in s. Both searches
// terminate within len(s)+1 steps, since s has only len(s) elements to
// collide with (the termination bound of spec.md §4.3).
func inferSuccessor(s []Con) Con {
	if len(s) == 0 {
		return IntCon(0)
	}
	if s[0].IntVal != nil {
		seen := make(map[int64]bool, len(s))
		for _, c := range s {
			if c.IntVal != nil {
				seen[*c.IntVal] = true
			}
		}
		var n int64
		for seen[n] {
			n++
		}
		return IntCon(n)
	}

	seen := make(map[string]bool, len(s))
	for _, c := range s {
		if c.TextVal != nil {
			seen[*c.TextVal] = true
		}
	}
	cur := "a"
	for seen[cur] {
		cur = cur + cur
	}
	return TextCon(cur)
}
