package ast

// Pattern is a case-arm pattern. Patterns are required to be linear (no
// variable appears twice), so binding sub-patterns never collide
// (spec.md §4.1).
type Pattern interface{ patternNode() }

// PWildcard binds nothing and matches anything.
type PWildcard struct{}

func (PWildcard) patternNode() {}

// PVar binds the matched value to Name and matches anything.
type PVar struct{ Name string }

func (PVar) patternNode() {}

// PLit matches an element of an order-enumerable "infinite" domain
// (integers, text literals) by value, corresponding to the
// exhaustiveness analyzer's CInf constructor.
type PLit struct {
	Int  *int64
	Text *string
}

func (PLit) patternNode() {}

// PEnum matches a specific enum constructor, by owner hash and tag.
type PEnum struct {
	Hash string
	Tag  string
}

func (PEnum) patternNode() {}

// POne matches VOne, recursing into Inner.
type POne struct{ Inner Pattern }

func (POne) patternNode() {}

// PEmpty matches VEmpty.
type PEmpty struct{}

func (PEmpty) patternNode() {}

// PTuple matches VTuple positionally; all element patterns must match.
type PTuple struct{ Elements []Pattern }

func (PTuple) patternNode() {}
