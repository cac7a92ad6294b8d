// Package vcobject implements the content-addressed object surface of
// spec.md §4.4: VCFunction/VCTestFunction/VCModule/VCEnum, their
// canonical byte encoding, and the dependency closure that determines
// what must already live in a Pinned environment before an object can
// be evaluated.
package vcobject

import "github.com/corelang/funl/internal/ast"

// PinKind is the three-way tag spec.md §4.4 puts on every referenced
// symbol; only PinVersioned contributes to an object's dependencies.
type PinKind int

const (
	PinLocal PinKind = iota
	PinBuiltin
	PinVersioned
)

// PinnedRef is one reference discovered while walking an object's AST.
type PinnedRef struct {
	Kind PinKind
	Hash string // meaningful only when Kind == PinVersioned
}

// Object is the common surface of VCFunction, VCTestFunction, VCModule
// and VCEnum: something that can report its own dependency hashes and
// encode itself canonically.
type Object interface {
	Kind() string
	Name() string
	Scheme() string
	Dependencies() []string
	Hash() string
}

// VCFunction is a named function body together with its declared type
// scheme, content-addressed over its pinned-reference closure.
type VCFunction struct {
	FuncName   string
	FuncScheme string
	Body       ast.Expr
	Refs       []PinnedRef
}

func (f VCFunction) Kind() string   { return "function" }
func (f VCFunction) Name() string   { return f.FuncName }
func (f VCFunction) Scheme() string { return f.FuncScheme }

func (f VCFunction) Dependencies() []string {
	return versionedHashes(f.Refs)
}

func (f VCFunction) Hash() string {
	return canonicalHash(f.Kind(), f.FuncName, f.FuncScheme, f.Dependencies())
}

// VCTestFunction is a test body: same shape as VCFunction but excluded
// from normal module exports (spec.md §4.4's functions/tests split).
type VCTestFunction struct {
	FuncName string
	Body     ast.Expr
	Refs     []PinnedRef
}

func (t VCTestFunction) Kind() string   { return "test-function" }
func (t VCTestFunction) Name() string   { return t.FuncName }
func (t VCTestFunction) Scheme() string { return "" }

func (t VCTestFunction) Dependencies() []string {
	return versionedHashes(t.Refs)
}

func (t VCTestFunction) Hash() string {
	return canonicalHash(t.Kind(), t.FuncName, "", t.Dependencies())
}

// VCModule maps exported identifiers to the hash of the object they
// name; its own dependencies are exactly those hashes (spec.md §4.4:
// "for modules, its exported bindings").
type VCModule struct {
	ModuleName string
	Exports    map[string]string // identifier -> hash
}

func (m VCModule) Kind() string   { return "module" }
func (m VCModule) Name() string   { return m.ModuleName }
func (m VCModule) Scheme() string { return "" }

func (m VCModule) Dependencies() []string {
	out := make([]string, 0, len(m.Exports))
	for _, h := range m.Exports {
		out = append(out, h)
	}
	return sortedUnique(out)
}

func (m VCModule) Hash() string {
	return canonicalHash(m.Kind(), m.ModuleName, "", m.Dependencies())
}

// VCEnum is a named sum type and its ordered constructor tags.
type VCEnum struct {
	EnumName     string
	Constructors []string
}

func (e VCEnum) Kind() string           { return "enum" }
func (e VCEnum) Name() string           { return e.EnumName }
func (e VCEnum) Scheme() string         { return "" }
func (e VCEnum) Dependencies() []string { return nil }

func (e VCEnum) Hash() string {
	// An enum's constructor list is part of its identity, so it is
	// folded into the scheme position rather than treated as a dependency.
	return canonicalHash(e.Kind(), e.EnumName, joinTags(e.Constructors), nil)
}

func versionedHashes(refs []PinnedRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Kind == PinVersioned {
			out = append(out, r.Hash)
		}
	}
	return sortedUnique(out)
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ","
		}
		out += t
	}
	return out
}
