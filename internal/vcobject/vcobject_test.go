package vcobject

import "testing"

func TestVCFunctionHashIsDeterministic(t *testing.T) {
	f := VCFunction{FuncName: "add", FuncScheme: "Int -> Int -> Int", Refs: []PinnedRef{
		{Kind: PinVersioned, Hash: "h1"},
		{Kind: PinBuiltin},
	}}
	h1 := f.Hash()
	h2 := f.Hash()
	if h1 != h2 {
		t.Fatalf("Hash should be deterministic, got %q then %q", h1, h2)
	}
	if len(h1) == 0 {
		t.Fatal("Hash should not be empty")
	}
}

func TestVCFunctionHashChangesWithScheme(t *testing.T) {
	a := VCFunction{FuncName: "f", FuncScheme: "Int -> Int"}
	b := VCFunction{FuncName: "f", FuncScheme: "Text -> Text"}
	if a.Hash() == b.Hash() {
		t.Error("differing schemes should produce differing hashes")
	}
}

func TestVCFunctionDependenciesOnlyVersionedRefs(t *testing.T) {
	f := VCFunction{Refs: []PinnedRef{
		{Kind: PinLocal},
		{Kind: PinBuiltin},
		{Kind: PinVersioned, Hash: "dep1"},
		{Kind: PinVersioned, Hash: "dep2"},
		{Kind: PinVersioned, Hash: "dep1"}, // duplicate
	}}
	deps := f.Dependencies()
	if len(deps) != 2 {
		t.Fatalf("Dependencies() = %v, want exactly 2 deduplicated hashes", deps)
	}
}

func TestVCModuleDependenciesAreItsExportHashes(t *testing.T) {
	m := VCModule{ModuleName: "M", Exports: map[string]string{"f": "h1", "g": "h2"}}
	deps := m.Dependencies()
	if len(deps) != 2 {
		t.Fatalf("Dependencies() = %v, want 2", deps)
	}
}

func TestVCEnumHashIncludesConstructors(t *testing.T) {
	a := VCEnum{EnumName: "Color", Constructors: []string{"Red", "Blue"}}
	b := VCEnum{EnumName: "Color", Constructors: []string{"Red", "Green"}}
	if a.Hash() == b.Hash() {
		t.Error("differing constructor sets should produce differing hashes even with the same enum name")
	}
}

func TestVCTestFunctionExcludedFromScheme(t *testing.T) {
	tf := VCTestFunction{FuncName: "testAdd"}
	if tf.Scheme() != "" {
		t.Errorf("VCTestFunction.Scheme() = %q, want empty", tf.Scheme())
	}
	if tf.Kind() != "test-function" {
		t.Errorf("VCTestFunction.Kind() = %q, want test-function", tf.Kind())
	}
}

func TestProvenanceGraphAncestors(t *testing.T) {
	g := NewGraph()
	g.Record(Edge{Object: "h0", Kind: Init})
	g.Record(Edge{Object: "h1", Predecessor: "h0", Kind: CompatibleWithPred})
	g.Record(Edge{Object: "h2", Predecessor: "h1", Kind: IncompatibleWithPred, Reasons: []string{"arity changed"}})

	chain := g.Ancestors("h2")
	if len(chain) != 2 {
		t.Fatalf("Ancestors(h2) = %v, want 2 edges (h2->h1, h1->h0)", chain)
	}
	if chain[0].Object != "h2" || chain[1].Object != "h1" {
		t.Errorf("Ancestors order = %+v, want h2 then h1, oldest last", chain)
	}
}

func TestProvenanceGraphAncestorsOfInit(t *testing.T) {
	g := NewGraph()
	g.Record(Edge{Object: "root", Kind: Init})
	if chain := g.Ancestors("root"); len(chain) != 0 {
		t.Errorf("Ancestors(root) = %v, want empty since root is Init", chain)
	}
}

func TestProvenancePredecessorMissing(t *testing.T) {
	g := NewGraph()
	if _, ok := g.Predecessor("unknown"); ok {
		t.Error("Predecessor on an unrecorded hash should report false")
	}
}
