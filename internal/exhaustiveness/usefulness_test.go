package exhaustiveness

import "testing"

func TestIsUsefulWildcardAgainstEmptyMatrix(t *testing.T) {
	if !IsUseful(nil, Matrix{}, Row{W()}) {
		t.Error("a wildcard row is useful against an empty matrix")
	}
}

func TestIsUsefulCompleteBoolSignatureNotUseful(t *testing.T) {
	sigs := EnumSigs{"bool#builtin": {"true", "false"}}
	p := Matrix{
		{C(EnumCon("bool#builtin", "true"))},
		{C(EnumCon("bool#builtin", "false"))},
	}
	if IsUseful(sigs, p, Row{W()}) {
		t.Error("a wildcard should not be useful once every Bool constructor is already covered")
	}
}

func TestIsUsefulIncompleteBoolSignatureUseful(t *testing.T) {
	sigs := EnumSigs{"bool#builtin": {"true", "false"}}
	p := Matrix{
		{C(EnumCon("bool#builtin", "true"))},
	}
	if !IsUseful(sigs, p, Row{C(EnumCon("bool#builtin", "false"))}) {
		t.Error("the uncovered false arm should be useful")
	}
	if !IsUseful(sigs, p, Row{W()}) {
		t.Error("a wildcard should be useful while false is still uncovered")
	}
}

func TestIsUsefulOneEmptyOptional(t *testing.T) {
	p := Matrix{{C(OneCon(), W())}}
	if !IsUseful(nil, p, Row{C(EmptyCon())}) {
		t.Error("None should be useful when only Some is matched")
	}
	if IsUseful(nil, Matrix{{C(OneCon(), W())}, {C(EmptyCon())}}, Row{W()}) {
		t.Error("wildcard is not useful once both One and Empty are covered")
	}
}

func TestExhaustiveCompleteBool(t *testing.T) {
	sigs := EnumSigs{"bool#builtin": {"true", "false"}}
	p := Matrix{
		{C(EnumCon("bool#builtin", "true"))},
		{C(EnumCon("bool#builtin", "false"))},
	}
	if _, ok := Exhaustive(sigs, p, 1); !ok {
		t.Error("matching both Bool constructors should be exhaustive")
	}
}

func TestExhaustiveMissingArmReturnsWitness(t *testing.T) {
	sigs := EnumSigs{"bool#builtin": {"true", "false"}}
	p := Matrix{
		{C(EnumCon("bool#builtin", "true"))},
	}
	witness, ok := Exhaustive(sigs, p, 1)
	if ok {
		t.Fatal("matching only true should not be exhaustive")
	}
	if len(witness) != 1 || witness[0].Con.Tag != "false" {
		t.Errorf("witness = %+v, want the false constructor", witness)
	}
}

func TestCheckUsefulnessFlagsUnreachableArm(t *testing.T) {
	sigs := EnumSigs{"bool#builtin": {"true", "false"}}
	p := Matrix{
		{W()},
		{C(EnumCon("bool#builtin", "true"))},
	}
	overlap := CheckUsefulness(sigs, p)
	if overlap[0] != -1 {
		t.Errorf("first row should be useful, got overlap[0]=%d", overlap[0])
	}
	if overlap[1] != 0 {
		t.Errorf("second row is shadowed by the leading wildcard, got overlap[1]=%d, want 0", overlap[1])
	}
}

// TestIsUsefulAntitoneInP is a property test grounded in spec.md §8's fuzz
// expansion: adding rows to p can only ever make a fixed q less useful
// (or leave it unchanged), never more useful. isUseful is antitone in its
// matrix argument.
func TestIsUsefulAntitoneInP(t *testing.T) {
	sigs := EnumSigs{"e": {"a", "b", "c"}}
	allRows := []Row{
		{C(EnumCon("e", "a"))},
		{C(EnumCon("e", "b"))},
		{C(EnumCon("e", "c"))},
		{W()},
	}
	queries := []Row{
		{C(EnumCon("e", "a"))},
		{C(EnumCon("e", "b"))},
		{C(EnumCon("e", "c"))},
		{W()},
	}

	for _, q := range queries {
		var p Matrix
		prevUseful := true
		for _, row := range allRows {
			nowUseful := IsUseful(sigs, p, q)
			if nowUseful && !prevUseful {
				t.Fatalf("isUseful(p, q=%+v) became more useful after growing p: matrix=%v", q, p)
			}
			prevUseful = nowUseful
			p = append(p, row)
		}
	}
}
