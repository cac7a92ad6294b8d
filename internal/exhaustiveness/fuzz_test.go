package exhaustiveness

import "testing"

// FuzzIsUsefulAntitoneInP fuzzes the shape asserted by
// TestIsUsefulAntitoneInP: isUseful is antitone in its matrix argument,
// over a small alphabet of three enum constructors plus the wildcard, so
// growing p by one row at a time can never make a fixed q more useful.
func FuzzIsUsefulAntitoneInP(f *testing.F) {
	f.Add(uint8(0b0000), uint8(0))
	f.Add(uint8(0b0111), uint8(3))
	f.Add(uint8(0b1111), uint8(1))

	sigs := EnumSigs{"e": {"a", "b", "c"}}
	tags := []string{"a", "b", "c"}

	f.Fuzz(func(t *testing.T, rowMask uint8, qTag uint8) {
		var q Row
		if int(qTag)%4 == 3 {
			q = Row{W()}
		} else {
			q = Row{C(EnumCon("e", tags[int(qTag)%3]))}
		}

		var p Matrix
		prevUseful := true
		for i := 0; i < 4; i++ {
			if rowMask&(1<<uint(i)) == 0 {
				continue
			}
			nowUseful := IsUseful(sigs, p, q)
			if nowUseful && !prevUseful {
				t.Fatalf("isUseful became more useful after growing p: p=%v q=%v", p, q)
			}
			prevUseful = nowUseful
			if i == 3 {
				p = append(p, Row{W()})
			} else {
				p = append(p, Row{C(EnumCon("e", tags[i]))})
			}
		}
	})
}
