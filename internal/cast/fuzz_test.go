package cast

import "testing"

// FuzzScalarRoundTrip fuzzes Int/Text round trips: FromValue(ToValue(a))
// must recover a exactly, for both of these scalar Cast instances, per spec.md
// §8's fuzz expansion for the Cast bridge.
func FuzzScalarRoundTrip(f *testing.F) {
	f.Add(int64(0), "")
	f.Add(int64(-1), "hello")
	f.Add(int64(1<<40), "unicode: é中")

	f.Fuzz(func(t *testing.T, n int64, s string) {
		gotN, err := Int.FromValue(Int.ToValue(n))
		if err != nil || gotN != n {
			t.Fatalf("Int round trip: got %v, %v, want %d, nil", gotN, err, n)
		}
		gotS, err := Text.FromValue(Text.ToValue(s))
		if err != nil || gotS != s {
			t.Fatalf("Text round trip: got %q, %v, want %q, nil", gotS, err, s)
		}
	})
}

// FuzzOptionalRoundTrip fuzzes Optional(Int): present/absent and payload
// must both survive a ToValue/FromValue round trip.
func FuzzOptionalRoundTrip(f *testing.F) {
	f.Add(true, int64(7))
	f.Add(false, int64(0))

	c := Optional(Int)
	f.Fuzz(func(t *testing.T, present bool, n int64) {
		in := Option[int64]{Present: present, Value: n}
		out, err := c.FromValue(c.ToValue(in))
		if err != nil {
			t.Fatalf("Optional round trip error: %v", err)
		}
		if out.Present != in.Present {
			t.Fatalf("Optional.Present round trip = %v, want %v", out.Present, in.Present)
		}
		if in.Present && out.Value != in.Value {
			t.Fatalf("Optional.Value round trip = %d, want %d", out.Value, in.Value)
		}
	})
}

// FuzzArrayRoundTrip fuzzes Array(Int) over variable-length payloads
// encoded as a byte slice (each byte becomes one element).
func FuzzArrayRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{0, 0, 255})

	c := Array(Int)
	f.Fuzz(func(t *testing.T, raw []byte) {
		in := make([]int64, len(raw))
		for i, b := range raw {
			in[i] = int64(b)
		}
		out, err := c.FromValue(c.ToValue(in))
		if err != nil {
			t.Fatalf("Array round trip error: %v", err)
		}
		if len(out) != len(in) {
			t.Fatalf("Array round trip length = %d, want %d", len(out), len(in))
		}
		for i := range in {
			if out[i] != in[i] {
				t.Fatalf("Array round trip[%d] = %d, want %d", i, out[i], in[i])
			}
		}
	})
}

// FuzzSumRoundTrip fuzzes Sum(Int, Text): which side is selected, and
// that side's payload, must both survive a round trip.
func FuzzSumRoundTrip(f *testing.F) {
	f.Add(true, int64(5), "")
	f.Add(false, int64(0), "right side")

	c := Sum(Int, Text)
	f.Fuzz(func(t *testing.T, isLeft bool, n int64, s string) {
		in := Either[int64, string]{IsLeft: isLeft, Left: n, Right: s}
		out, err := c.FromValue(c.ToValue(in))
		if err != nil {
			t.Fatalf("Sum round trip error: %v", err)
		}
		if out.IsLeft != in.IsLeft {
			t.Fatalf("Sum.IsLeft round trip = %v, want %v", out.IsLeft, in.IsLeft)
		}
		if in.IsLeft && out.Left != in.Left {
			t.Fatalf("Sum.Left round trip = %d, want %d", out.Left, in.Left)
		}
		if !in.IsLeft && out.Right != in.Right {
			t.Fatalf("Sum.Right round trip = %q, want %q", out.Right, in.Right)
		}
	})
}
