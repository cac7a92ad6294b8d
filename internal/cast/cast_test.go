package cast

import (
	"reflect"
	"testing"
	"time"

	"github.com/corelang/funl/internal/value"
)

func TestIntRoundTrip(t *testing.T) {
	v := Int.ToValue(42)
	got, err := Int.FromValue(v)
	if err != nil || got != 42 {
		t.Fatalf("FromValue(ToValue(42)) = %v, %v, want 42, nil", got, err)
	}
}

func TestIntFromValueWrongShape(t *testing.T) {
	if _, err := Int.FromValue(value.VText{S: "nope"}); err == nil {
		t.Fatal("FromValue on a VText should fail for Int")
	}
}

func TestHostIntRangeCheck(t *testing.T) {
	if _, err := HostInt.FromValue(value.VInt{I: 42}); err != nil {
		t.Fatalf("in-range HostInt.FromValue failed: %v", err)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	got, err := Bool.FromValue(Bool.ToValue(true))
	if err != nil || got != true {
		t.Fatalf("Bool round trip = %v, %v, want true, nil", got, err)
	}
	got, err = Bool.FromValue(Bool.ToValue(false))
	if err != nil || got != false {
		t.Fatalf("Bool round trip = %v, %v, want false, nil", got, err)
	}
	if _, err := Bool.FromValue(value.VInt{I: 1}); err == nil {
		t.Fatal("Bool.FromValue on a non-enum value should fail")
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	got, err := Time.FromValue(Time.ToValue(now))
	if err != nil || !got.Equal(now) {
		t.Fatalf("Time round trip = %v, %v, want %v, nil", got, err, now)
	}
}

func TestUnitRoundTrip(t *testing.T) {
	if _, err := Unit.FromValue(Unit.ToValue(struct{}{})); err != nil {
		t.Fatalf("Unit round trip failed: %v", err)
	}
	if _, err := Unit.FromValue(value.VTuple{Elems: []value.V{value.VInt{I: 1}}}); err == nil {
		t.Fatal("Unit.FromValue on a non-empty tuple should fail")
	}
}

func TestArrayRoundTrip(t *testing.T) {
	c := Array(Int)
	in := []int64{1, 2, 3}
	out, err := c.FromValue(c.ToValue(in))
	if err != nil {
		t.Fatalf("Array round trip failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("Array round trip length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("Array round trip[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestOptionalRoundTrip(t *testing.T) {
	c := Optional(Text)
	present := Option[string]{Present: true, Value: "hi"}
	got, err := c.FromValue(c.ToValue(present))
	if err != nil || !got.Present || got.Value != "hi" {
		t.Fatalf("Optional present round trip = %v, %v", got, err)
	}
	absent := Option[string]{}
	got, err = c.FromValue(c.ToValue(absent))
	if err != nil || got.Present {
		t.Fatalf("Optional absent round trip = %v, %v, want Present=false", got, err)
	}
}

func TestSumRoundTrip(t *testing.T) {
	c := Sum(Int, Text)
	left := Either[int64, string]{IsLeft: true, Left: 7}
	got, err := c.FromValue(c.ToValue(left))
	if err != nil || !got.IsLeft || got.Left != 7 {
		t.Fatalf("Sum left round trip = %v, %v", got, err)
	}
	right := Either[int64, string]{Right: "ok"}
	got, err = c.FromValue(c.ToValue(right))
	if err != nil || got.IsLeft || got.Right != "ok" {
		t.Fatalf("Sum right round trip = %v, %v", got, err)
	}
}

func TestFunc(t *testing.T) {
	double := Func(Int, Int, func(n int64) int64 { return n * 2 })
	out, err := double.Call(value.VInt{I: 5})
	if err != nil {
		t.Fatalf("Func.Call failed: %v", err)
	}
	if out.(value.VInt).I != 10 {
		t.Errorf("Func.Call result = %v, want 10", out)
	}
}

func TestImplicitLooksUpByLabel(t *testing.T) {
	lookup := func(label string) (value.V, bool) {
		if label == "base" {
			return value.VInt{I: 100}, true
		}
		return nil, false
	}
	fn := Implicit("base", Int, Int, func(n int64) int64 { return n + 1 }, lookup)
	out, err := fn.Call(value.VTuple{})
	if err != nil {
		t.Fatalf("Implicit.Call failed: %v", err)
	}
	if out.(value.VInt).I != 101 {
		t.Errorf("Implicit.Call result = %v, want 101", out)
	}
}

func TestImplicitMissingLabelErrors(t *testing.T) {
	lookup := func(label string) (value.V, bool) { return nil, false }
	fn := Implicit("missing", Int, Int, func(n int64) int64 { return n }, lookup)
	if _, err := fn.Call(value.VTuple{}); err == nil {
		t.Fatal("Implicit.Call should fail when the label is absent from the implicit environment")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	Register(r, Int)
	var zero int64
	entry, ok := r.Lookup(reflect.TypeOf(zero))
	if !ok {
		t.Fatal("Lookup should find the registered int64 bridge")
	}
	v := entry.ToValue(int64(9))
	if v.(value.VInt).I != 9 {
		t.Errorf("registry ToValue = %v, want VInt(9)", v)
	}
}
