package trajectory

import (
	"errors"
	"math"
	"testing"
)

func TestResolveKnownScenario(t *testing.T) {
	out, err := Resolve(H(20.0), T(2.0), Impulse, Gravity)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d results, want 2", len(out))
	}
	if out[0].Kind != Impulse || out[0].Val != 20.0 {
		t.Errorf("first result = %s %v, want Impulse 20", out[0].Kind, out[0].Val)
	}
	if out[1].Kind != Gravity || out[1].Val != -10.0 {
		t.Errorf("second result = %s %v, want Gravity -10", out[1].Kind, out[1].Val)
	}
}

func TestResolveSingleOutput(t *testing.T) {
	out, err := Resolve(V(10.0), G(-2.5), Height)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(out) != 1 || out[0].Kind != Height || out[0].Val != 20.0 {
		t.Errorf("got %v, want [Height 20]", out)
	}
}

func TestResolveInputOrderIrrelevant(t *testing.T) {
	a, err := Resolve(H(20.0), T(2.0), Gravity)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Resolve(T(2.0), H(20.0), Gravity)
	if err != nil {
		t.Fatal(err)
	}
	if a[0].Val != b[0].Val {
		t.Errorf("input order changed result: %v vs %v", a[0].Val, b[0].Val)
	}
}

func TestResolveOutputOrderSymmetry(t *testing.T) {
	vg, err := Resolve(H(20.0), T(2.0), Impulse, Gravity)
	if err != nil {
		t.Fatal(err)
	}
	gv, err := Resolve(H(20.0), T(2.0), Gravity, Impulse)
	if err != nil {
		t.Fatal(err)
	}
	if vg[0].Val != gv[1].Val || vg[1].Val != gv[0].Val {
		t.Errorf("reordered request returned different values: %v vs %v", vg, gv)
	}
	if gv[0].Kind != Gravity || gv[1].Kind != Impulse {
		t.Errorf("results not tagged in requested order: %v", gv)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	const tol = 1e-9

	for _, tc := range []struct{ h, tm float64 }{
		{20, 2}, {3.5, 0.4}, {128, 10}, {0.01, 0.001},
	} {
		vg, err := Resolve(H(tc.h), T(tc.tm), Impulse, Gravity)
		if err != nil {
			t.Fatalf("forward resolve (%v, %v): %v", tc.h, tc.tm, err)
		}
		ht, err := Resolve(vg[0], vg[1], Height, Time)
		if err != nil {
			t.Fatalf("reverse resolve (%v, %v): %v", tc.h, tc.tm, err)
		}
		if math.Abs(ht[0].Val-tc.h) > tol*tc.h || math.Abs(ht[1].Val-tc.tm) > tol*tc.tm {
			t.Errorf("round trip (%v, %v) came back as (%v, %v)", tc.h, tc.tm, ht[0].Val, ht[1].Val)
		}
	}
}

func TestResolveFailFast(t *testing.T) {
	// Both requested outputs would fail for (Height=0, Impulse=0); the
	// reported divisor must be the one needed by the first requested output.
	_, err := Resolve(H(0.0), V(0.0), Time, Gravity)
	var dbz *DivisionByZeroError
	if !errors.As(err, &dbz) || dbz.Param != Impulse {
		t.Errorf("Time-first request reported %v, want DivisionByZero(Impulse)", err)
	}

	_, err = Resolve(H(0.0), V(0.0), Gravity, Time)
	if !errors.As(err, &dbz) || dbz.Param != Height {
		t.Errorf("Gravity-first request reported %v, want DivisionByZero(Height)", err)
	}
}

func TestResolveZeroDivisorIdentification(t *testing.T) {
	var dbz *DivisionByZeroError

	_, err := Resolve(V(5.0), T(0.0), Gravity)
	if !errors.As(err, &dbz) || dbz.Param != Time {
		t.Errorf("got %v, want DivisionByZero(Time)", err)
	}

	_, err = Resolve(H(10.0), V(0.0), Time)
	if !errors.As(err, &dbz) || dbz.Param != Impulse {
		t.Errorf("got %v, want DivisionByZero(Impulse)", err)
	}
}

func TestResolveArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"duplicate inputs", func() error { _, err := Resolve(H(1.0), H(2.0), Time); return err }},
		{"no outputs", func() error { _, err := Resolve(H(1.0), T(2.0)); return err }},
		{"too many outputs", func() error { _, err := Resolve(H(1.0), T(2.0), Impulse, Gravity, Impulse); return err }},
		{"duplicate outputs", func() error { _, err := Resolve(H(1.0), T(2.0), Impulse, Impulse); return err }},
		{"output is an input", func() error { _, err := Resolve(H(1.0), T(2.0), Height); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var argErr *ArgumentError
			if err := tt.run(); !errors.As(err, &argErr) {
				t.Errorf("got %v, want *ArgumentError", err)
			}
		})
	}
}

func TestResolveAllPairs(t *testing.T) {
	// One arc, all six input pairs: every pair must reproduce the same
	// remaining two parameters.
	const (
		h  = 20.0
		tm = 2.0
		v  = 20.0
		g  = -10.0
	)
	known := map[Kind]float64{Height: h, Time: tm, Impulse: v, Gravity: g}

	pairs := [][2]Value[float64]{
		{H(h), T(tm)},
		{H(h), V(v)},
		{H(h), G(g)},
		{T(tm), V(v)},
		{T(tm), G(g)},
		{V(v), G(g)},
	}

	for _, pair := range pairs {
		out, err := Resolve(pair[0], pair[1], remaining(pair[0].Kind, pair[1].Kind)...)
		if err != nil {
			t.Fatalf("Resolve(%s, %s): %v", pair[0].Kind, pair[1].Kind, err)
		}
		for _, got := range out {
			if math.Abs(got.Val-known[got.Kind]) > 1e-9 {
				t.Errorf("Resolve(%s, %s) gave %s = %v, want %v",
					pair[0].Kind, pair[1].Kind, got.Kind, got.Val, known[got.Kind])
			}
		}
	}
}
