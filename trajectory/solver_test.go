package trajectory

import (
	"errors"
	"math"
	"testing"
)

func TestImpulseSolvers(t *testing.T) {
	if v, err := ImpulseFromHeightAndTime(20.0, 10.0); err != nil || v != 4.0 {
		t.Errorf("ImpulseFromHeightAndTime(20, 10) = %v, %v, want 4, nil", v, err)
	}
	if v := ImpulseFromHeightAndGravity(20.0, -1.0); math.Abs(v-math.Sqrt(40)) > 1e-12 {
		t.Errorf("ImpulseFromHeightAndGravity(20, -1) = %v, want sqrt(40)", v)
	}
	if v := ImpulseFromTimeAndGravity(10.0, -1.0); v != 10.0 {
		t.Errorf("ImpulseFromTimeAndGravity(10, -1) = %v, want 10", v)
	}
}

func TestGravitySolvers(t *testing.T) {
	if g, err := GravityFromHeightAndTime(20.0, 10.0); err != nil || g != -0.4 {
		t.Errorf("GravityFromHeightAndTime(20, 10) = %v, %v, want -0.4, nil", g, err)
	}
	if g, err := GravityFromHeightAndImpulse(20.0, 10.0); err != nil || g != -2.5 {
		t.Errorf("GravityFromHeightAndImpulse(20, 10) = %v, %v, want -2.5, nil", g, err)
	}
	if g, err := GravityFromTimeAndImpulse(10.0, 20.0); err != nil || g != -2.0 {
		t.Errorf("GravityFromTimeAndImpulse(10, 20) = %v, %v, want -2, nil", g, err)
	}
}

func TestHeightSolvers(t *testing.T) {
	if h := HeightFromTimeAndImpulse(10.0, 4.0); h != 20.0 {
		t.Errorf("HeightFromTimeAndImpulse(10, 4) = %v, want 20", h)
	}
	if h := HeightFromTimeAndGravity(10.0, -0.4); h != 20.0 {
		t.Errorf("HeightFromTimeAndGravity(10, -0.4) = %v, want 20", h)
	}
	if h, err := HeightFromImpulseAndGravity(10.0, -2.5); err != nil || h != 20.0 {
		t.Errorf("HeightFromImpulseAndGravity(10, -2.5) = %v, %v, want 20, nil", h, err)
	}
}

func TestTimeSolvers(t *testing.T) {
	if tv, err := TimeFromHeightAndImpulse(20.0, 4.0); err != nil || tv != 10.0 {
		t.Errorf("TimeFromHeightAndImpulse(20, 4) = %v, %v, want 10, nil", tv, err)
	}
	if tv, err := TimeFromHeightAndGravity(20.0, -0.4); err != nil || tv != 10.0 {
		t.Errorf("TimeFromHeightAndGravity(20, -0.4) = %v, %v, want 10, nil", tv, err)
	}
	if tv, err := TimeFromImpulseAndGravity(10.0, -1.0); err != nil || tv != 10.0 {
		t.Errorf("TimeFromImpulseAndGravity(10, -1) = %v, %v, want 10, nil", tv, err)
	}
}

// A sign-inconsistent pair (positive height, positive gravity) must still
// produce a real, non-negative magnitude instead of a NaN or an error.
func TestSqrtMagnitudePolicy(t *testing.T) {
	tv, err := TimeFromHeightAndGravity(10.0, 5.0)
	if err != nil {
		t.Fatalf("TimeFromHeightAndGravity(10, 5) returned error: %v", err)
	}
	if tv != 2.0 {
		t.Errorf("TimeFromHeightAndGravity(10, 5) = %v, want 2", tv)
	}

	v := ImpulseFromHeightAndGravity(10.0, 5.0)
	if math.IsNaN(v) || v < 0 {
		t.Errorf("ImpulseFromHeightAndGravity(10, 5) = %v, want a non-negative real", v)
	}
}

func TestZeroDivisors(t *testing.T) {
	tests := []struct {
		name  string
		run   func() error
		param Kind
	}{
		{"impulse from h,t=0", func() error { _, err := ImpulseFromHeightAndTime(5.0, 0.0); return err }, Time},
		{"gravity from h,t=0", func() error { _, err := GravityFromHeightAndTime(5.0, 0.0); return err }, Time},
		{"gravity from h=0,v", func() error { _, err := GravityFromHeightAndImpulse(0.0, 5.0); return err }, Height},
		{"gravity from t=0,v", func() error { _, err := GravityFromTimeAndImpulse(0.0, 5.0); return err }, Time},
		{"height from v,g=0", func() error { _, err := HeightFromImpulseAndGravity(5.0, 0.0); return err }, Gravity},
		{"time from h,v=0", func() error { _, err := TimeFromHeightAndImpulse(10.0, 0.0); return err }, Impulse},
		{"time from h,g=0", func() error { _, err := TimeFromHeightAndGravity(10.0, 0.0); return err }, Gravity},
		{"time from v,g=0", func() error { _, err := TimeFromImpulseAndGravity(5.0, 0.0); return err }, Gravity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var dbz *DivisionByZeroError
			if !errors.As(err, &dbz) {
				t.Fatalf("got %v, want *DivisionByZeroError", err)
			}
			if dbz.Param != tt.param {
				t.Errorf("error names %s, want %s", dbz.Param, tt.param)
			}
		})
	}
}

func TestSolversWithFloat32(t *testing.T) {
	v, err := ImpulseFromHeightAndTime[float32](20, 10)
	if err != nil || v != 4 {
		t.Errorf("float32 ImpulseFromHeightAndTime(20, 10) = %v, %v, want 4, nil", v, err)
	}
	if g, err := GravityFromHeightAndImpulse[float32](20, 10); err != nil || g != -2.5 {
		t.Errorf("float32 GravityFromHeightAndImpulse(20, 10) = %v, %v, want -2.5, nil", g, err)
	}
}
