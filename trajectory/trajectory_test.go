package trajectory

import (
	"errors"
	"math"
	"testing"
)

func TestTrajectoryConstructors(t *testing.T) {
	arc, err := FromHeightAndTime(20.0, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if arc.Impulse() != 20.0 || arc.Gravity() != -10.0 {
		t.Errorf("FromHeightAndTime(20, 2) = v %v, g %v, want 20, -10", arc.Impulse(), arc.Gravity())
	}

	arc2, err := FromImpulseAndGravity(arc.Impulse(), arc.Gravity())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(arc2.Height()-20.0) > 1e-9 || math.Abs(arc2.Time()-2.0) > 1e-9 {
		t.Errorf("round trip through FromImpulseAndGravity = h %v, t %v, want 20, 2", arc2.Height(), arc2.Time())
	}

	arc3 := FromTimeAndGravity(2.0, -10.0)
	if arc3.Height() != 20.0 || arc3.Impulse() != 20.0 {
		t.Errorf("FromTimeAndGravity(2, -10) = h %v, v %v, want 20, 20", arc3.Height(), arc3.Impulse())
	}

	arc4, err := FromHeightAndImpulse(20.0, 20.0)
	if err != nil {
		t.Fatal(err)
	}
	if arc4.Time() != 2.0 || arc4.Gravity() != -10.0 {
		t.Errorf("FromHeightAndImpulse(20, 20) = t %v, g %v, want 2, -10", arc4.Time(), arc4.Gravity())
	}

	arc5, err := FromTimeAndImpulse(2.0, 20.0)
	if err != nil {
		t.Fatal(err)
	}
	if arc5.Height() != 20.0 || arc5.Gravity() != -10.0 {
		t.Errorf("FromTimeAndImpulse(2, 20) = h %v, g %v, want 20, -10", arc5.Height(), arc5.Gravity())
	}

	arc6, err := FromHeightAndGravity(20.0, -10.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(arc6.Time()-2.0) > 1e-9 || math.Abs(arc6.Impulse()-20.0) > 1e-9 {
		t.Errorf("FromHeightAndGravity(20, -10) = t %v, v %v, want 2, 20", arc6.Time(), arc6.Impulse())
	}
}

func TestTrajectoryConstructorErrors(t *testing.T) {
	var dbz *DivisionByZeroError

	if _, err := FromHeightAndTime(20.0, 0.0); !errors.As(err, &dbz) || dbz.Param != Time {
		t.Errorf("FromHeightAndTime(20, 0) = %v, want DivisionByZero(Time)", err)
	}
	if _, err := FromHeightAndImpulse(20.0, 0.0); !errors.As(err, &dbz) || dbz.Param != Impulse {
		t.Errorf("FromHeightAndImpulse(20, 0) = %v, want DivisionByZero(Impulse)", err)
	}
	if _, err := FromImpulseAndGravity(20.0, 0.0); !errors.As(err, &dbz) || dbz.Param != Gravity {
		t.Errorf("FromImpulseAndGravity(20, 0) = %v, want DivisionByZero(Gravity)", err)
	}
}

func TestSolve(t *testing.T) {
	arc, err := Solve(H(20.0), T(2.0))
	if err != nil {
		t.Fatal(err)
	}
	if arc.Impulse() != 20.0 || arc.Gravity() != -10.0 || arc.Height() != 20.0 || arc.Time() != 2.0 {
		t.Errorf("Solve(H(20), T(2)) = %+v", arc)
	}

	// Inputs carry through unchanged regardless of order.
	arc2, err := Solve(G(-10.0), V(20.0))
	if err != nil {
		t.Fatal(err)
	}
	if arc2.Gravity() != -10.0 || arc2.Impulse() != 20.0 {
		t.Errorf("Solve did not carry inputs through: %+v", arc2)
	}
	if math.Abs(arc2.Height()-20.0) > 1e-9 {
		t.Errorf("Solve(G, V) height = %v, want 20", arc2.Height())
	}

	if _, err := Solve(H(1.0), H(2.0)); err == nil {
		t.Error("Solve with duplicate kinds should fail")
	}
}

func TestSolveFloat32(t *testing.T) {
	arc, err := Solve(H[float32](20), T[float32](2))
	if err != nil {
		t.Fatal(err)
	}
	if arc.Impulse() != 20 || arc.Gravity() != -10 {
		t.Errorf("float32 Solve = v %v, g %v, want 20, -10", arc.Impulse(), arc.Gravity())
	}
}

func TestHorizontalHelpers(t *testing.T) {
	tm, err := TimeFromSpeedAndRange(5.0, 40.0)
	if err != nil || tm != 4.0 {
		t.Errorf("TimeFromSpeedAndRange(5, 40) = %v, %v, want 4, nil", tm, err)
	}

	rise, fall, err := TimeSplitFromSpeedAndRange(5.0, 40.0, 0.25)
	if err != nil || rise != 1.0 || fall != 3.0 {
		t.Errorf("TimeSplitFromSpeedAndRange(5, 40, 0.25) = %v, %v, %v, want 1, 3, nil", rise, fall, err)
	}

	if _, err := TimeFromSpeedAndRange(0.0, 40.0); !errors.Is(err, ErrZeroSpeed) {
		t.Errorf("zero speed returned %v, want ErrZeroSpeed", err)
	}
	if _, _, err := TimeSplitFromSpeedAndRange(0.0, 40.0, 0.5); !errors.Is(err, ErrZeroSpeed) {
		t.Errorf("zero speed returned %v, want ErrZeroSpeed", err)
	}
}
