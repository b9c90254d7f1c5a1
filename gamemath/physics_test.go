package gamemath

import "testing"

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{5, 0.5, 4.5},
		{-5, 0.5, -4.5},
		{0.3, 0.5, 0},
		{-0.3, 0.5, 0},
		{0, 0.5, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(10, 6); got != 6 {
		t.Errorf("ClampSpeed(10, 6) = %v, want 6", got)
	}
	if got := ClampSpeed(-10, 6); got != -6 {
		t.Errorf("ClampSpeed(-10, 6) = %v, want -6", got)
	}
	if got := ClampSpeed(3, 6); got != 3 {
		t.Errorf("ClampSpeed(3, 6) = %v, want 3", got)
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %v, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1, 0, 3) = %v, want 0", got)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
}
