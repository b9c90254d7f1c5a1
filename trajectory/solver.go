package trajectory

import "math"

// Float covers the numeric types the solvers work over. Defined float types
// (e.g. a fixed-step game unit declared as `type Unit float64`) satisfy it.
type Float interface {
	~float32 | ~float64
}

// The twelve solvers below are the closed-form substitutions of the two
// governing equations
//
//	displacement(t) = ½·g·t² + v₀·t
//	velocity(t)     = g·t + v₀
//
// under the peak condition velocity(t_h) = 0, with the launch point at zero.
// Sign convention: Height and Time are non-negative, Impulse is typically
// positive (upward) and Gravity typically negative (downward).
//
// Solvers that take a square root apply it to the absolute value of the
// radicand. With physically consistent signs the result is exact; with
// inconsistent signs the result is a real-valued magnitude rather than a
// complex number. Callers who need strictness must validate signs themselves.

// ImpulseFromHeightAndTime returns the launch impulse that peaks at height h
// after time t. Fails when t is zero.
func ImpulseFromHeightAndTime[N Float](h, t N) (N, error) {
	if t == 0 {
		return 0, &DivisionByZeroError{Param: Time}
	}
	return 2 * h / t, nil
}

// ImpulseFromHeightAndGravity returns the launch impulse that peaks at
// height h under gravity g: √|2·h·g|.
func ImpulseFromHeightAndGravity[N Float](h, g N) N {
	return sqrt(abs(2 * h * g))
}

// ImpulseFromTimeAndGravity returns the launch impulse that peaks after
// time t under gravity g.
func ImpulseFromTimeAndGravity[N Float](t, g N) N {
	return -g * t
}

// GravityFromHeightAndTime returns the gravity under which a jump peaks at
// height h after time t. Fails when t is zero.
func GravityFromHeightAndTime[N Float](h, t N) (N, error) {
	if t == 0 {
		return 0, &DivisionByZeroError{Param: Time}
	}
	return -2 * h / (t * t), nil
}

// GravityFromHeightAndImpulse returns the gravity under which a jump
// launched at impulse v peaks at height h. Fails when h is zero.
func GravityFromHeightAndImpulse[N Float](h, v N) (N, error) {
	if h == 0 {
		return 0, &DivisionByZeroError{Param: Height}
	}
	return -(v * v) / (2 * h), nil
}

// GravityFromTimeAndImpulse returns the gravity under which a jump launched
// at impulse v peaks after time t. Fails when t is zero.
func GravityFromTimeAndImpulse[N Float](t, v N) (N, error) {
	if t == 0 {
		return 0, &DivisionByZeroError{Param: Time}
	}
	return -v / t, nil
}

// HeightFromTimeAndImpulse returns the peak height of a jump launched at
// impulse v that peaks after time t.
func HeightFromTimeAndImpulse[N Float](t, v N) N {
	return v * t / 2
}

// HeightFromTimeAndGravity returns the peak height of a jump under gravity g
// that peaks after time t.
func HeightFromTimeAndGravity[N Float](t, g N) N {
	return -g * t * t / 2
}

// HeightFromImpulseAndGravity returns the peak height of a jump launched at
// impulse v under gravity g. Fails when g is zero.
func HeightFromImpulseAndGravity[N Float](v, g N) (N, error) {
	if g == 0 {
		return 0, &DivisionByZeroError{Param: Gravity}
	}
	return -(v * v) / (2 * g), nil
}

// TimeFromHeightAndImpulse returns the time to peak of a jump launched at
// impulse v that peaks at height h. Fails when v is zero.
func TimeFromHeightAndImpulse[N Float](h, v N) (N, error) {
	if v == 0 {
		return 0, &DivisionByZeroError{Param: Impulse}
	}
	return 2 * h / v, nil
}

// TimeFromHeightAndGravity returns the time to peak of a jump under gravity
// g that peaks at height h: √|2·h/g|. Fails when g is zero.
func TimeFromHeightAndGravity[N Float](h, g N) (N, error) {
	if g == 0 {
		return 0, &DivisionByZeroError{Param: Gravity}
	}
	return sqrt(abs(2 * h / g)), nil
}

// TimeFromImpulseAndGravity returns the time to peak of a jump launched at
// impulse v under gravity g. Fails when g is zero.
func TimeFromImpulseAndGravity[N Float](v, g N) (N, error) {
	if g == 0 {
		return 0, &DivisionByZeroError{Param: Gravity}
	}
	return -v / g, nil
}

func sqrt[N Float](n N) N {
	return N(math.Sqrt(float64(n)))
}

func abs[N Float](n N) N {
	if n < 0 {
		return -n
	}
	return n
}
