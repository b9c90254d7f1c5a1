package trajectory

// Trajectory stores all four resolved parameters of one jump arc. It is a
// plain value record: construct it per jump, read the fields, throw it away.
type Trajectory[N Float] struct {
	height  N
	time    N
	impulse N
	gravity N
}

// Height returns the peak altitude above the launch point.
func (tr Trajectory[N]) Height() N { return tr.height }

// Time returns the time from launch to the peak.
func (tr Trajectory[N]) Time() N { return tr.time }

// Impulse returns the initial vertical velocity.
func (tr Trajectory[N]) Impulse() N { return tr.impulse }

// Gravity returns the vertical acceleration during flight.
func (tr Trajectory[N]) Gravity() N { return tr.gravity }

// FromHeightAndTime builds the arc that peaks at height h after time t.
func FromHeightAndTime[N Float](h, t N) (Trajectory[N], error) {
	v, err := ImpulseFromHeightAndTime(h, t)
	if err != nil {
		return Trajectory[N]{}, err
	}
	g, err := GravityFromHeightAndTime(h, t)
	if err != nil {
		return Trajectory[N]{}, err
	}
	return Trajectory[N]{height: h, time: t, impulse: v, gravity: g}, nil
}

// FromHeightAndImpulse builds the arc launched at impulse v that peaks at
// height h.
func FromHeightAndImpulse[N Float](h, v N) (Trajectory[N], error) {
	t, err := TimeFromHeightAndImpulse(h, v)
	if err != nil {
		return Trajectory[N]{}, err
	}
	g, err := GravityFromHeightAndImpulse(h, v)
	if err != nil {
		return Trajectory[N]{}, err
	}
	return Trajectory[N]{height: h, time: t, impulse: v, gravity: g}, nil
}

// FromHeightAndGravity builds the arc under gravity g that peaks at height h.
func FromHeightAndGravity[N Float](h, g N) (Trajectory[N], error) {
	t, err := TimeFromHeightAndGravity(h, g)
	if err != nil {
		return Trajectory[N]{}, err
	}
	return Trajectory[N]{height: h, time: t, impulse: ImpulseFromHeightAndGravity(h, g), gravity: g}, nil
}

// FromTimeAndImpulse builds the arc launched at impulse v that peaks after
// time t.
func FromTimeAndImpulse[N Float](t, v N) (Trajectory[N], error) {
	g, err := GravityFromTimeAndImpulse(t, v)
	if err != nil {
		return Trajectory[N]{}, err
	}
	return Trajectory[N]{height: HeightFromTimeAndImpulse(t, v), time: t, impulse: v, gravity: g}, nil
}

// FromTimeAndGravity builds the arc under gravity g that peaks after time t.
// It cannot fail: neither remaining solver divides by an input.
func FromTimeAndGravity[N Float](t, g N) Trajectory[N] {
	return Trajectory[N]{
		height:  HeightFromTimeAndGravity(t, g),
		time:    t,
		impulse: ImpulseFromTimeAndGravity(t, g),
		gravity: g,
	}
}

// FromImpulseAndGravity builds the arc launched at impulse v under gravity g.
func FromImpulseAndGravity[N Float](v, g N) (Trajectory[N], error) {
	h, err := HeightFromImpulseAndGravity(v, g)
	if err != nil {
		return Trajectory[N]{}, err
	}
	t, err := TimeFromImpulseAndGravity(v, g)
	if err != nil {
		return Trajectory[N]{}, err
	}
	return Trajectory[N]{height: h, time: t, impulse: v, gravity: g}, nil
}

// Solve builds the full arc from any two tagged values, picking the matching
// constructor from the pair of kinds:
//
//	arc, err := trajectory.Solve(trajectory.H(20.0), trajectory.T(2.0))
//
// Supplying the same kind twice is an *ArgumentError.
func Solve[N Float](a, b Value[N]) (Trajectory[N], error) {
	out, err := Resolve(a, b, remaining(a.Kind, b.Kind)...)
	if err != nil {
		return Trajectory[N]{}, err
	}
	tr := Trajectory[N]{}
	for _, val := range []Value[N]{a, b, out[0], out[1]} {
		switch val.Kind {
		case Impulse:
			tr.impulse = val.Val
		case Gravity:
			tr.gravity = val.Val
		case Height:
			tr.height = val.Val
		case Time:
			tr.time = val.Val
		}
	}
	return tr, nil
}

// remaining returns the two kinds not present in the input pair.
func remaining(a, b Kind) []Kind {
	rest := make([]Kind, 0, 2)
	for k := Kind(0); k < kindCount; k++ {
		if k != a && k != b {
			rest = append(rest, k)
		}
	}
	return rest
}
