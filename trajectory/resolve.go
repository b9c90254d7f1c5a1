package trajectory

import "fmt"

// Value tags a number with the parameter role it plays in the arc.
type Value[N Float] struct {
	Kind Kind
	Val  N
}

// Mnemonic constructors for tagged values. The numeric type is normally
// inferred from the argument; instantiate explicitly (e.g. H[float32](20))
// to pin it.

// V tags v as a launch impulse.
func V[N Float](v N) Value[N] { return Value[N]{Kind: Impulse, Val: v} }

// G tags g as a gravity.
func G[N Float](g N) Value[N] { return Value[N]{Kind: Gravity, Val: g} }

// H tags h as a peak height.
func H[N Float](h N) Value[N] { return Value[N]{Kind: Height, Val: h} }

// T tags t as a time to apex.
func T[N Float](t N) Value[N] { return Value[N]{Kind: Time, Val: t} }

// Resolve computes the requested parameters from two known ones. The two
// inputs may be given in either order; want names one or both of the two
// remaining kinds, and the results come back tagged in exactly that order.
//
// On the first solver failure Resolve aborts and returns that error with no
// partial results. A duplicate input kind, an empty or oversized want list,
// or a wanted kind that is already an input yields an *ArgumentError.
func Resolve[N Float](a, b Value[N], want ...Kind) ([]Value[N], error) {
	if a.Kind == b.Kind {
		return nil, &ArgumentError{Reason: fmt.Sprintf("duplicate input kind %s", a.Kind)}
	}
	if len(want) == 0 {
		return nil, &ArgumentError{Reason: "no output requested"}
	}
	if len(want) > 2 {
		return nil, &ArgumentError{Reason: fmt.Sprintf("%d outputs requested, at most 2 resolvable", len(want))}
	}
	if len(want) == 2 && want[0] == want[1] {
		return nil, &ArgumentError{Reason: fmt.Sprintf("duplicate output kind %s", want[0])}
	}

	for _, k := range want {
		if k == a.Kind || k == b.Kind {
			return nil, &ArgumentError{Reason: fmt.Sprintf("output kind %s is already an input", k)}
		}
	}

	// Canonical unordered-pair identity: lower Kind first.
	first, second := a, b
	if second.Kind < first.Kind {
		first, second = second, first
	}

	out := make([]Value[N], 0, len(want))
	for _, k := range want {
		val, err := solve(first, second, k)
		if err != nil {
			return nil, err
		}
		out = append(out, Value[N]{Kind: k, Val: val})
	}
	return out, nil
}

// solve selects the closed-form solver for one (input pair, target)
// combination. first.Kind < second.Kind is guaranteed by Resolve, which
// leaves six pair identities with two resolvable targets each.
func solve[N Float](first, second Value[N], target Kind) (N, error) {
	switch {
	case first.Kind == Impulse && second.Kind == Gravity:
		v, g := first.Val, second.Val
		if target == Height {
			return HeightFromImpulseAndGravity(v, g)
		}
		return TimeFromImpulseAndGravity(v, g)

	case first.Kind == Impulse && second.Kind == Height:
		v, h := first.Val, second.Val
		if target == Gravity {
			return GravityFromHeightAndImpulse(h, v)
		}
		return TimeFromHeightAndImpulse(h, v)

	case first.Kind == Impulse && second.Kind == Time:
		v, t := first.Val, second.Val
		if target == Gravity {
			return GravityFromTimeAndImpulse(t, v)
		}
		return HeightFromTimeAndImpulse(t, v), nil

	case first.Kind == Gravity && second.Kind == Height:
		g, h := first.Val, second.Val
		if target == Impulse {
			return ImpulseFromHeightAndGravity(h, g), nil
		}
		return TimeFromHeightAndGravity(h, g)

	case first.Kind == Gravity && second.Kind == Time:
		g, t := first.Val, second.Val
		if target == Impulse {
			return ImpulseFromTimeAndGravity(t, g), nil
		}
		return HeightFromTimeAndGravity(t, g), nil

	default: // Height, Time
		h, t := first.Val, second.Val
		if target == Impulse {
			return ImpulseFromHeightAndTime(h, t)
		}
		return GravityFromHeightAndTime(h, t)
	}
}
