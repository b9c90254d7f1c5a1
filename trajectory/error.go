package trajectory

import "fmt"

// DivisionByZeroError reports which known parameter made a solver's
// denominator vanish. Divisors are compared against exact zero, not an
// epsilon; a zero divisor is permanent for that input, so callers should
// not retry.
type DivisionByZeroError struct {
	Param Kind
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s must not be zero", e.Param)
}

// ArgumentError reports a malformed resolution request: duplicate input
// kinds, no requested output, or a requested output that is already an
// input. These are caller bugs, rejected before any solver runs.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return "trajectory: invalid request: " + e.Reason
}
