// Package trajectory resolves the parameters of a ballistic jump arc from
// designer-friendly quantities. Any two of the four parameters — initial
// vertical impulse, gravity, peak height, time to apex — fully determine the
// other two, so gameplay code can tune a jump by peak height and apex time
// and recompute impulse and gravity mid-flight (variable jump height, double
// jumps, wall jumps).
//
// Everything in this package is a pure function of its inputs; calls are safe
// from any goroutine.
package trajectory

// Kind identifies which role a numeric value plays in a jump arc.
type Kind int

const (
	Impulse Kind = iota // initial vertical velocity at launch
	Gravity             // constant vertical acceleration during flight
	Height              // peak altitude above the launch point
	Time                // elapsed time from launch to the peak
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Impulse:
		return "Impulse"
	case Gravity:
		return "Gravity"
	case Height:
		return "Height"
	case Time:
		return "Time"
	}
	return "Unknown"
}
