package trajectory

import "errors"

// ErrZeroSpeed is returned by the horizontal helpers when the horizontal
// speed is exactly zero.
var ErrZeroSpeed = errors.New("trajectory: horizontal speed must not be zero")

// TimeFromSpeedAndRange returns the time to apex of a symmetric arc that
// covers rng horizontally at constant speed: the apex is reached after half
// the range. Useful for tuning a jump to clear a gap of known width.
func TimeFromSpeedAndRange[N Float](speed, rng N) (N, error) {
	if speed == 0 {
		return 0, ErrZeroSpeed
	}
	return rng / 2 / speed, nil
}

// TimeSplitFromSpeedAndRange splits the apex time of such an arc into a rise
// and a fall share by ratio (rise = time·ratio, fall = time·(1-ratio)), for
// arcs that use a different gravity on the way down.
func TimeSplitFromSpeedAndRange[N Float](speed, rng, ratio N) (rise, fall N, err error) {
	if speed == 0 {
		return 0, 0, ErrZeroSpeed
	}
	t := rng / 2 / speed
	return t * ratio, t * (1 - ratio), nil
}
