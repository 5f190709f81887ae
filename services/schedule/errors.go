package schedule

import "errors"

var (
	// ErrInvertedInterval marks a range whose end does not come after its
	// start. Records carrying one are dropped from computations rather than
	// crashing the whole query.
	ErrInvertedInterval = errors.New("inverted time range")
)
