package schedule

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End). Instants are absolute
// (date and time-of-day combined) so ranges near midnight stay unambiguous.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an Interval, rejecting inverted or empty ranges.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: start=%s end=%s", ErrInvertedInterval,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether iv and other share any instant. Half-open
// semantics: an appointment ending at 14:00 does not overlap one starting at
// 14:00. This is the single overlap primitive in the codebase; every other
// component must route through it.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return !iv.Start.After(other.Start) && !other.End.After(iv.End)
}

// Clip returns the portion of iv inside bounds. ok is false when nothing of
// iv remains.
func (iv Interval) Clip(bounds Interval) (Interval, bool) {
	s, e := iv.Start, iv.End
	if s.Before(bounds.Start) {
		s = bounds.Start
	}
	if e.After(bounds.End) {
		e = bounds.End
	}
	if !e.After(s) {
		return Interval{}, false
	}
	return Interval{Start: s, End: e}, true
}

// Duration is the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}
