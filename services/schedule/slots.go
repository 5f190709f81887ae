package schedule

import "time"

// AvailableSlots walks candidate start times from window.Start in steps of
// step and keeps those where a booking of length duration fits: it may not
// overrun window.End, may not start before now, and may not overlap any
// blocked interval. Results are in ascending order; an empty result means
// fully booked, which is a normal outcome.
//
// All times are expected to be in the salon's location.
func AvailableSlots(window Interval, blocked []BlockedInterval, duration, step time.Duration, now time.Time) []time.Time {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var slots []time.Time
	for c := window.Start; !c.Add(duration).After(window.End); c = c.Add(step) {
		if c.Before(now) {
			continue
		}
		candidate := Interval{Start: c, End: c.Add(duration)}
		if overlapsAny(candidate, blocked, "") {
			continue
		}
		slots = append(slots, c)
	}
	return slots
}

// overlapsAny reports whether iv overlaps any blocked entry, skipping the
// entry belonging to excludeAppointmentID when set.
func overlapsAny(iv Interval, blocked []BlockedInterval, excludeAppointmentID string) bool {
	for _, b := range blocked {
		if excludeAppointmentID != "" && b.AppointmentID == excludeAppointmentID {
			continue
		}
		if iv.Overlaps(b.Interval) {
			return true
		}
	}
	return false
}
