package schedule

import (
	"fmt"
	"time"

	"salonflow/models"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// AtMinute combines a calendar date with minutes from midnight in loc.
func AtMinute(date time.Time, minute int, loc *time.Location) time.Time {
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, 0, minute, 0, 0, loc)
}

// DayWindow resolves a barber's working interval for one date. ok is false
// when the barber simply does not work that weekday - an empty day, not an
// error. A non-nil error flags an inconsistent window row (start >= end),
// which is rejected from the computation per the data layer's contract.
func DayWindow(b models.Barber, date time.Time, loc *time.Location) (Interval, bool, error) {
	w, found := b.WindowFor(date.In(loc).Weekday())
	if !found || !w.Active {
		return Interval{}, false, nil
	}
	iv, err := NewInterval(AtMinute(date, w.StartMinute, loc), AtMinute(date, w.EndMinute, loc))
	if err != nil {
		return Interval{}, false, fmt.Errorf("working window for barber %s on %s: %w",
			b.ID, date.In(loc).Format(DateLayout), err)
	}
	return iv, true, nil
}
