package models

import "time"

// WorkingWindow is the time-of-day range a barber is bookable on one weekday.
// Times are minutes from midnight in the salon timezone (e.g. 600 for 10:00).
// A barber owns at most one window per weekday; a missing entry or
// Active=false means the barber does not work that day.
type WorkingWindow struct {
	Weekday     time.Weekday `bson:"weekday" json:"weekday"`
	StartMinute int          `bson:"startMinute" json:"startMinute"`
	EndMinute   int          `bson:"endMinute" json:"endMinute"`
	Active      bool         `bson:"active" json:"active"`
}

// LunchBreak is a barber's single recurring break. When active it blocks the
// same time-of-day range on every working day.
type LunchBreak struct {
	StartMinute int  `bson:"startMinute" json:"startMinute"`
	EndMinute   int  `bson:"endMinute" json:"endMinute"`
	Active      bool `bson:"active" json:"active"`
}

// Barber is a bookable resource: a stylist with a weekly schedule.
type Barber struct {
	ID             string          `bson:"id" json:"id"`
	FullName       string          `bson:"fullName" json:"fullName"`
	Email          string          `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Active         bool            `bson:"active" json:"active"`
	WorkingWindows []WorkingWindow `bson:"workingWindows,omitempty" json:"workingWindows,omitempty"`
	LunchBreak     *LunchBreak     `bson:"lunchBreak,omitempty" json:"lunchBreak,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// WindowFor returns the barber's working window for a weekday, if any.
func (b Barber) WindowFor(wd time.Weekday) (WorkingWindow, bool) {
	for _, w := range b.WorkingWindows {
		if w.Weekday == wd {
			return w, true
		}
	}
	return WorkingWindow{}, false
}
