package models

import "time"

// BlockKind is the closed set of custom block categories. Each kind carries
// an explicit blocking flag so that adding a display category can never
// silently change scheduling behaviour.
type BlockKind string

const (
	BlockUnavailable BlockKind = "unavailable"
	BlockMeeting     BlockKind = "meeting"
	BlockTraining    BlockKind = "training"
	BlockReminder    BlockKind = "reminder"
)

// Valid reports whether k is one of the known kinds.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockUnavailable, BlockMeeting, BlockTraining, BlockReminder:
		return true
	}
	return false
}

// BlocksAvailability reports whether the kind removes bookable time.
// Reminders are display-only annotations on the calendar.
func (k BlockKind) BlocksAvailability() bool {
	return k != BlockReminder
}

// CustomBlock is a one-off blocked range on a specific calendar date.
type CustomBlock struct {
	ID          string    `bson:"id" json:"id"`
	BarberID    string    `bson:"barberId" json:"barberId"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	StartMinute int       `bson:"startMinute" json:"startMinute"`
	EndMinute   int       `bson:"endMinute" json:"endMinute"`
	Title       string    `bson:"title" json:"title"`
	Kind        BlockKind `bson:"kind" json:"kind"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
