package models

import "time"

// SalonService is a bookable catalogue entry (cut, colour, shave, ...).
// BufferMin is reserved after the service so consecutive bookings do not
// touch; clients never see it.
type SalonService struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	DurationMin int       `bson:"durationMin" json:"durationMin"`
	BufferMin   int       `bson:"bufferMin" json:"bufferMin"`
	Price       float64   `bson:"price" json:"price"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
