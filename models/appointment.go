package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ServiceLine is one service performed in an appointment, captured at booking
// time so later catalogue edits do not rewrite history.
type ServiceLine struct {
	ServiceID   string  `bson:"serviceId" json:"serviceId"`
	Name        string  `bson:"name" json:"name"`
	DurationMin int     `bson:"durationMin" json:"durationMin"`
	BufferMin   int     `bson:"bufferMin" json:"bufferMin"`
	Price       float64 `bson:"price" json:"price"`
}

// Appointment is a confirmed booking. End already includes the trailing
// buffer of every service line; it is computed once when the appointment is
// created or rescheduled and never re-derived ad hoc. The buffer keeps the
// next client from starting immediately but is not shown as part of the
// displayed duration.
type Appointment struct {
	ID         string            `bson:"id" json:"id"`
	BarberID   string            `bson:"barberId" json:"barberId"`
	ClientID   string            `bson:"clientId,omitempty" json:"clientId,omitempty"`
	ClientName string            `bson:"clientName" json:"clientName"`
	Services   []ServiceLine     `bson:"services" json:"services"`
	Start      time.Time         `bson:"start" json:"start"`
	End        time.Time         `bson:"end" json:"end"`
	Paid       bool              `bson:"paid" json:"paid"`
	Status     AppointmentStatus `bson:"status" json:"status"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DisplayDurationMin is the duration shown to the client: service time only,
// without buffers.
func (a Appointment) DisplayDurationMin() int {
	var total int
	for _, s := range a.Services {
		total += s.DurationMin
	}
	return total
}

// TotalPrice sums the captured line prices.
func (a Appointment) TotalPrice() float64 {
	var total float64
	for _, s := range a.Services {
		total += s.Price
	}
	return total
}
