// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"salonflow/database"
	"salonflow/models"
)

var (
	// ErrAppointmentNotFound is returned when no appointment matches the ID.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSlotTaken is returned when the transactional overlap re-check finds
	// a competing appointment at commit time. It is retriable: the caller
	// should refresh availability and offer the client another slot. It is
	// deliberately distinct from a validation error.
	ErrSlotTaken = errors.New("slot already taken")
)

// AppointmentRepository persists appointments. The write path re-validates
// overlap inside a transaction so two concurrent bookings cannot both land on
// the same slot after both saw it free.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByBarberAndRange(ctx context.Context, barberID string, from, to time.Time) ([]models.Appointment, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)

	CreateIfFree(ctx context.Context, appt *models.Appointment) error
	UpdateIfFree(ctx context.Context, appt *models.Appointment) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	SetPaid(ctx context.Context, id string, paid bool) error
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoAppointmentRepo{
		client: database.MongoClient,
		coll:   db.Collection("appointments"),
	}
}
