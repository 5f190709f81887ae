// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonflow/models"
)

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByBarberAndRange(ctx context.Context, barberID string, from, to time.Time) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"barberId": barberID,
		"start":    bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoAppointmentRepo) ListByRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"start": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.M{"start": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

// overlapFilter matches non-cancelled appointments of the barber whose
// half-open [start, end) range overlaps the given one. excludeID, when set,
// leaves out the appointment being edited.
func overlapFilter(barberID string, start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"barberId": barberID,
		"status":   bson.M{"$ne": models.StatusCancelled},
		"start":    bson.M{"$lt": end},
		"end":      bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// CreateIfFree inserts the appointment after re-running the overlap check in
// the same transaction, closing the race between "compute available slots"
// and "commit the booking". Returns ErrSlotTaken when a competing write got
// there first.
func (r *mongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		n, err := r.coll.CountDocuments(sc, overlapFilter(appt.BarberID, appt.Start, appt.End, ""))
		if err != nil {
			return nil, fmt.Errorf("overlap re-check: %w", err)
		}
		if n > 0 {
			return nil, ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("insert appointment: %w", err)
		}
		return nil, nil
	})
	return err
}

// UpdateIfFree replaces the appointment after re-checking overlap against
// everything except itself.
func (r *mongoAppointmentRepo) UpdateIfFree(ctx context.Context, appt *models.Appointment) error {
	appt.UpdatedAt = time.Now()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		n, err := r.coll.CountDocuments(sc, overlapFilter(appt.BarberID, appt.Start, appt.End, appt.ID))
		if err != nil {
			return nil, fmt.Errorf("overlap re-check: %w", err)
		}
		if n > 0 {
			return nil, ErrSlotTaken
		}
		res, err := r.coll.ReplaceOne(sc, bson.M{"id": appt.ID}, appt)
		if err != nil {
			return nil, fmt.Errorf("replace appointment: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, ErrAppointmentNotFound
		}
		return nil, nil
	})
	return err
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	return r.setFields(ctx, id, bson.M{"status": status})
}

func (r *mongoAppointmentRepo) SetPaid(ctx context.Context, id string, paid bool) error {
	return r.setFields(ctx, id, bson.M{"paid": paid})
}

func (r *mongoAppointmentRepo) setFields(ctx context.Context, id string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
