// File: database/repository/barber/crud.go
package barberRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonflow/models"
)

// ErrBarberNotFound is returned when no barber matches the given ID.
var ErrBarberNotFound = errors.New("barber not found")

func (r *mongoBarberRepo) Create(ctx context.Context, barber *models.Barber) error {
	barber.CreatedAt = time.Now()
	barber.UpdatedAt = barber.CreatedAt
	if _, err := r.coll.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("insert barber: %w", err)
	}
	return nil
}

func (r *mongoBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	var barber models.Barber
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&barber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBarberNotFound
		}
		return nil, fmt.Errorf("find barber %s: %w", id, err)
	}
	return &barber, nil
}

func (r *mongoBarberRepo) GetActive(ctx context.Context) ([]models.Barber, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *mongoBarberRepo) List(ctx context.Context) ([]models.Barber, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoBarberRepo) find(ctx context.Context, filter bson.M) ([]models.Barber, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find barbers: %w", err)
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("decode barbers: %w", err)
	}
	return barbers, nil
}

func (r *mongoBarberRepo) Update(ctx context.Context, barber *models.Barber) error {
	barber.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": barber.ID}, barber)
	if err != nil {
		return fmt.Errorf("update barber %s: %w", barber.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBarberNotFound
	}
	return nil
}

func (r *mongoBarberRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete barber %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrBarberNotFound
	}
	return nil
}

func (r *mongoBarberRepo) SetWorkingWindows(ctx context.Context, barberID string, windows []models.WorkingWindow) error {
	return r.setField(ctx, barberID, bson.M{"workingWindows": windows})
}

func (r *mongoBarberRepo) SaveLunchBreak(ctx context.Context, barberID string, lunch models.LunchBreak) error {
	return r.setField(ctx, barberID, bson.M{"lunchBreak": lunch})
}

func (r *mongoBarberRepo) DeleteLunchBreak(ctx context.Context, barberID string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": barberID}, bson.M{
		"$unset": bson.M{"lunchBreak": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("delete lunch break for %s: %w", barberID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBarberNotFound
	}
	return nil
}

func (r *mongoBarberRepo) setField(ctx context.Context, barberID string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": barberID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update barber %s: %w", barberID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBarberNotFound
	}
	return nil
}
