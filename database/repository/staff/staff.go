// File: database/repository/staff/staff.go
package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonflow/database"
	"salonflow/models"
)

// ErrStaffNotFound is returned when no staff account matches.
var ErrStaffNotFound = errors.New("staff not found")

// StaffRepository manages POS staff accounts.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoStaffRepo{
		coll: db.Collection("staff"),
	}
}

func (r *mongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	staff.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoStaffRepo) findOne(ctx context.Context, filter bson.M) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, filter).Decode(&staff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("find staff: %w", err)
	}
	return &staff, nil
}
