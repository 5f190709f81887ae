// File: database/repository/barber/interface.go
package barberRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonflow/database"
	"salonflow/models"
)

// BarberRepository manages barbers and their embedded weekly schedule
// (working windows and the single recurring lunch break).
type BarberRepository interface {
	Create(ctx context.Context, barber *models.Barber) error
	GetByID(ctx context.Context, id string) (*models.Barber, error)
	GetActive(ctx context.Context) ([]models.Barber, error)
	List(ctx context.Context) ([]models.Barber, error)
	Update(ctx context.Context, barber *models.Barber) error
	Delete(ctx context.Context, id string) error

	SetWorkingWindows(ctx context.Context, barberID string, windows []models.WorkingWindow) error
	SaveLunchBreak(ctx context.Context, barberID string, lunch models.LunchBreak) error
	DeleteLunchBreak(ctx context.Context, barberID string) error
}

type mongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo constructs a new MongoDB BarberRepository.
func NewMongoBarberRepo() BarberRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoBarberRepo{
		coll: db.Collection("barbers"),
	}
}
