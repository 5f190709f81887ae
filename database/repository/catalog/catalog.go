// File: database/repository/catalog/catalog.go
package catalogRepo

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

// ErrServiceNotFound is returned when no catalogue entry matches the ID.
var ErrServiceNotFound = errors.New("service not found")

// CatalogRepository manages the salon's bookable service catalogue.
type CatalogRepository interface {
	Create(ctx context.Context, svc *models.SalonService) error
	GetByID(ctx context.Context, id string) (*models.SalonService, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.SalonService, error)
	ListActive(ctx context.Context) ([]models.SalonService, error)
	Update(ctx context.Context, svc *models.SalonService) error
	Delete(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoCatalogRepo{
		coll: db.Collection("services"),
	}
}

func (r *mongoCatalogRepo) Create(ctx context.Context, svc *models.SalonService) error {
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.SalonService, error) {
	var svc models.SalonService
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service %s: %w", id, err)
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) GetByIDs(ctx context.Context, ids []string) ([]models.SalonService, error) {
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *mongoCatalogRepo) ListActive(ctx context.Context) ([]models.SalonService, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *mongoCatalogRepo) find(ctx context.Context, filter bson.M) ([]models.SalonService, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (r *mongoCatalogRepo) Update(ctx context.Context, svc *models.SalonService) error {
	svc.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("update service %s: %w", svc.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *mongoCatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}
