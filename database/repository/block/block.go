// File: database/repository/block/block.go
package blockRepo

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

// ErrBlockNotFound is returned when no custom block matches the given ID.
var ErrBlockNotFound = errors.New("custom block not found")

// BlockRepository manages one-off custom blocks.
type BlockRepository interface {
	Create(ctx context.Context, block *models.CustomBlock) error
	GetByID(ctx context.Context, id string) (*models.CustomBlock, error)
	GetByBarberAndDate(ctx context.Context, barberID, date string) ([]models.CustomBlock, error)
	GetByDate(ctx context.Context, date string) ([]models.CustomBlock, error)
	Update(ctx context.Context, block *models.CustomBlock) error
	Delete(ctx context.Context, id string) error
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoBlockRepo{
		coll: db.Collection("blocks"),
	}
}

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.CustomBlock) error {
	block.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("insert custom block: %w", err)
	}
	return nil
}

func (r *mongoBlockRepo) GetByID(ctx context.Context, id string) (*models.CustomBlock, error) {
	var block models.CustomBlock
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("find custom block %s: %w", id, err)
	}
	return &block, nil
}

func (r *mongoBlockRepo) GetByBarberAndDate(ctx context.Context, barberID, date string) ([]models.CustomBlock, error) {
	return r.find(ctx, bson.M{"barberId": barberID, "date": date})
}

func (r *mongoBlockRepo) GetByDate(ctx context.Context, date string) ([]models.CustomBlock, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *mongoBlockRepo) find(ctx context.Context, filter bson.M) ([]models.CustomBlock, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find custom blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.CustomBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("decode custom blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoBlockRepo) Update(ctx context.Context, block *models.CustomBlock) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": block.ID}, block)
	if err != nil {
		return fmt.Errorf("update custom block %s: %w", block.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (r *mongoBlockRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete custom block %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrBlockNotFound
	}
	return nil
}
