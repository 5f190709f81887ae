// File: database/repository/sale/sale.go
package saleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonflow/database"
	"salonflow/models"
)

// SaleRepository persists completed checkouts.
type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	ListByRange(ctx context.Context, from, to time.Time) ([]models.Sale, error)
}

type mongoSaleRepo struct {
	coll *mongo.Collection
}

// NewMongoSaleRepo constructs a new MongoDB SaleRepository.
func NewMongoSaleRepo() SaleRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoSaleRepo{
		coll: db.Collection("sales"),
	}
}

func (r *mongoSaleRepo) Create(ctx context.Context, sale *models.Sale) error {
	sale.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *mongoSaleRepo) ListByRange(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.coll.Find(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lt": to},
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []models.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}
