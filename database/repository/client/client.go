// File: database/repository/client/client.go
package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonflow/database"
	"salonflow/models"
)

// ErrClientNotFound is returned when no client matches the given ID.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository manages the salon's customer directory.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Search(ctx context.Context, query string) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}

func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("find client %s: %w", id, err)
	}
	return &client, nil
}

func (r *mongoClientRepo) Search(ctx context.Context, query string) ([]models.Client, error) {
	filter := bson.M{}
	if query != "" {
		filter["$or"] = bson.A{
			bson.M{"fullName": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"phone": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": query, "$options": "i"}},
		}
	}
	opts := options.Find().SetSort(bson.M{"fullName": 1}).SetLimit(50)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": client.ID}, client)
	if err != nil {
		return fmt.Errorf("update client %s: %w", client.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *mongoClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}
