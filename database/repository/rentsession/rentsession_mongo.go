package rentsessionRepo

import (
	"context"
	"fmt"
	"time"

	"medonrent/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRentSessionRepo implements RentSessionRepository using MongoDB.
type MongoRentSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoRentSessionRepo constructs a new instance of MongoRentSessionRepo.
func NewMongoRentSessionRepo() *MongoRentSessionRepo {
	return &MongoRentSessionRepo{coll: database.DB().Collection("rentSessions")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// EnsureIndexes creates the unique session-id index and the compound index
// backing the overlap query.
func (r *MongoRentSessionRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "rentSessionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "patient", Value: 1},
				{Key: "device", Value: 1},
				{Key: "isDeleted", Value: 1},
				{Key: "dateFrom", Value: 1},
				{Key: "dateTo", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create rent session indexes: %w", err)
	}
	return nil
}
