package counterRepo

import (
	"context"
	"fmt"
	"time"

	"medonrent/database"
	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCounterRepo implements CounterRepository using MongoDB.
type MongoCounterRepo struct {
	coll *mongo.Collection
}

// NewMongoCounterRepo constructs a new instance of MongoCounterRepo.
func NewMongoCounterRepo() *MongoCounterRepo {
	return &MongoCounterRepo{coll: database.DB().Collection("counters")}
}

// Next advances the named counter. The increment-and-fetch is a single
// findOneAndUpdate with upsert, so two concurrent callers can never observe
// the same post-increment value.
func (r *MongoCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": name}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to advance counter %q: %w", name, err)
	}
	return counter.Seq, nil
}

// EnsureIndexes creates the unique index on counter names.
func (r *MongoCounterRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create counter name index: %w", err)
	}
	return nil
}
