package rentsessionRepo

import (
	"context"
	"fmt"
	"time"

	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a session by its rentSessionId regardless of deletion.
func (r *MongoRentSessionRepo) GetByID(ctx context.Context, id string) (*models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.RentSession
	err := r.coll.FindOne(ctx, bson.M{"rentSessionId": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching rent session %s: %w", id, err)
	}
	return &session, nil
}

// GetActiveByID retrieves a non-deleted session by its rentSessionId.
func (r *MongoRentSessionRepo) GetActiveByID(ctx context.Context, id string) (*models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.RentSession
	err := r.coll.FindOne(ctx, bson.M{"rentSessionId": id, "isDeleted": false}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching rent session %s: %w", id, err)
	}
	return &session, nil
}

// GetAll retrieves all non-deleted sessions.
func (r *MongoRentSessionRepo) GetAll(ctx context.Context) ([]models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return nil, fmt.Errorf("error fetching rent sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.RentSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding rent sessions: %w", err)
	}
	return sessions, nil
}
