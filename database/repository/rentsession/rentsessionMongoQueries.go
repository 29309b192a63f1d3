package rentsessionRepo

import (
	"context"
	"fmt"
	"time"

	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter builds the three-clause inclusive-boundary overlap query for
// non-deleted sessions on the same (patient, device) key. Dates are
// fixed-format "YYYY-MM-DD" strings, so $lte/$gte compare correctly.
func overlapFilter(key ConflictKey) bson.M {
	filter := bson.M{
		"patient":   key.Patient,
		"device":    key.Device,
		"isDeleted": false,
		"$or": []bson.M{
			// Existing window contains the new start.
			{
				"dateFrom": bson.M{"$lte": key.DateFrom},
				"dateTo":   bson.M{"$gte": key.DateFrom},
			},
			// Existing window contains the new end.
			{
				"dateFrom": bson.M{"$lte": key.DateTo},
				"dateTo":   bson.M{"$gte": key.DateTo},
			},
			// New window encompasses the existing one.
			{
				"dateFrom": bson.M{"$gte": key.DateFrom},
				"dateTo":   bson.M{"$lte": key.DateTo},
			},
		},
	}
	if key.ExcludeID != "" {
		filter["rentSessionId"] = bson.M{"$ne": key.ExcludeID}
	}
	return filter
}

// FindOverlapping returns a session conflicting with the given key, or nil.
func (r *MongoRentSessionRepo) FindOverlapping(ctx context.Context, key ConflictKey) (*models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.RentSession
	err := r.coll.FindOne(ctx, overlapFilter(key)).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping rent sessions: %w", err)
	}
	return &session, nil
}

// FindByFilePath returns the non-deleted session that references the given
// stored artifact path either as its report or its consent file.
func (r *MongoRentSessionRepo) FindByFilePath(ctx context.Context, path string) (*models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"isDeleted": false,
		"$or": []bson.M{
			{"report.path": path},
			{"patientConsentFilePath": path},
		},
	}
	var session models.RentSession
	err := r.coll.FindOne(ctx, filter).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying rent session by file path: %w", err)
	}
	return &session, nil
}

// Count counts sessions matching the given filter.
func (r *MongoRentSessionRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting rent sessions: %w", err)
	}
	return n, nil
}

// Recent returns the most recently created non-deleted sessions.
func (r *MongoRentSessionRepo) Recent(ctx context.Context, limit int64) ([]models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"isDeleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent rent sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.RentSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("error decoding recent rent sessions: %w", err)
	}
	return sessions, nil
}
