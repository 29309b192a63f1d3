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

// withTxn runs fn inside a Mongo transaction so the overlap check and the
// write commit or abort together. Without this, two concurrent bookings for
// the same key could both pass the check before either writes.
func (r *MongoRentSessionRepo) withTxn(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// Create inserts a session after re-checking the booking window inside the
// same transaction as the insert.
func (r *MongoRentSessionRepo) Create(ctx context.Context, session *models.RentSession) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	key := ConflictKey{
		Patient:  session.Patient,
		Device:   session.Device,
		DateFrom: session.DateFrom,
		DateTo:   session.DateTo,
	}

	err := r.withTxn(ctx, func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(key))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}
		if _, err := r.coll.InsertOne(sc, session); err != nil {
			return fmt.Errorf("insert rent session failed: %w", err)
		}
		return nil
	})
	if err == ErrOverlap {
		return ErrOverlap
	}
	if err != nil {
		return fmt.Errorf("rent session create transaction failed: %w", err)
	}
	return nil
}

// Update applies a $set document and returns the updated session. When key
// is non-nil the overlap check runs inside the same transaction as the
// write, excluding the session being updated.
func (r *MongoRentSessionRepo) Update(ctx context.Context, id string, set bson.M, key *ConflictKey) (*models.RentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var updated models.RentSession
	err := r.withTxn(ctx, func(sc mongo.SessionContext) error {
		if key != nil {
			count, err := r.coll.CountDocuments(sc, overlapFilter(*key))
			if err != nil {
				return fmt.Errorf("overlap check failed: %w", err)
			}
			if count > 0 {
				return ErrOverlap
			}
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := r.coll.FindOneAndUpdate(
			sc,
			bson.M{"rentSessionId": id},
			bson.M{"$set": set},
			opts,
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("update rent session %s failed: %w", id, err)
		}
		return nil
	})
	if err == ErrOverlap || err == ErrNotFound {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("rent session update transaction failed: %w", err)
	}
	return &updated, nil
}
