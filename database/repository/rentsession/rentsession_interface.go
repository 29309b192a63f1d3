package rentsessionRepo

import (
	"context"
	"errors"
	"time"

	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Sentinel errors surfaced to the service layer.
var (
	// ErrNotFound is returned when no session matches the given ID.
	ErrNotFound = errors.New("rent session not found")
	// ErrOverlap is returned when a write would double-book the
	// (patient, device) key for an overlapping date window.
	ErrOverlap = errors.New("overlapping rent session exists")
)

// ConflictKey identifies the booking window a write must not collide with.
type ConflictKey struct {
	Patient   string
	Device    string
	DateFrom  string
	DateTo    string
	ExcludeID string
}

// RentSessionRepository defines data access for rent sessions.
type RentSessionRepository interface {
	// Create inserts a session. The overlap check and the insert run in one
	// transaction; ErrOverlap is returned when the window is already booked.
	Create(ctx context.Context, session *models.RentSession) error
	// Update applies a $set document to the session with the given ID and
	// returns the updated record. When key is non-nil the overlap check runs
	// in the same transaction as the write.
	Update(ctx context.Context, id string, set bson.M, key *ConflictKey) (*models.RentSession, error)
	// GetByID retrieves a session by its rentSessionId, deleted or not.
	GetByID(ctx context.Context, id string) (*models.RentSession, error)
	// GetActiveByID retrieves a non-deleted session by its rentSessionId.
	GetActiveByID(ctx context.Context, id string) (*models.RentSession, error)
	// GetAll retrieves all non-deleted sessions.
	GetAll(ctx context.Context) ([]models.RentSession, error)
	// FindOverlapping returns a non-deleted session on the same
	// (patient, device) key whose window overlaps the given one, or nil.
	FindOverlapping(ctx context.Context, key ConflictKey) (*models.RentSession, error)
	// FindByFilePath returns the non-deleted session referencing the given
	// stored artifact path, or nil.
	FindByFilePath(ctx context.Context, path string) (*models.RentSession, error)

	// Dashboard aggregations.
	Count(ctx context.Context, filter bson.M) (int64, error)
	FinancialTotalsSince(ctx context.Context, since time.Time) (*models.FinancialTotals, error)
	PaymentBreakdown(ctx context.Context) ([]models.PaymentStatusGroup, error)
	Recent(ctx context.Context, limit int64) ([]models.RentSession, error)
}
