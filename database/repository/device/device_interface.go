package deviceRepo

import (
	"context"
	"errors"

	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no device matches the given ID.
var ErrNotFound = errors.New("device not found")

// DeviceRepository defines data access for devices.
type DeviceRepository interface {
	// GetByID retrieves a device by deviceId.
	GetByID(ctx context.Context, id string) (*models.Device, error)
	// GetBySerial retrieves a device by serial number, or nil when absent.
	GetBySerial(ctx context.Context, serialNumber string) (*models.Device, error)
	// Create inserts a new device record.
	Create(ctx context.Context, device *models.Device) error
	// Update applies an update document and returns the updated device.
	Update(ctx context.Context, id string, update bson.M) (*models.Device, error)
	// Delete removes a device record by deviceId.
	Delete(ctx context.Context, id string) error
	// GetAll retrieves all devices.
	GetAll(ctx context.Context) ([]models.Device, error)
	// Count counts devices matching the given filter.
	Count(ctx context.Context, filter bson.M) (int64, error)
	// TypeBreakdown groups devices by type with availability counts.
	TypeBreakdown(ctx context.Context) ([]models.DeviceTypeGroup, error)
}
