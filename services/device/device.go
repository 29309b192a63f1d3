// Package device manages the rental device inventory.
package device

import (
	"context"

	deviceRepo "medonrent/database/repository/device"
	"medonrent/models"
	"medonrent/services/sequence"
)

// DeviceService manages device records and their maintenance history.
type DeviceService interface {
	Create(ctx context.Context, input *models.CreateDeviceInput, actorID string) (*models.Device, error)
	Update(ctx context.Context, id string, patch *models.UpdateDeviceInput, actorID string) (*models.Device, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Device, error)
	GetAll(ctx context.Context) ([]models.Device, error)
}

// DefaultDeviceService implements DeviceService.
type DefaultDeviceService struct {
	Repo deviceRepo.DeviceRepository
	Seq  sequence.Allocator
}
