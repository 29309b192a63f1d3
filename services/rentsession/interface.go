package rentsession

import (
	"context"

	deviceRepo "medonrent/database/repository/device"
	patientRepo "medonrent/database/repository/patient"
	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/models"
	"medonrent/services/sequence"
)

// RentSessionService manages the rent session lifecycle: creation with
// conflict detection and ID allocation, partial updates, and soft deletion.
type RentSessionService interface {
	Create(ctx context.Context, input *models.CreateRentSessionInput, actorID string) (*models.RentSession, error)
	Update(ctx context.Context, id string, patch *models.UpdateRentSessionInput, actorID string) (*models.RentSession, error)
	SoftDelete(ctx context.Context, id, actorID string) (*models.RentSession, error)
	GetByID(ctx context.Context, id string) (*models.RentSession, error)
	GetAll(ctx context.Context) ([]models.RentSession, error)
	HasConflict(ctx context.Context, deviceRef, patientRef, dateFrom, dateTo, excludeID string) (bool, error)
}

// DefaultRentSessionService implements RentSessionService.
type DefaultRentSessionService struct {
	Repo        rentsessionRepo.RentSessionRepository
	PatientRepo patientRepo.PatientRepository
	DeviceRepo  deviceRepo.DeviceRepository
	Seq         sequence.Allocator
}
