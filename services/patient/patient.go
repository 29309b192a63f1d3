// Package patient manages the patient registry rent sessions reference.
package patient

import (
	"context"

	patientRepo "medonrent/database/repository/patient"
	"medonrent/models"
	"medonrent/services/sequence"
)

// defaultPortalPassword seeds new patient records; patients change it
// through the portal, which is outside this service.
const defaultPortalPassword = "Patient@2025"

// PatientService manages patient records.
type PatientService interface {
	Create(ctx context.Context, input *models.CreatePatientInput, actorID string) (*models.Patient, error)
	Update(ctx context.Context, id string, patch *models.UpdatePatientInput, actorID string) (*models.Patient, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
}

// DefaultPatientService implements PatientService.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
	Seq  sequence.Allocator
}
