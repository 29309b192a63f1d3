package patientRepo

import (
	"context"
	"errors"

	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no patient matches the given ID.
var ErrNotFound = errors.New("patient not found")

// PatientRepository defines data access for patients.
type PatientRepository interface {
	// GetByID retrieves a patient by patientID.
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	// GetByMobile retrieves a patient by mobile number, or nil when absent.
	GetByMobile(ctx context.Context, mobileNo string) (*models.Patient, error)
	// Create inserts a new patient record.
	Create(ctx context.Context, patient *models.Patient) error
	// Update applies a $set document and returns the updated patient.
	Update(ctx context.Context, id string, set bson.M) (*models.Patient, error)
	// Delete removes a patient record by patientID.
	Delete(ctx context.Context, id string) error
	// GetAll retrieves all patients.
	GetAll(ctx context.Context) ([]models.Patient, error)
	// Count counts patients matching the given filter.
	Count(ctx context.Context, filter bson.M) (int64, error)
}
