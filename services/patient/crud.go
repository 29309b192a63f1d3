package patient

import (
	"context"
	"errors"
	"strings"
	"time"

	patientRepo "medonrent/database/repository/patient"
	"medonrent/models"
	"medonrent/services/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Create mints a patient ID and inserts the record. Mobile numbers are
// unique; a duplicate is rejected before any write.
func (s *DefaultPatientService) Create(ctx context.Context, input *models.CreatePatientInput, actorID string) (*models.Patient, error) {
	name := strings.TrimSpace(input.PatientName)
	mobile := strings.TrimSpace(input.MobileNo)
	if name == "" || mobile == "" || strings.TrimSpace(input.Address) == "" {
		return nil, apperrors.NewValidation("All fields are required")
	}

	existing, err := s.Repo.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, apperrors.NewStorage("patient lookup failed", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict("Patient already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPortalPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewStorage("failed to hash default password", err)
	}

	id, err := s.Seq.PatientID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &models.Patient{
		PatientID:   id,
		PatientName: name,
		MobileNo:    mobile,
		Email:       strings.TrimSpace(input.Email),
		DateOfBirth: input.DateOfBirth,
		Height:      input.Height,
		Weight:      input.Weight,
		SleepTime:   input.SleepTime,
		WakeUpTime:  input.WakeUpTime,
		Address:     strings.TrimSpace(input.Address),
		Notes:       input.Notes,
		Password:    string(hashed),
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, patient); err != nil {
		return nil, apperrors.NewStorage("failed to create patient", err)
	}
	return patient, nil
}

// Update applies the allow-listed patch; patientID and password are not
// patchable by construction.
func (s *DefaultPatientService) Update(ctx context.Context, id string, patch *models.UpdatePatientInput, actorID string) (*models.Patient, error) {
	set := bson.M{}
	for field, p := range map[string]*string{
		"patientName": patch.PatientName,
		"mobileNo":    patch.MobileNo,
		"email":       patch.Email,
		"dateOfBirth": patch.DateOfBirth,
		"height":      patch.Height,
		"weight":      patch.Weight,
		"sleeptime":   patch.SleepTime,
		"wakeUpTime":  patch.WakeUpTime,
		"address":     patch.Address,
		"notes":       patch.Notes,
	} {
		if p != nil {
			set[field] = strings.TrimSpace(*p)
		}
	}
	set["updatedBy"] = actorID
	set["updatedAt"] = time.Now()

	updated, err := s.Repo.Update(ctx, id, set)
	if errors.Is(err, patientRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Patient not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage("failed to update patient", err)
	}
	return updated, nil
}

// Delete removes a patient record.
func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, patientRepo.ErrNotFound) {
		return apperrors.NewNotFound("Patient not found")
	}
	if err != nil {
		return apperrors.NewStorage("failed to delete patient", err)
	}
	return nil
}

// GetByID retrieves a patient.
func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, patientRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Patient not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage("patient lookup failed", err)
	}
	return patient, nil
}

// GetAll retrieves all patients.
func (s *DefaultPatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorage("failed to list patients", err)
	}
	return patients, nil
}
