package rentsession

import (
	"context"
	"errors"
	"time"

	deviceRepo "medonrent/database/repository/device"
	patientRepo "medonrent/database/repository/patient"
	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/models"
	"medonrent/services/apperrors"
	"medonrent/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// validateWindow checks both dates are present, well-formed and ordered.
func validateWindow(dateFrom, dateTo string) error {
	if dateFrom == "" || dateTo == "" {
		return apperrors.NewValidation("dateFrom and dateTo are required.")
	}
	if !validDate(dateFrom) {
		return apperrors.NewValidation("Invalid date: %s.", dateFrom)
	}
	if !validDate(dateTo) {
		return apperrors.NewValidation("Invalid date: %s.", dateTo)
	}
	if dateFrom > dateTo {
		return apperrors.NewValidation("dateFrom must not be after dateTo.")
	}
	return nil
}

func (s *DefaultRentSessionService) resolvePatient(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.PatientRepo.GetByID(ctx, id)
	if errors.Is(err, patientRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Patient not found.")
	}
	if err != nil {
		return nil, apperrors.NewStorage("patient lookup failed", err)
	}
	return patient, nil
}

// resolveAvailableDevice fetches the device and rejects any status other
// than "available", reporting the current status in the message.
func (s *DefaultRentSessionService) resolveAvailableDevice(ctx context.Context, id string) (*models.Device, error) {
	device, err := s.DeviceRepo.GetByID(ctx, id)
	if errors.Is(err, deviceRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Device not found.")
	}
	if err != nil {
		return nil, apperrors.NewStorage("device lookup failed", err)
	}
	if device.Status != models.DeviceAvailable {
		return nil, apperrors.NewValidation("Device is not available (current status: %s).", device.Status)
	}
	return device, nil
}

func reportFromInput(in *models.ReportInput) *models.Report {
	if !in.Valid() {
		return nil
	}
	generated := time.Now()
	if in.GeneratedDate != "" {
		if t, err := time.Parse(time.RFC3339, in.GeneratedDate); err == nil {
			generated = t
		}
	}
	return &models.Report{Path: in.Path, GeneratedDate: generated}
}

// Create validates, conflict-checks, mints an ID and persists a new rent
// session. All validation happens before any store mutation; the repository
// re-runs the conflict check atomically with the insert.
func (s *DefaultRentSessionService) Create(ctx context.Context, input *models.CreateRentSessionInput, actorID string) (*models.RentSession, error) {
	input.Trim()

	if input.Patient == "" {
		return nil, apperrors.NewValidation("Missing required fields: patient, device, dates, or totalHours.")
	}
	if err := validateWindow(input.DateFrom, input.DateTo); err != nil {
		return nil, err
	}
	status := input.InstallationStatus
	if status == "" {
		status = models.InstallationPending
	}
	if !models.ValidInstallationStatus(status) {
		return nil, apperrors.NewValidation("Invalid installation status: %s.", status)
	}

	if _, err := s.resolvePatient(ctx, input.Patient); err != nil {
		return nil, err
	}
	if input.Device == "" {
		return nil, apperrors.NewNotFound("Device not found.")
	}
	if _, err := s.resolveAvailableDevice(ctx, input.Device); err != nil {
		return nil, err
	}

	conflict, err := s.HasConflict(ctx, input.Device, input.Patient, input.DateFrom, input.DateTo, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.NewConflict("A rent session already exists for this patient, device, and date range.")
	}

	totalHours := input.TotalHours.Value()
	if computed, ok := ComputeTotalHours(input.DateFrom, input.DateTo, input.InstallTime, input.UninstallTime); ok {
		totalHours = computed
	}

	billing, err := NormalizeBilling(input.Billing, nil)
	if err != nil {
		return nil, err
	}

	id, err := s.Seq.RentSessionID(ctx)
	if err != nil {
		return nil, err
	}

	var report *models.Report
	if input.Report != nil {
		report = reportFromInput(input.Report)
	}

	now := time.Now()
	session := &models.RentSession{
		RentSessionID:          id,
		Patient:                input.Patient,
		Device:                 input.Device,
		DateFrom:               input.DateFrom,
		DateTo:                 input.DateTo,
		TotalHours:             totalHours,
		InstallerName:          input.InstallerName,
		InstallTime:            input.InstallTime,
		UninstallTime:          input.UninstallTime,
		InstallationStatus:     status,
		Report:                 report,
		ReferenceDoctorName:    input.ReferenceDoctorName,
		PatientFeedback:        input.PatientFeedback,
		Billing:                billing,
		Remarks:                input.Remarks,
		PatientConsentFilePath: input.PatientConsentFilePath,
		CancelReason:           input.CancelReason,
		CreatedBy:              actorID,
		IsDeleted:              false,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.Repo.Create(ctx, session); err != nil {
		if errors.Is(err, rentsessionRepo.ErrOverlap) {
			return nil, apperrors.NewConflict("A rent session already exists for this patient, device, and date range.")
		}
		return nil, apperrors.NewStorage("failed to persist rent session", err)
	}

	utils.GetLogger().Info("rent session created",
		zap.String("rentSessionId", session.RentSessionID),
		zap.String("patient", session.Patient),
		zap.String("device", session.Device),
	)
	return session, nil
}

// Update merges an allow-listed patch over the stored session. Referenced
// entities are re-validated and the conflict check re-run only when the
// patch touches the relevant fields.
func (s *DefaultRentSessionService) Update(ctx context.Context, id string, patch *models.UpdateRentSessionInput, actorID string) (*models.RentSession, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, rentsessionRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Rent session not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage("rent session lookup failed", err)
	}
	if existing.IsDeleted {
		return nil, apperrors.NewState("Rent session is deleted and cannot be modified")
	}

	patch.Trim()

	if patch.Patient != nil {
		if *patch.Patient == "" {
			return nil, apperrors.NewValidation("Patient ID is required.")
		}
		if _, err := s.resolvePatient(ctx, *patch.Patient); err != nil {
			return nil, err
		}
	}
	if patch.Device != nil {
		if _, err := s.resolveAvailableDevice(ctx, *patch.Device); err != nil {
			return nil, err
		}
	}

	merged := func(p *string, current string) string {
		if p != nil {
			return *p
		}
		return current
	}
	patient := merged(patch.Patient, existing.Patient)
	device := merged(patch.Device, existing.Device)
	dateFrom := merged(patch.DateFrom, existing.DateFrom)
	dateTo := merged(patch.DateTo, existing.DateTo)
	installTime := merged(patch.InstallTime, existing.InstallTime)
	uninstallTime := merged(patch.UninstallTime, existing.UninstallTime)

	if patch.DateFrom != nil || patch.DateTo != nil {
		if err := validateWindow(dateFrom, dateTo); err != nil {
			return nil, err
		}
	}

	set := bson.M{}
	if patch.Patient != nil {
		set["patient"] = patient
	}
	if patch.Device != nil {
		set["device"] = device
	}
	if patch.DateFrom != nil {
		set["dateFrom"] = dateFrom
	}
	if patch.DateTo != nil {
		set["dateTo"] = dateTo
	}
	if patch.InstallTime != nil {
		set["installTime"] = installTime
	}
	if patch.UninstallTime != nil {
		set["uninstallTime"] = uninstallTime
	}
	if patch.InstallerName != nil {
		set["installerName"] = *patch.InstallerName
	}
	if patch.InstallationStatus != nil {
		if !models.ValidInstallationStatus(*patch.InstallationStatus) {
			return nil, apperrors.NewValidation("Invalid installation status: %s.", *patch.InstallationStatus)
		}
		set["installationStatus"] = *patch.InstallationStatus
	}
	if patch.ReferenceDoctorName != nil {
		set["referenceDoctorName"] = *patch.ReferenceDoctorName
	}
	if patch.PatientFeedback != nil {
		set["patientFeedback"] = *patch.PatientFeedback
	}
	if patch.Remarks != nil {
		set["remarks"] = *patch.Remarks
	}
	if patch.PatientConsentFilePath != nil {
		set["patientConsentFilePath"] = *patch.PatientConsentFilePath
	}
	if patch.CancelReason != nil {
		set["cancelReason"] = *patch.CancelReason
	}
	if patch.Report != nil {
		// An unparseable report reference clears the field, it never fails
		// the update.
		set["report"] = reportFromInput(patch.Report)
	}

	timeFieldsChanged := patch.DateFrom != nil || patch.DateTo != nil ||
		patch.InstallTime != nil || patch.UninstallTime != nil
	if timeFieldsChanged {
		if computed, ok := ComputeTotalHours(dateFrom, dateTo, installTime, uninstallTime); ok {
			set["totalHours"] = computed
		} else if patch.TotalHours != nil {
			set["totalHours"] = patch.TotalHours.Value()
		}
	} else if patch.TotalHours != nil {
		set["totalHours"] = patch.TotalHours.Value()
	}

	if patch.Billing != nil {
		billing, err := NormalizeBilling(patch.Billing, existing.Billing)
		if err != nil {
			return nil, err
		}
		set["billing"] = billing
	} else if existing.Billing != nil && existing.Billing.PaymentType != "" && existing.Billing.PaymentDate != "" {
		set["billing"] = ReaffirmPaid(existing.Billing)
	}

	var key *rentsessionRepo.ConflictKey
	if patch.Patient != nil || patch.Device != nil || patch.DateFrom != nil || patch.DateTo != nil {
		key = &rentsessionRepo.ConflictKey{
			Patient:   patient,
			Device:    device,
			DateFrom:  dateFrom,
			DateTo:    dateTo,
			ExcludeID: id,
		}
	}

	set["updatedBy"] = actorID
	set["updatedAt"] = time.Now()

	updated, err := s.Repo.Update(ctx, id, set, key)
	if errors.Is(err, rentsessionRepo.ErrOverlap) {
		return nil, apperrors.NewConflict("A rent session already exists for this patient, device, and date range.")
	}
	if errors.Is(err, rentsessionRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Rent session not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage("failed to update rent session", err)
	}
	return updated, nil
}

// SoftDelete marks a session deleted. Deleting an already-deleted session
// is rejected, not a no-op.
func (s *DefaultRentSessionService) SoftDelete(ctx context.Context, id, actorID string) (*models.RentSession, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, rentsessionRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Rent session not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage("rent session lookup failed", err)
	}
	if existing.IsDeleted {
		return nil, apperrors.NewState("Rent session already deleted")
	}

	set := bson.M{
		"isDeleted": true,
		"updatedBy": actorID,
		"updatedAt": time.Now(),
	}
	updated, err := s.Repo.Update(ctx, id, set, nil)
	if err != nil {
		return nil, apperrors.NewStorage("failed to soft-delete rent session", err)
	}

	utils.GetLogger().Info("rent session soft-deleted", zap.String("rentSessionId", id))
	return updated, nil
}

// GetByID retrieves a non-deleted session.
func (s *DefaultRentSessionService) GetByID(ctx context.Context, id string) (*models.RentSession, error) {
	session, err := s.Repo.GetActiveByID(ctx, id)
	if errors.Is(err, rentsessionRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Rent session not found")
	}
	if err != nil {
		return nil, apperrors.NewStorage("rent session lookup failed", err)
	}
	return session, nil
}

// GetAll retrieves all non-deleted sessions.
func (s *DefaultRentSessionService) GetAll(ctx context.Context) ([]models.RentSession, error) {
	sessions, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorage("failed to list rent sessions", err)
	}
	return sessions, nil
}
