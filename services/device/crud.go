package device

import (
	"context"
	"errors"
	"strings"
	"time"

	deviceRepo "medonrent/database/repository/device"
	"medonrent/models"
	"medonrent/services/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

// Create mints a device ID and inserts the record. Serial numbers, when
// supplied, are unique across the inventory.
func (s *DefaultDeviceService) Create(ctx context.Context, input *models.CreateDeviceInput, actorID string) (*models.Device, error) {
	name := strings.TrimSpace(input.Name)
	devType := strings.TrimSpace(input.Type)
	if name == "" || devType == "" {
		return nil, apperrors.NewValidation("Device name and type are required")
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.DeviceAvailable
	}
	if !models.ValidDeviceStatus(status) {
		return nil, apperrors.NewValidation("Invalid device status: %s.", status)
	}

	serial := strings.TrimSpace(input.SerialNumber)
	if serial != "" {
		existing, err := s.Repo.GetBySerial(ctx, serial)
		if err != nil {
			return nil, apperrors.NewStorage("device lookup failed", err)
		}
		if existing != nil {
			return nil, apperrors.NewConflict("Device with this serial number already exists")
		}
	}

	id, err := s.Seq.DeviceID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	device := &models.Device{
		DeviceID:     id,
		Name:         name,
		Type:         devType,
		ModelNumber:  strings.TrimSpace(input.ModelNumber),
		SerialNumber: serial,
		Status:       status,
		Location:     strings.TrimSpace(input.Location),
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, device); err != nil {
		return nil, apperrors.NewStorage("failed to create device", err)
	}
	return device, nil
}

// Update applies the allow-listed patch. A maintenanceLog entry in the
// patch is appended to the device's history rather than replacing it.
func (s *DefaultDeviceService) Update(ctx context.Context, id string, patch *models.UpdateDeviceInput, actorID string) (*models.Device, error) {
	set := bson.M{}
	for field, p := range map[string]*string{
		"name":         patch.Name,
		"type":         patch.Type,
		"modelNumber":  patch.ModelNumber,
		"serialNumber": patch.SerialNumber,
		"location":     patch.Location,
	} {
		if p != nil {
			set[field] = strings.TrimSpace(*p)
		}
	}
	if patch.Status != nil {
		status := strings.TrimSpace(*patch.Status)
		if !models.ValidDeviceStatus(status) {
			return nil, apperrors.NewValidation("Invalid device status: %s.", status)
		}
		set["status"] = status
	}
	set["updatedBy"] = actorID
	set["updatedAt"] = time.Now()

	update := bson.M{"$set": set}
	if patch.MaintenanceLog != nil {
		entry := *patch.MaintenanceLog
		if entry.Date.IsZero() {
			entry.Date = time.Now()
		}
		update["$push"] = bson.M{"maintenanceLogs": entry}
	}

	updated, err := s.Repo.Update(ctx, id, update)
	if errors.Is(err, deviceRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Device not found.")
	}
	if err != nil {
		return nil, apperrors.NewStorage("failed to update device", err)
	}
	return updated, nil
}

// Delete removes a device record.
func (s *DefaultDeviceService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, deviceRepo.ErrNotFound) {
		return apperrors.NewNotFound("Device not found.")
	}
	if err != nil {
		return apperrors.NewStorage("failed to delete device", err)
	}
	return nil
}

// GetByID retrieves a device.
func (s *DefaultDeviceService) GetByID(ctx context.Context, id string) (*models.Device, error) {
	device, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, deviceRepo.ErrNotFound) {
		return nil, apperrors.NewNotFound("Device not found.")
	}
	if err != nil {
		return nil, apperrors.NewStorage("device lookup failed", err)
	}
	return device, nil
}

// GetAll retrieves all devices.
func (s *DefaultDeviceService) GetAll(ctx context.Context) ([]models.Device, error) {
	devices, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorage("failed to list devices", err)
	}
	return devices, nil
}
