package models

import "time"

// Device status values.
const (
	DeviceAvailable   = "available"
	DeviceRented      = "rented"
	DeviceMaintenance = "maintenance"
	DeviceInactive    = "inactive"
)

// MaintenanceLog records one maintenance action on a device.
type MaintenanceLog struct {
	Date       time.Time `bson:"date" json:"date"`
	Action     string    `bson:"action" json:"action"`
	Remarks    string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Technician string    `bson:"technician,omitempty" json:"technician,omitempty"`
}

// Device is a physical rentable unit. DeviceID is the minted human-readable
// identifier (D0000001 style) and the reference key used by rent sessions.
type Device struct {
	DeviceID        string           `bson:"deviceId" json:"deviceId"`
	Name            string           `bson:"name" json:"name"`
	Type            string           `bson:"type" json:"type"`
	ModelNumber     string           `bson:"modelNumber,omitempty" json:"modelNumber,omitempty"`
	SerialNumber    string           `bson:"serialNumber,omitempty" json:"serialNumber,omitempty"`
	Status          string           `bson:"status" json:"status"`
	Location        string           `bson:"location,omitempty" json:"location,omitempty"`
	MaintenanceLogs []MaintenanceLog `bson:"maintenanceLogs,omitempty" json:"maintenanceLogs,omitempty"`
	CreatedBy       string           `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy       string           `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// ValidDeviceStatus reports whether s is one of the accepted device statuses.
func ValidDeviceStatus(s string) bool {
	switch s {
	case DeviceAvailable, DeviceRented, DeviceMaintenance, DeviceInactive:
		return true
	}
	return false
}

// CreateDeviceInput carries the caller-supplied device fields.
type CreateDeviceInput struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	ModelNumber  string `json:"modelNumber"`
	SerialNumber string `json:"serialNumber"`
	Status       string `json:"status"`
	Location     string `json:"location"`
}

// UpdateDeviceInput is the allow-listed patch shape for devices.
// deviceId is not patchable.
type UpdateDeviceInput struct {
	Name           *string         `json:"name"`
	Type           *string         `json:"type"`
	ModelNumber    *string         `json:"modelNumber"`
	SerialNumber   *string         `json:"serialNumber"`
	Status         *string         `json:"status"`
	Location       *string         `json:"location"`
	MaintenanceLog *MaintenanceLog `json:"maintenanceLog"`
}
