package models

import "time"

// Patient is a person devices are rented to. PatientID is the minted
// human-readable identifier (P0000001 style) and the reference key used by
// rent sessions.
type Patient struct {
	PatientID   string    `bson:"patientID" json:"patientID"`
	PatientName string    `bson:"patientName" json:"patientName"`
	MobileNo    string    `bson:"mobileNo" json:"mobileNo"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	DateOfBirth string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Height      string    `bson:"height,omitempty" json:"height,omitempty"`
	Weight      string    `bson:"weight,omitempty" json:"weight,omitempty"`
	SleepTime   string    `bson:"sleeptime,omitempty" json:"sleeptime,omitempty"`
	WakeUpTime  string    `bson:"wakeUpTime,omitempty" json:"wakeUpTime,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Password    string    `bson:"password,omitempty" json:"-"`
	CreatedBy   string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy   string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreatePatientInput carries the caller-supplied patient fields.
type CreatePatientInput struct {
	PatientName string `json:"patientName"`
	MobileNo    string `json:"mobileNo"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	SleepTime   string `json:"sleeptime"`
	WakeUpTime  string `json:"wakeUpTime"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

// UpdatePatientInput is the allow-listed patch shape for patients.
// patientID and password are not patchable.
type UpdatePatientInput struct {
	PatientName *string `json:"patientName"`
	MobileNo    *string `json:"mobileNo"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"dateOfBirth"`
	Height      *string `json:"height"`
	Weight      *string `json:"weight"`
	SleepTime   *string `json:"sleeptime"`
	WakeUpTime  *string `json:"wakeUpTime"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}
