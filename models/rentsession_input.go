package models

import "strings"

// CreateRentSessionInput carries the fields a caller may supply when
// creating a rent session.
type CreateRentSessionInput struct {
	Patient                string        `json:"patient"`
	Device                 string        `json:"device"`
	DateFrom               string        `json:"dateFrom"`
	DateTo                 string        `json:"dateTo"`
	TotalHours             *FlexFloat    `json:"totalHours"`
	InstallerName          string        `json:"installerName"`
	InstallTime            string        `json:"installTime"`
	UninstallTime          string        `json:"uninstallTime"`
	InstallationStatus     string        `json:"installationStatus"`
	Report                 *ReportInput  `json:"report"`
	ReferenceDoctorName    string        `json:"referenceDoctorName"`
	PatientFeedback        string        `json:"patientFeedback"`
	Billing                *BillingInput `json:"billing"`
	Remarks                string        `json:"remarks"`
	PatientConsentFilePath string        `json:"patientConsentFilePath"`
	CancelReason           string        `json:"cancelReason"`
}

// Trim strips whitespace from string fields, especially IDs.
func (in *CreateRentSessionInput) Trim() {
	in.Patient = strings.TrimSpace(in.Patient)
	in.Device = strings.TrimSpace(in.Device)
	in.DateFrom = strings.TrimSpace(in.DateFrom)
	in.DateTo = strings.TrimSpace(in.DateTo)
	in.InstallerName = strings.TrimSpace(in.InstallerName)
	in.ReferenceDoctorName = strings.TrimSpace(in.ReferenceDoctorName)
	in.PatientFeedback = strings.TrimSpace(in.PatientFeedback)
	in.Remarks = strings.TrimSpace(in.Remarks)
	in.CancelReason = strings.TrimSpace(in.CancelReason)
}

// UpdateRentSessionInput is the allow-listed patch shape for partial
// updates. Nil pointers mean "leave unchanged". createdBy is deliberately
// not representable here, so it can never be smuggled through a patch.
type UpdateRentSessionInput struct {
	Patient                *string       `json:"patient"`
	Device                 *string       `json:"device"`
	DateFrom               *string       `json:"dateFrom"`
	DateTo                 *string       `json:"dateTo"`
	TotalHours             *FlexFloat    `json:"totalHours"`
	InstallerName          *string       `json:"installerName"`
	InstallTime            *string       `json:"installTime"`
	UninstallTime          *string       `json:"uninstallTime"`
	InstallationStatus     *string       `json:"installationStatus"`
	Report                 *ReportInput  `json:"report"`
	ReferenceDoctorName    *string       `json:"referenceDoctorName"`
	PatientFeedback        *string       `json:"patientFeedback"`
	Billing                *BillingInput `json:"billing"`
	Remarks                *string       `json:"remarks"`
	PatientConsentFilePath *string       `json:"patientConsentFilePath"`
	CancelReason           *string       `json:"cancelReason"`
}

// Trim strips whitespace from the string fields that are present.
func (in *UpdateRentSessionInput) Trim() {
	for _, p := range []*string{
		in.Patient, in.Device, in.DateFrom, in.DateTo,
		in.InstallerName, in.ReferenceDoctorName, in.PatientFeedback,
		in.Remarks, in.CancelReason,
	} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}
