package models

import "time"

// Installation status values for a rent session.
const (
	InstallationPending   = "pending"
	InstallationCompleted = "completed"
	InstallationCancelled = "cancelled"
)

// Payment status values for billing.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPending = "pending"
)

// Accepted payment types.
var PaymentTypes = []string{"cash", "upi", "card", "bank-transfer", "other"}

// Report references an uploaded report artifact by its storage path.
type Report struct {
	Path          string    `bson:"path" json:"path"`
	GeneratedDate time.Time `bson:"generatedDate" json:"generatedDate"`
}

// Billing holds the normalized billing record embedded in a rent session.
type Billing struct {
	TotalCharges     float64 `bson:"totalCharges" json:"totalCharges"`
	DiscountAmount   float64 `bson:"discountAmount" json:"discountAmount"`
	DoctorCommission float64 `bson:"doctorCommission" json:"doctorCommission"`
	GST              float64 `bson:"gst" json:"gst"`
	PaymentType      string  `bson:"paymentType" json:"paymentType"`
	PaymentDate      string  `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	PaymentStatus    string  `bson:"paymentStatus" json:"paymentStatus"`
	FinalAmountPaid  float64 `bson:"finalAmountPaid,omitempty" json:"finalAmountPaid,omitempty"`
	InvoiceFilePath  string  `bson:"invoiceFilePath,omitempty" json:"invoiceFilePath,omitempty"`
}

// RentSession represents one booking of a device to a patient for a bounded
// date window. Dates are "YYYY-MM-DD" strings; install/uninstall times are
// "HH:MM" time-of-day strings combined with the dates to derive TotalHours.
type RentSession struct {
	RentSessionID          string    `bson:"rentSessionId" json:"rentSessionId"`
	Patient                string    `bson:"patient" json:"patient"`
	Device                 string    `bson:"device" json:"device"`
	DateFrom               string    `bson:"dateFrom" json:"dateFrom"`
	DateTo                 string    `bson:"dateTo" json:"dateTo"`
	TotalHours             float64   `bson:"totalHours" json:"totalHours"`
	InstallerName          string    `bson:"installerName,omitempty" json:"installerName,omitempty"`
	InstallTime            string    `bson:"installTime,omitempty" json:"installTime,omitempty"`
	UninstallTime          string    `bson:"uninstallTime,omitempty" json:"uninstallTime,omitempty"`
	InstallationStatus     string    `bson:"installationStatus" json:"installationStatus"`
	Report                 *Report   `bson:"report,omitempty" json:"report,omitempty"`
	ReferenceDoctorName    string    `bson:"referenceDoctorName,omitempty" json:"referenceDoctorName,omitempty"`
	PatientFeedback        string    `bson:"patientFeedback,omitempty" json:"patientFeedback,omitempty"`
	Billing                *Billing  `bson:"billing,omitempty" json:"billing,omitempty"`
	Remarks                string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
	PatientConsentFilePath string    `bson:"patientConsentFilePath,omitempty" json:"patientConsentFilePath,omitempty"`
	CancelReason           string    `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedBy              string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy              string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	IsDeleted              bool      `bson:"isDeleted" json:"isDeleted"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidInstallationStatus reports whether s is one of the accepted
// installation status values.
func ValidInstallationStatus(s string) bool {
	switch s {
	case InstallationPending, InstallationCompleted, InstallationCancelled:
		return true
	}
	return false
}

// ValidPaymentType reports whether t is one of the accepted payment types.
func ValidPaymentType(t string) bool {
	for _, pt := range PaymentTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the accepted payment statuses.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPending:
		return true
	}
	return false
}
