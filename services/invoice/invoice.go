// Package invoice renders billing invoices for rent sessions and files
// them in storage.
package invoice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	patientRepo "medonrent/database/repository/patient"
	rentsessionRepo "medonrent/database/repository/rentsession"
	"medonrent/models"
	"medonrent/services/apperrors"
	"medonrent/services/rentsession"
	"medonrent/services/storage"

	"go.mongodb.org/mongo-driver/bson"
)

// Snapshot is the data an invoice is rendered from, decoupled from the
// session and patient records so renderers stay storage-agnostic.
type Snapshot struct {
	InvoiceNumber    string
	IssuedAt         time.Time
	RentSessionID    string
	PatientName      string
	PatientMobile    string
	DeviceRef        string
	DateFrom         string
	DateTo           string
	TotalHours       float64
	TotalCharges     float64
	DiscountAmount   float64
	GST              float64
	DoctorCommission float64
	AmountDue        float64
	PaymentType      string
	PaymentStatus    string
}

// Renderer turns a snapshot into a stored document body.
type Renderer interface {
	Render(s Snapshot) ([]byte, string, error)
}

// InvoiceService generates an invoice for a rent session and records its
// stored path on the session's billing.
type InvoiceService interface {
	Generate(ctx context.Context, sessionID, actorID string) (*models.RentSession, string, error)
}

// DefaultInvoiceService implements InvoiceService.
type DefaultInvoiceService struct {
	SessionRepo rentsessionRepo.RentSessionRepository
	PatientRepo patientRepo.PatientRepository
	Storage     storage.StorageService
	Renderer    Renderer
}

// Generate renders and stores an invoice for the given session, then sets
// billing.invoiceFilePath. Requires the session to carry billing.
func (s *DefaultInvoiceService) Generate(ctx context.Context, sessionID, actorID string) (*models.RentSession, string, error) {
	session, err := s.SessionRepo.GetActiveByID(ctx, sessionID)
	if errors.Is(err, rentsessionRepo.ErrNotFound) {
		return nil, "", apperrors.NewNotFound("Rent session not found")
	}
	if err != nil {
		return nil, "", apperrors.NewStorage("rent session lookup failed", err)
	}
	if session.Billing == nil {
		return nil, "", apperrors.NewValidation("Rent session has no billing to invoice.")
	}

	snap := Snapshot{
		InvoiceNumber:    "INV-" + session.RentSessionID,
		IssuedAt:         time.Now(),
		RentSessionID:    session.RentSessionID,
		PatientName:      "N/A",
		DeviceRef:        session.Device,
		DateFrom:         session.DateFrom,
		DateTo:           session.DateTo,
		TotalHours:       session.TotalHours,
		TotalCharges:     session.Billing.TotalCharges,
		DiscountAmount:   session.Billing.DiscountAmount,
		GST:              session.Billing.GST,
		DoctorCommission: session.Billing.DoctorCommission,
		AmountDue:        rentsession.Revenue(session.Billing.TotalCharges, session.Billing.DiscountAmount, session.Billing.GST),
		PaymentType:      session.Billing.PaymentType,
		PaymentStatus:    session.Billing.PaymentStatus,
	}
	if patient, perr := s.PatientRepo.GetByID(ctx, session.Patient); perr == nil && patient != nil {
		snap.PatientName = patient.PatientName
		snap.PatientMobile = patient.MobileNo
	}

	body, ext, err := s.Renderer.Render(snap)
	if err != nil {
		return nil, "", apperrors.NewStorage("invoice rendering failed", err)
	}

	name := fmt.Sprintf("%s%s", snap.InvoiceNumber, ext)
	path, err := s.Storage.Save(ctx, bytes.NewReader(body), name)
	if err != nil {
		return nil, "", apperrors.NewStorage("invoice upload failed", err)
	}

	set := bson.M{
		"billing.invoiceFilePath": path,
		"updatedBy":               actorID,
		"updatedAt":               time.Now(),
	}
	updated, err := s.SessionRepo.Update(ctx, sessionID, set, nil)
	if err != nil {
		return nil, "", apperrors.NewStorage("failed to record invoice path", err)
	}
	return updated, path, nil
}

// TextRenderer renders a fixed-width plain-text invoice.
type TextRenderer struct{}

func (TextRenderer) Render(s Snapshot) ([]byte, string, error) {
	var b strings.Builder
	line := strings.Repeat("=", 46)

	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "%-24s%22s\n", "MEDONRENT INVOICE", s.InvoiceNumber)
	fmt.Fprintf(&b, "%-24s%22s\n", "Issued", s.IssuedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Rent Session : %s\n", s.RentSessionID)
	fmt.Fprintf(&b, "Patient      : %s\n", s.PatientName)
	if s.PatientMobile != "" {
		fmt.Fprintf(&b, "Mobile       : %s\n", s.PatientMobile)
	}
	if s.DeviceRef != "" {
		fmt.Fprintf(&b, "Device       : %s\n", s.DeviceRef)
	}
	fmt.Fprintf(&b, "Period       : %s to %s\n", s.DateFrom, s.DateTo)
	if s.TotalHours > 0 {
		fmt.Fprintf(&b, "Total Hours  : %.2f\n", s.TotalHours)
	}
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "%-30s%16.2f\n", "Total Charges", s.TotalCharges)
	fmt.Fprintf(&b, "%-30s%16.2f\n", "Discount", -s.DiscountAmount)
	fmt.Fprintf(&b, "%-30s%16.2f\n", "GST", s.GST)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "%-30s%16.2f\n", "AMOUNT DUE", s.AmountDue)
	fmt.Fprintf(&b, "%s\n", line)
	if s.PaymentType != "" {
		fmt.Fprintf(&b, "Payment Type   : %s\n", s.PaymentType)
	}
	fmt.Fprintf(&b, "Payment Status : %s\n", s.PaymentStatus)

	return []byte(b.String()), ".txt", nil
}
