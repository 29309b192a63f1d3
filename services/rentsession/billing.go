package rentsession

import (
	"math"

	"medonrent/models"
	"medonrent/services/apperrors"
)

// NormalizeBilling validates and coerces raw billing input into a Billing
// record. prior is the billing currently stored on the session, nil on
// create. A nil input yields a nil record.
//
// Numeric coercion happens at the input type itself; here the pair rule is
// enforced (totalCharges and paymentType go together) and paymentStatus is
// derived: "paid" exactly when both paymentType and paymentDate are set,
// otherwise the prior value, defaulting to "unpaid".
func NormalizeBilling(in *models.BillingInput, prior *models.Billing) (*models.Billing, error) {
	if in == nil {
		return nil, nil
	}

	if in.TotalCharges.Value() == 0 || in.PaymentType == "" {
		return nil, apperrors.NewValidation("Billing must include totalCharges and paymentType.")
	}
	if !models.ValidPaymentType(in.PaymentType) {
		return nil, apperrors.NewValidation("Invalid payment type: %s.", in.PaymentType)
	}
	if in.PaymentStatus != "" && !models.ValidPaymentStatus(in.PaymentStatus) {
		return nil, apperrors.NewValidation("Invalid payment status: %s.", in.PaymentStatus)
	}

	b := &models.Billing{
		TotalCharges:     in.TotalCharges.Value(),
		DiscountAmount:   in.DiscountAmount.Value(),
		DoctorCommission: in.DoctorCommission.Value(),
		GST:              in.GST.Value(),
		PaymentType:      in.PaymentType,
		PaymentDate:      in.PaymentDate,
		PaymentStatus:    in.PaymentStatus,
		FinalAmountPaid:  in.FinalAmountPaid.Value(),
	}

	if b.PaymentStatus == "" {
		if prior != nil && prior.PaymentStatus != "" {
			b.PaymentStatus = prior.PaymentStatus
		} else {
			b.PaymentStatus = models.PaymentStatusUnpaid
		}
	}
	if b.PaymentType != "" && b.PaymentDate != "" {
		b.PaymentStatus = models.PaymentStatusPaid
	}

	if prior != nil && prior.InvoiceFilePath != "" {
		b.InvoiceFilePath = prior.InvoiceFilePath
	}
	return b, nil
}

// ReaffirmPaid re-derives paymentStatus="paid" on an unchanged billing
// record whose paymentType and paymentDate are both set. Used on updates
// that do not touch billing; idempotent.
func ReaffirmPaid(b *models.Billing) *models.Billing {
	if b == nil || b.PaymentType == "" || b.PaymentDate == "" {
		return b
	}
	copy := *b
	copy.PaymentStatus = models.PaymentStatusPaid
	return &copy
}

// Revenue is the total collected from customers:
// totalCharges - discountAmount + gst, rounded to 2 decimal places.
func Revenue(totalCharges, discountAmount, gst float64) float64 {
	return Round2(totalCharges - discountAmount + gst)
}

// Profit is the net after expenses:
// totalCharges - discountAmount - gst - doctorCommission, rounded to 2
// decimal places.
func Profit(totalCharges, discountAmount, gst, doctorCommission float64) float64 {
	return Round2(totalCharges - discountAmount - gst - doctorCommission)
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
