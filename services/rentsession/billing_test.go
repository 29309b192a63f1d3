package rentsession

import (
	"testing"

	"medonrent/models"
	"medonrent/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flex(v float64) *models.FlexFloat {
	f := models.FlexFloat(v)
	return &f
}

func TestNormalizeBillingNilInput(t *testing.T) {
	b, err := NormalizeBilling(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestNormalizeBillingPairRule(t *testing.T) {
	t.Run("totalCharges without paymentType", func(t *testing.T) {
		_, err := NormalizeBilling(&models.BillingInput{TotalCharges: flex(500)}, nil)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Billing must include totalCharges and paymentType.", verr.Message)
	})

	t.Run("paymentType without totalCharges", func(t *testing.T) {
		_, err := NormalizeBilling(&models.BillingInput{PaymentType: "cash"}, nil)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("invalid payment type", func(t *testing.T) {
		_, err := NormalizeBilling(&models.BillingInput{
			TotalCharges: flex(500),
			PaymentType:  "barter",
		}, nil)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestNormalizeBillingStatusDerivation(t *testing.T) {
	t.Run("paid when type and date are both set", func(t *testing.T) {
		b, err := NormalizeBilling(&models.BillingInput{
			TotalCharges:  flex(500),
			PaymentType:   "upi",
			PaymentDate:   "2024-03-10",
			PaymentStatus: models.PaymentStatusUnpaid,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, b.PaymentStatus)
	})

	t.Run("unpaid default without date", func(t *testing.T) {
		b, err := NormalizeBilling(&models.BillingInput{
			TotalCharges: flex(500),
			PaymentType:  "cash",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusUnpaid, b.PaymentStatus)
	})

	t.Run("prior status carried when caller omits it", func(t *testing.T) {
		prior := &models.Billing{PaymentStatus: models.PaymentStatusPartial}
		b, err := NormalizeBilling(&models.BillingInput{
			TotalCharges: flex(500),
			PaymentType:  "cash",
		}, prior)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPartial, b.PaymentStatus)
	})

	t.Run("prior invoice path preserved", func(t *testing.T) {
		prior := &models.Billing{InvoiceFilePath: "uploads/INV-RENT0000001.txt"}
		b, err := NormalizeBilling(&models.BillingInput{
			TotalCharges: flex(500),
			PaymentType:  "cash",
		}, prior)
		require.NoError(t, err)
		assert.Equal(t, "uploads/INV-RENT0000001.txt", b.InvoiceFilePath)
	})
}

func TestReaffirmPaid(t *testing.T) {
	b := &models.Billing{
		PaymentType:   "card",
		PaymentDate:   "2024-03-10",
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	got := ReaffirmPaid(b)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)
	// The stored record is untouched until the update is persisted.
	assert.Equal(t, models.PaymentStatusUnpaid, b.PaymentStatus)

	assert.Nil(t, ReaffirmPaid(nil))
	noDate := &models.Billing{PaymentType: "card"}
	assert.Equal(t, noDate, ReaffirmPaid(noDate))
}

func TestRevenueAndProfit(t *testing.T) {
	assert.Equal(t, 950.0, Revenue(1000, 100, 50))
	assert.Equal(t, 650.0, Profit(1000, 100, 50, 200))

	assert.Equal(t, 0.0, Revenue(0, 0, 0))
	assert.Equal(t, -100.0, Profit(0, 100, 0, 0))
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 12.35, Round2(12.3456))
	assert.Equal(t, 100.0, Round2(100))
}
