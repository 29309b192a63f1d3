package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatDecoding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain number", `1500.5`, 1500.5},
		{"numeric string", `"1500.5"`, 1500.5},
		{"padded numeric string", `"  250 "`, 250},
		{"non-numeric string", `"free"`, 0},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"boolean", `true`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, float64(f))
		})
	}
}

func TestFlexFloatValueNilSafe(t *testing.T) {
	var f *FlexFloat
	assert.Equal(t, 0.0, f.Value())
}

func TestBillingInputDecodesFromObject(t *testing.T) {
	raw := `{"totalCharges": 1000, "discountAmount": "100", "gst": 50, "paymentType": "cash"}`

	var b BillingInput
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, 1000.0, b.TotalCharges.Value())
	assert.Equal(t, 100.0, b.DiscountAmount.Value())
	assert.Equal(t, 50.0, b.GST.Value())
	assert.Equal(t, "cash", b.PaymentType)
}

func TestBillingInputDecodesFromJSONString(t *testing.T) {
	// Multipart form clients send billing as a JSON-encoded string.
	raw := `"{\"totalCharges\":\"500\",\"paymentType\":\"upi\",\"paymentDate\":\"2024-03-10\"}"`

	var b BillingInput
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, 500.0, b.TotalCharges.Value())
	assert.Equal(t, "upi", b.PaymentType)
	assert.Equal(t, "2024-03-10", b.PaymentDate)
}

func TestBillingInputEmptyStringIsNoBilling(t *testing.T) {
	var b BillingInput
	require.NoError(t, json.Unmarshal([]byte(`""`), &b))
	assert.Equal(t, 0.0, b.TotalCharges.Value())
	assert.Empty(t, b.PaymentType)
}

func TestReportInputTolerantDecoding(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		var r ReportInput
		require.NoError(t, json.Unmarshal([]byte(`{"path":"uploads/report.pdf"}`), &r))
		assert.True(t, r.Valid())
		assert.Equal(t, "uploads/report.pdf", r.Path)
	})

	t.Run("garbage string is invalid, not an error", func(t *testing.T) {
		var r ReportInput
		require.NoError(t, json.Unmarshal([]byte(`"not json"`), &r))
		assert.False(t, r.Valid())
	})
}
