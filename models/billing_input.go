package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that also decodes from numeric-looking JSON strings.
// Anything non-numeric decodes to zero rather than failing, matching the
// lenient coercion the billing boundary needs.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Value returns the underlying float, zero when the field was absent.
func (f *FlexFloat) Value() float64 {
	if f == nil {
		return 0
	}
	return float64(*f)
}

// BillingInput is the raw billing shape accepted at the API boundary.
// Clients submitting multipart forms send billing as a JSON-encoded string,
// so the type decodes from either an object or a string holding one.
type BillingInput struct {
	TotalCharges     *FlexFloat `json:"totalCharges"`
	DiscountAmount   *FlexFloat `json:"discountAmount"`
	DoctorCommission *FlexFloat `json:"doctorCommission"`
	GST              *FlexFloat `json:"gst"`
	PaymentType      string     `json:"paymentType"`
	PaymentDate      string     `json:"paymentDate"`
	PaymentStatus    string     `json:"paymentStatus"`
	FinalAmountPaid  *FlexFloat `json:"finalAmountPaid"`
}

func (b *BillingInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		data = []byte(s)
	}
	type alias BillingInput
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = BillingInput(a)
	return nil
}

// ReportInput decodes a report reference from an object or a JSON-encoded
// string. An unparseable string yields a nil report rather than an error.
type ReportInput struct {
	Path          string `json:"path"`
	GeneratedDate string `json:"generatedDate"`
	invalid       bool
}

func (r *ReportInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			r.invalid = true
			return nil
		}
		data = []byte(s)
	}
	type alias ReportInput
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		r.invalid = true
		return nil
	}
	*r = ReportInput{Path: a.Path, GeneratedDate: a.GeneratedDate}
	return nil
}

// Valid reports whether the input decoded to a usable report reference.
func (r *ReportInput) Valid() bool {
	return r != nil && !r.invalid && r.Path != ""
}
