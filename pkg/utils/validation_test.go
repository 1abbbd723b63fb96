package utils

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Status string `validate:"required,oneof=pending confirmed rejected"`
	Date   string `validate:"omitempty,datetime=2006-01-02"`
	Card   string `validate:"omitempty,len=16,numeric"`
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Email:  "jordan@example.com",
		Status: "pending",
		Date:   "2026-03-01",
		Card:   "4242424242424242",
	})
	if len(errs) != 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Email:  "not-an-email",
		Status: "cancelled",
		Date:   "03/01/2026",
		Card:   "4242",
	})

	for _, field := range []string{"Email", "Status", "Date", "Card"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected validation error for %s, got %v", field, errs)
		}
	}
}

func TestValidateStructMissingRequired(t *testing.T) {
	errs := ValidateStruct(sampleRequest{})

	if errs["Email"] != "This field is required" {
		t.Errorf("Email error = %q", errs["Email"])
	}
	if _, ok := errs["Date"]; ok {
		t.Error("omitempty field reported as invalid when empty")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	formatted := FormatValidationErrors(map[string]string{
		"Email": "Invalid email format",
	})
	if formatted != "Email: Invalid email format" {
		t.Errorf("formatted = %q", formatted)
	}

	multi := FormatValidationErrors(map[string]string{
		"Email":  "Invalid email format",
		"Status": "Must be one of: pending, confirmed, rejected",
	})
	if !strings.Contains(multi, "; ") {
		t.Errorf("multiple errors not joined: %q", multi)
	}
}
