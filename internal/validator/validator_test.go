package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Month  string  `binding:"omitempty,month_key"`
	Date   string  `binding:"omitempty,iso_date"`
	Type   string  `binding:"omitempty,transaction_type"`
	Due    *string `binding:"omitempty,optional_iso_date"`
	Amount float64 `binding:"nonzero_amount"`
}

func TestRegister(t *testing.T) {
	Register()

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{Month: "2025-01", Date: "2025-01-31", Type: "income", Amount: 10}, false},
		{"negative_amount", sample{Amount: -3.5}, false},
		{"bad_month", sample{Month: "2025-13", Amount: 1}, true},
		{"month_with_day", sample{Month: "2025-01-01", Amount: 1}, true},
		{"bad_date", sample{Date: "2025-02-30", Amount: 1}, true},
		{"unknown_type", sample{Type: "transfer", Amount: 1}, true},
		{"zero_amount", sample{Amount: 0}, true},
		{"empty_optional_date", sample{Due: strPtr(""), Amount: 1}, false},
		{"optional_date", sample{Due: strPtr("2026-06-30"), Amount: 1}, false},
		{"bad_optional_date", sample{Due: strPtr("soon"), Amount: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
