package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Sales Data", "sales_data"},
		{"sales_data", "sales_data"},
		{"Q3  Report", "q3__report"},
		{"MIXED case", "mixed_case"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := DeriveName(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, DeriveName(got), "derivation must be idempotent")
		})
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"sales_data", "q3-2024", "report.v2"} {
		assert.NoError(t, ValidateName(name), name)
	}
	for _, name := range []string{"", "   ", ".", "..", ".hidden", "../etc", "a/b", `a\b`, "a\x00b"} {
		err := ValidateName(name)
		assert.ErrorIs(t, err, ErrValidation, "%q", name)
	}
}
