package inrfmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxengine/internal/inrfmt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want string
	}{
		{"first day", date(2024, time.April, 1), "2024-25"},
		{"last day", date(2025, time.March, 31), "2024-25"},
		{"january", date(2009, time.January, 15), "2008-09"},
		{"century rollover", date(1999, time.June, 1), "1999-00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inrfmt.FinancialYear(tt.ref))
		})
	}
}

func TestCurrentFinancialYear(t *testing.T) {
	clock := func() time.Time { return date(2026, time.February, 10) }
	assert.Equal(t, "2025-26", inrfmt.CurrentFinancialYear(clock))
	assert.NotEmpty(t, inrfmt.CurrentFinancialYear(nil))
}

func TestFinancialYearOf(t *testing.T) {
	for _, in := range []string{"2025-01-15", "15/01/2025", "15-01-2025", "15 Jan 2025", "Jan 15, 2025"} {
		t.Run(in, func(t *testing.T) {
			fy, err := inrfmt.FinancialYearOf(in)
			require.NoError(t, err)
			assert.Equal(t, "2024-25", fy)
		})
	}

	_, err := inrfmt.FinancialYearOf("yesterday")
	assert.Error(t, err)
}

func TestEInvoiceDate(t *testing.T) {
	assert.Equal(t, "15/07/2024", inrfmt.EInvoiceDate("2024-07-15"))
	assert.Equal(t, "15/07/2024", inrfmt.EInvoiceDate("15-07-2024"))
	assert.Equal(t, "not a date", inrfmt.EInvoiceDate("not a date"))
}

func TestGenerateInvoiceNumber(t *testing.T) {
	assert.Equal(t, "ACME/2024-25/0042", inrfmt.GenerateInvoiceNumber("ACME", "2024-25", 42))
	assert.Equal(t, "ACME/2024-25/0001", inrfmt.GenerateInvoiceNumber("ACME", "2024-25", 1))
	assert.Equal(t, "ACME/2024-25/12345", inrfmt.GenerateInvoiceNumber("ACME", "2024-25", 12345))
}
