package inrfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxengine/internal/inrfmt"
	"taxengine/internal/money"
)

func TestFormatIndianCurrency(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "₹0.00"},
		{"100", "₹100.00"},
		{"1000", "₹1,000.00"},
		{"100000", "₹1,00,000.00"},
		{"12345678.9", "₹1,23,45,678.90"},
		{"999.999", "₹1,000.00"},
		{"-1500.5", "-₹1,500.50"},
		{"-0.001", "₹0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, inrfmt.FormatIndianCurrency(money.Must(tt.in)))
		})
	}
}

func TestFormatIndianNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"1234567", "12,34,567"},
		{"1234.5678", "1,234.568"},
		{"100000.10", "1,00,000.1"},
		{"-98765.4", "-98,765.4"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, inrfmt.FormatIndianNumber(money.Must(tt.in)))
		})
	}
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "1", inrfmt.GroupIndian("1"))
	assert.Equal(t, "123", inrfmt.GroupIndian("123"))
	assert.Equal(t, "1,234", inrfmt.GroupIndian("1234"))
	assert.Equal(t, "12,345", inrfmt.GroupIndian("12345"))
	assert.Equal(t, "1,00,00,000", inrfmt.GroupIndian("10000000"))
	assert.Equal(t, "10,00,00,000", inrfmt.GroupIndian("100000000"))
}
