package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxengine/internal/handler"
)

func TestFormat(t *testing.T) {
	h := handler.NewFormatHandler()

	c, w := newContext(http.MethodGet, "/api/v1/tax/format?amount=1234567.891", nil)
	h.Format(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data handler.FormatResponse
	decodeData(t, w, &data)
	assert.Equal(t, "1234567.891", data.Amount)
	assert.Equal(t, "₹12,34,567.89", data.Currency)
	assert.Equal(t, "12,34,567.891", data.Number)
	assert.Equal(t, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Only", data.Words)
}

func TestFormatWords(t *testing.T) {
	h := handler.NewFormatHandler()

	c, w := newContext(http.MethodGet, "/api/v1/tax/format/words?amount=1180.50", nil)
	h.Words(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data handler.FormatResponse
	decodeData(t, w, &data)
	assert.Equal(t, "One Thousand One Hundred Eighty Only", data.Words)
	assert.Equal(t, "Rupees One Thousand One Hundred Eighty and Fifty Paise Only", data.RupeesWords)
	assert.Empty(t, data.Currency)
}

func TestFormatCurrencyAndNumber(t *testing.T) {
	h := handler.NewFormatHandler()

	c, w := newContext(http.MethodGet, "/api/v1/tax/format/currency?amount=-12345678.9", nil)
	h.Currency(c)
	var cur handler.FormatResponse
	decodeData(t, w, &cur)
	assert.Equal(t, "-₹1,23,45,678.90", cur.Currency)
	assert.Empty(t, cur.Number)

	c, w = newContext(http.MethodGet, "/api/v1/tax/format/number?amount=1234567", nil)
	h.Number(c)
	var num handler.FormatResponse
	decodeData(t, w, &num)
	assert.Equal(t, "12,34,567", num.Number)
	assert.Empty(t, num.Currency)
}

func TestFormat_BadAmount(t *testing.T) {
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"missing", "", "VALIDATION_ERROR"},
		{"not a number", "?amount=12abc", "INVALID_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewFormatHandler()

			c, w := newContext(http.MethodGet, "/api/v1/tax/format"+tt.query, nil)
			h.Format(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode(t, w).Error.Code)
		})
	}
}
