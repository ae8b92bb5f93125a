package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"taxengine/internal/inrfmt"
)

// FormatHandler renders amounts the Indian way.
type FormatHandler struct{}

// NewFormatHandler creates a new FormatHandler.
func NewFormatHandler() *FormatHandler {
	return &FormatHandler{}
}

func parseAmount(c *gin.Context) (decimal.Decimal, string, bool) {
	var req FormatRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		RespondValidationError(c, err)
		return decimal.Zero, "", false
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "amount must be a decimal number")
		return decimal.Zero, "", false
	}
	return amount, req.Amount, true
}

// Format handles GET /api/v1/tax/format
// @Summary      Format an amount
// @Description  Returns the amount as rupees with lakh/crore grouping, as a grouped number and in words
// @Tags         format
// @Produce      json
// @Param        amount query string true "Amount, e.g. 1234567.89"
// @Success      200 {object} APIResponse{data=FormatResponse}
// @Failure      400 {object} APIResponse
// @Router       /format [get]
func (h *FormatHandler) Format(c *gin.Context) {
	amount, raw, ok := parseAmount(c)
	if !ok {
		return
	}
	RespondOK(c, FormatResponse{
		Amount:      raw,
		Currency:    inrfmt.FormatIndianCurrency(amount),
		Number:      inrfmt.FormatIndianNumber(amount),
		Words:       inrfmt.NumberToWordsIndian(amount),
		RupeesWords: inrfmt.RupeesInWords(amount),
	})
}

// Words handles GET /api/v1/tax/format/words
// @Summary      Amount in words
// @Tags         format
// @Produce      json
// @Param        amount query string true "Amount, e.g. 1180.50"
// @Success      200 {object} APIResponse{data=FormatResponse}
// @Failure      400 {object} APIResponse
// @Router       /format/words [get]
func (h *FormatHandler) Words(c *gin.Context) {
	amount, raw, ok := parseAmount(c)
	if !ok {
		return
	}
	RespondOK(c, FormatResponse{
		Amount:      raw,
		Words:       inrfmt.NumberToWordsIndian(amount),
		RupeesWords: inrfmt.RupeesInWords(amount),
	})
}

// Currency handles GET /api/v1/tax/format/currency
// @Summary      Format as rupees
// @Tags         format
// @Produce      json
// @Param        amount query string true "Amount, e.g. 12345678.9"
// @Success      200 {object} APIResponse{data=FormatResponse}
// @Failure      400 {object} APIResponse
// @Router       /format/currency [get]
func (h *FormatHandler) Currency(c *gin.Context) {
	amount, raw, ok := parseAmount(c)
	if !ok {
		return
	}
	RespondOK(c, FormatResponse{Amount: raw, Currency: inrfmt.FormatIndianCurrency(amount)})
}

// Number handles GET /api/v1/tax/format/number
// @Summary      Group a number the Indian way
// @Tags         format
// @Produce      json
// @Param        amount query string true "Number, e.g. 1234567.125"
// @Success      200 {object} APIResponse{data=FormatResponse}
// @Failure      400 {object} APIResponse
// @Router       /format/number [get]
func (h *FormatHandler) Number(c *gin.Context) {
	amount, raw, ok := parseAmount(c)
	if !ok {
		return
	}
	RespondOK(c, FormatResponse{Amount: raw, Number: inrfmt.FormatIndianNumber(amount)})
}
