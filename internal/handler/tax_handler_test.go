package handler_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxengine/internal/domain"
	"taxengine/internal/handler"
	"taxengine/internal/service"
	"taxengine/internal/tds"
	"taxengine/mocks"
)

func newTaxHandler() (*handler.TaxHandler, *mocks.MockTaxService) {
	svc := new(mocks.MockTaxService)
	return handler.NewTaxHandler(svc), svc
}

func TestValidate_Single(t *testing.T) {
	h, svc := newTaxHandler()
	checks := []service.IdentifierCheck{{Type: domain.IdentifierGSTIN, Value: "27AAPFU0939F1ZV"}}
	svc.On("ValidateIdentifiers", checks).Return([]service.IdentifierResult{
		{Type: domain.IdentifierGSTIN, Value: "27AAPFU0939F1ZV", Valid: true, Known: true},
	})

	c, w := newContext(http.MethodPost, "/api/v1/tax/validate", map[string]string{"type": "gstin", "value": "27AAPFU0939F1ZV"})
	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data handler.ValidationResponse
	decodeData(t, w, &data)
	require.Len(t, data.Results, 1)
	assert.True(t, data.Results[0].Valid)
	svc.AssertExpectations(t)
}

func TestValidate_Batch(t *testing.T) {
	h, svc := newTaxHandler()
	svc.On("ValidateIdentifiers", mock.MatchedBy(func(c []service.IdentifierCheck) bool { return len(c) == 2 })).
		Return([]service.IdentifierResult{
			{Type: domain.IdentifierPAN, Value: "AAPFU0939F", Valid: true, Known: true},
			{Type: "passport", Value: "X", Known: false},
		})

	c, w := newContext(http.MethodPost, "/api/v1/tax/validate", map[string]interface{}{
		"items": []map[string]string{{"type": "pan", "value": "AAPFU0939F"}, {"type": "passport", "value": "X"}},
	})
	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data handler.ValidationResponse
	decodeData(t, w, &data)
	require.Len(t, data.Results, 2)
	assert.False(t, data.Results[1].Known)
}

func TestValidate_NothingToCheck(t *testing.T) {
	h, svc := newTaxHandler()

	c, w := newContext(http.MethodPost, "/api/v1/tax/validate", map[string]string{})
	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
	svc.AssertNotCalled(t, "ValidateIdentifiers", mock.Anything)
}

func TestGST_Success(t *testing.T) {
	h, svc := newTaxHandler()
	svc.On("CalculateGST", mock.MatchedBy(func(in service.GSTInput) bool {
		return in.TaxableAmount.Equal(decimal.NewFromInt(1000)) && in.GSTRate.Equal(decimal.NewFromInt(18)) &&
			in.SupplierStateCode == "27" && in.CustomerStateCode == "29"
	})).Return(service.GSTResult{
		GSTBreakdown: domain.GSTBreakdown{IGSTRate: decimal.NewFromInt(18), IGSTAmount: decimal.NewFromInt(180)},
		Outcome:      domain.Computed(),
		InterState:   true,
	})

	c, w := newContext(http.MethodPost, "/api/v1/tax/gst",
		`{"taxable_amount":"1000","gst_rate":18,"supplier_state_code":"27","customer_state_code":"29"}`)
	h.GST(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		IGSTAmount string         `json:"igst_amount"`
		Outcome    domain.Outcome `json:"outcome"`
		InterState bool           `json:"inter_state"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "180", data.IGSTAmount)
	assert.Equal(t, domain.OutcomeComputed, data.Outcome.Status)
	assert.True(t, data.InterState)
	svc.AssertExpectations(t)
}

func TestGST_MissingStateCode(t *testing.T) {
	h, svc := newTaxHandler()

	c, w := newContext(http.MethodPost, "/api/v1/tax/gst", `{"taxable_amount":"1000","gst_rate":18,"supplier_state_code":"27"}`)
	h.GST(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "customer_state_code", resp.Error.Details[0].Field)
	svc.AssertNotCalled(t, "CalculateGST", mock.Anything)
}

func TestGST_MalformedJSON(t *testing.T) {
	h, _ := newTaxHandler()

	c, w := newContext(http.MethodPost, "/api/v1/tax/gst", `{"taxable_amount":`)
	h.GST(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "body", resp.Error.Details[0].Field)
}

func TestTDS_Success(t *testing.T) {
	h, svc := newTaxHandler()
	svc.On("CalculateTDS", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(50000)) }), "194C").
		Return(tds.Result{Outcome: domain.Computed(), Section: "194C", Amount: decimal.NewFromInt(1000)})

	c, w := newContext(http.MethodPost, "/api/v1/tax/tds", `{"amount":"50000","section":"194C"}`)
	h.TDS(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data tds.Result
	decodeData(t, w, &data)
	assert.Equal(t, domain.OutcomeComputed, data.Status)
	assert.True(t, data.Amount.Equal(decimal.NewFromInt(1000)))
}

func TestTDS_MissingSection(t *testing.T) {
	h, _ := newTaxHandler()

	c, w := newContext(http.MethodPost, "/api/v1/tax/tds", `{"amount":"50000"}`)
	h.TDS(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "section", decode(t, w).Error.Details[0].Field)
}

func TestTDSSections(t *testing.T) {
	h, svc := newTaxHandler()
	svc.On("TDSSections").Return(tds.Sections())

	c, w := newContext(http.MethodGet, "/api/v1/tax/tds/sections", nil)
	h.TDSSections(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data []tds.TDSRecord
	decodeData(t, w, &data)
	assert.Len(t, data, len(tds.Sections()))
}
