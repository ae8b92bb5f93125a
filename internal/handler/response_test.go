package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxengine/internal/domain"
	"taxengine/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrEmptyInvoice, http.StatusBadRequest, "EMPTY_INVOICE"},
		{domain.ErrUnknownIdentifier, http.StatusBadRequest, "UNKNOWN_IDENTIFIER"},
		{domain.ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{fmt.Errorf("%w: bad", domain.ErrInvalidDate), http.StatusBadRequest, "INVALID_DATE"},
		{fmt.Errorf("%w: sequence must be positive", domain.ErrInvalidRequest), http.StatusBadRequest, "INVALID_REQUEST"},
		{domain.ErrHSNMasterUnavailable, http.StatusServiceUnavailable, "HSN_MASTER_UNAVAILABLE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil)
	handler.HandleError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "an internal error occurred", resp.Error.Message)
}
