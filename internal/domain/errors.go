package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrUnknownIdentifier    = errors.New("unknown identifier type")
	ErrUnsupportedFormat    = errors.New("unsupported export format")
	ErrInvalidDate          = errors.New("invalid date")
	ErrEmptyInvoice         = errors.New("invoice has no line items")
	ErrHSNMasterUnavailable = errors.New("hsn master data unavailable")
)
