package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taxengine/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Compute(ctx context.Context, in service.InvoiceInput) (*service.InvoiceComputation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceComputation), args.Error(1)
}

func (m *MockInvoiceService) EInvoiceQR(ctx context.Context, in service.InvoiceInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceService) NextInvoiceNumber(sequence int, financialYear string) (string, error) {
	args := m.Called(sequence, financialYear)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceService) FinancialYear(date string) (string, error) {
	args := m.Called(date)
	return args.String(0), args.Error(1)
}
