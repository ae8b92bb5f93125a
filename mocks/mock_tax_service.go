package mocks

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"taxengine/internal/service"
	"taxengine/internal/tds"
)

// MockTaxService is a mock implementation of service.TaxService.
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) ValidateIdentifiers(checks []service.IdentifierCheck) []service.IdentifierResult {
	args := m.Called(checks)
	return args.Get(0).([]service.IdentifierResult)
}

func (m *MockTaxService) CalculateGST(in service.GSTInput) service.GSTResult {
	args := m.Called(in)
	return args.Get(0).(service.GSTResult)
}

func (m *MockTaxService) CalculateTDS(amount decimal.Decimal, section string) tds.Result {
	args := m.Called(amount, section)
	return args.Get(0).(tds.Result)
}

func (m *MockTaxService) TDSSections() []tds.TDSRecord {
	args := m.Called()
	return args.Get(0).([]tds.TDSRecord)
}
