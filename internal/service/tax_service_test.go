package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxengine/internal/domain"
	"taxengine/internal/money"
	"taxengine/internal/service"
	"taxengine/internal/tds"
)

func TestTaxService_ValidateIdentifiers(t *testing.T) {
	svc := service.NewTaxService(nil, nil)

	results := svc.ValidateIdentifiers([]service.IdentifierCheck{
		{Type: domain.IdentifierGSTIN, Value: "27ABCDE1234F1Z5"},
		{Type: domain.IdentifierGSTIN, Value: "27ABCDE1234F1X5"},
		{Type: domain.IdentifierMobile, Value: "+91 98765 43210"},
		{Type: "passport", Value: "X1"},
	})

	require.Len(t, results, 4)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.True(t, results[1].Known)
	assert.True(t, results[2].Valid)
	assert.False(t, results[3].Known)
	assert.Equal(t, "X1", results[3].Value)
}

func TestTaxService_CalculateGST(t *testing.T) {
	svc := service.NewTaxService(nil, nil)

	res := svc.CalculateGST(service.GSTInput{
		TaxableAmount:     money.Must("1000"),
		GSTRate:           money.Must("18"),
		SupplierStateCode: "27",
		CustomerStateCode: "29",
	})
	assert.True(t, res.Outcome.OK())
	assert.True(t, res.InterState)
	assert.True(t, res.StandardRate)
	assert.True(t, money.Must("180").Equal(res.IGSTAmount))

	res = svc.CalculateGST(service.GSTInput{
		TaxableAmount:     money.Must("1000"),
		GSTRate:           money.Must("7"),
		SupplierStateCode: "27",
		CustomerStateCode: "27",
	})
	assert.True(t, res.Outcome.OK())
	assert.False(t, res.StandardRate)
	assert.True(t, money.Must("35").Equal(res.CGSTAmount))
}

func TestTaxService_CalculateTDS(t *testing.T) {
	svc := service.NewTaxService(nil, nil)

	res := svc.CalculateTDS(money.Must("30000"), "194C")
	assert.Equal(t, domain.OutcomeComputed, res.Status)
	assert.True(t, money.Must("300").Equal(res.Amount))

	res = svc.CalculateTDS(money.Must("25000"), "194C")
	assert.Equal(t, domain.OutcomeNotApplicable, res.Status)
	assert.True(t, res.Amount.IsZero())
}

func TestTaxService_CustomTable(t *testing.T) {
	table := tds.NewTable([]tds.TDSRecord{
		{Section: "194T", Description: "Partner remuneration", RatePercent: money.Must("10"), ThresholdAmount: money.Must("20000")},
	})
	svc := service.NewTaxService(table, nil)

	require.Len(t, svc.TDSSections(), 1)
	res := svc.CalculateTDS(money.Must("20000"), "194T")
	assert.True(t, money.Must("2000").Equal(res.Amount))

	res = svc.CalculateTDS(decimal.NewFromInt(50000), "194C")
	assert.Equal(t, domain.OutcomeInvalidInput, res.Status)
}
