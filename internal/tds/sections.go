package tds

import (
	"github.com/shopspring/decimal"

	"taxengine/internal/money"
)

var defaultTable = NewTable([]TDSRecord{
	{Section: "192A", Description: "Premature withdrawal from EPF", RatePercent: money.Must("10"), ThresholdAmount: money.Must("50000")},
	{Section: "193", Description: "Interest on securities", RatePercent: money.Must("10"), ThresholdAmount: money.Must("10000")},
	{Section: "194", Description: "Dividends", RatePercent: money.Must("10"), ThresholdAmount: money.Must("5000")},
	{Section: "194A", Description: "Interest other than interest on securities", RatePercent: money.Must("10"), ThresholdAmount: money.Must("40000")},
	{Section: "194C", Description: "Payment to contractors", RatePercent: money.Must("1"), ThresholdAmount: money.Must("30000")},
	{Section: "194H", Description: "Commission or brokerage", RatePercent: money.Must("5"), ThresholdAmount: money.Must("15000")},
	{Section: "194I", Description: "Rent of land, building or furniture", RatePercent: money.Must("10"), ThresholdAmount: money.Must("240000")},
	{Section: "194J", Description: "Fees for professional or technical services", RatePercent: money.Must("10"), ThresholdAmount: money.Must("30000")},
	{Section: "194Q", Description: "Purchase of goods", RatePercent: money.Must("0.1"), ThresholdAmount: money.Must("5000000")},
})

// DefaultTable returns the built-in section table. It is shared and must not
// be modified; Sections returns copies.
func DefaultTable() *Table {
	return defaultTable
}

// CalculateTDS computes TDS on amount under section using the default table.
// Unknown sections and below-threshold amounts yield zero.
func CalculateTDS(amount decimal.Decimal, section string) decimal.Decimal {
	return defaultTable.Calculate(amount, section)
}

// Assess reports the TDS result under section using the default table.
func Assess(amount decimal.Decimal, section string) Result {
	return defaultTable.Assess(amount, section)
}

// Sections returns a copy of the default table.
func Sections() []TDSRecord {
	return defaultTable.Sections()
}

// Lookup finds section in the default table.
func Lookup(section string) (TDSRecord, bool) {
	return defaultTable.Lookup(section)
}
