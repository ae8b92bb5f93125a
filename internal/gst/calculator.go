package gst

import (
	"fmt"

	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
	"taxengine/internal/money"
)

var half = decimal.NewFromFloat(0.5)

// Standard GST slabs, including the special rates for precious stones (0.25),
// gold (3), and the 0.1/1.5 concessional rates.
var standardRates = []decimal.Decimal{
	decimal.Zero,
	money.Must("0.1"),
	money.Must("0.25"),
	money.Must("1.5"),
	decimal.NewFromInt(3),
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// IsInterState reports whether a supply between the two state codes is
// inter-state. Codes are compared as strings.
func IsInterState(supplierStateCode, customerStateCode string) bool {
	return supplierStateCode != customerStateCode
}

// CalculateGST splits gstRate into CGST+SGST for intra-state supplies or IGST
// for inter-state supplies and computes each amount, cess included.
//
// Every component is rounded to paise on its own; the GST total is the sum of
// the rounded components. Odd rates are halved exactly (e.g. 0.25 -> 0.125 each).
// Negative amounts are not rejected and flow through arithmetically; use
// AssessGST to have them flagged.
func CalculateGST(taxableAmount, gstRate decimal.Decimal, supplierStateCode, customerStateCode string, cessRate decimal.Decimal) domain.GSTBreakdown {
	var b domain.GSTBreakdown
	if IsInterState(supplierStateCode, customerStateCode) {
		b.IGSTRate = gstRate
		b.CGSTRate = decimal.Zero
		b.SGSTRate = decimal.Zero
	} else {
		b.IGSTRate = decimal.Zero
		b.CGSTRate = gstRate.Mul(half)
		b.SGSTRate = gstRate.Mul(half)
	}
	b.CessRate = cessRate

	b.CGSTAmount = money.Percent(taxableAmount, b.CGSTRate)
	b.SGSTAmount = money.Percent(taxableAmount, b.SGSTRate)
	b.IGSTAmount = money.Percent(taxableAmount, b.IGSTRate)
	b.CessAmount = money.Percent(taxableAmount, b.CessRate)

	b.TotalGST = money.Sum(b.CGSTAmount, b.SGSTAmount, b.IGSTAmount, b.CessAmount)
	b.TotalAmount = money.Round2(taxableAmount.Add(b.TotalGST))
	return b
}

// AssessGST computes the same breakdown as CalculateGST and reports whether the
// inputs were acceptable. Invalid inputs still produce the arithmetic result so
// forms can keep rendering.
func AssessGST(taxableAmount, gstRate decimal.Decimal, supplierStateCode, customerStateCode string, cessRate decimal.Decimal) (domain.GSTBreakdown, domain.Outcome) {
	b := CalculateGST(taxableAmount, gstRate, supplierStateCode, customerStateCode, cessRate)

	switch {
	case !ValidateStateCode(supplierStateCode):
		return b, domain.InvalidInput(fmt.Sprintf("supplier state code %q is not a valid GST state code", supplierStateCode))
	case !ValidateStateCode(customerStateCode):
		return b, domain.InvalidInput(fmt.Sprintf("customer state code %q is not a valid GST state code", customerStateCode))
	case taxableAmount.IsNegative():
		return b, domain.InvalidInput("taxable amount is negative")
	case gstRate.IsNegative():
		return b, domain.InvalidInput("gst rate is negative")
	case cessRate.IsNegative():
		return b, domain.InvalidInput("cess rate is negative")
	}
	return b, domain.Computed()
}

// IsStandardRate reports whether rate is one of the notified GST slabs.
func IsStandardRate(rate decimal.Decimal) bool {
	for _, r := range standardRates {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

// TaxableAmount returns quantity*unitRate - discount, floored at zero.
func TaxableAmount(quantity, unitRate, discount decimal.Decimal) decimal.Decimal {
	amount := money.Round2(quantity.Mul(unitRate).Sub(discount))
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
