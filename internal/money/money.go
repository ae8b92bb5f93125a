// Package money holds the fixed-point helpers shared by the tax calculators.
// Every amount is a decimal.Decimal; nothing in the pipeline goes through float64.
package money

import "github.com/shopspring/decimal"

// Scale is the number of decimal places kept on every monetary amount.
const Scale int32 = 2

// Round2 rounds to paise. Halves round away from zero, which is round-half-up
// for the non-negative amounts invoices carry.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Percent returns round2(amount * rate / 100).
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Shift(-2))
}

// Sum adds amounts without rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// FromFloat converts a float literal (form input, JSON number) to a decimal
// using the shortest representation that round-trips.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Must parses a decimal string and panics on error. Intended for constants and tests.
func Must(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RoundOff returns the adjustment that brings amount to the nearest rupee.
// The result is always within [-0.50, +0.50].
func RoundOff(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0).Sub(amount)
}
