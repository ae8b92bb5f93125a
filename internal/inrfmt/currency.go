// Package inrfmt renders amounts the way Indian invoices print them: lakh/crore
// digit grouping, rupee symbol, amounts in words, invoice numbers and
// financial years.
package inrfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol is prefixed to formatted currency amounts.
const RupeeSymbol = "₹"

// numberFractionDigits is the most fraction digits FormatIndianNumber prints.
const numberFractionDigits = 3

// FormatIndianCurrency formats amount with two decimals and Indian grouping,
// e.g. 12345678.9 -> "₹1,23,45,678.90". Negative amounts get a leading "-".
func FormatIndianCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	intPart, fracPart := splitFixed(amount.Abs().StringFixed(2))
	return sign + RupeeSymbol + GroupIndian(intPart) + "." + fracPart
}

// FormatIndianNumber formats n with Indian grouping and no symbol. Up to three
// fraction digits are kept and trailing zeros are dropped.
func FormatIndianNumber(n decimal.Decimal) string {
	rounded := n.Round(numberFractionDigits)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	intPart, fracPart := splitFixed(rounded.Abs().String())
	out := sign + GroupIndian(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	return out
}

// GroupIndian inserts commas into a string of digits: the last three digits
// form one group and every two digits before them form another.
func GroupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head := digits[:n-3]
	var b strings.Builder
	b.Grow(n + n/2)
	lead := len(head) % 2
	if lead == 1 {
		b.WriteString(head[:1])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(digits[n-3:])
	return b.String()
}

func splitFixed(s string) (intPart, fracPart string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
