package inrfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
	hundred  = 100
)

var (
	unitWords = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords = [...]string{
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
		"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	tenWords = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// NumberToWordsIndian spells out the integer part of amount on the Indian
// scale with an "Only" suffix: 100000 -> "One Lakh Only". Zero is "Zero".
// Paise are ignored; see RupeesInWords.
func NumberToWordsIndian(amount decimal.Decimal) string {
	n := amount.IntPart()
	if n == 0 {
		return "Zero"
	}
	sign := ""
	if n < 0 {
		sign = "Minus "
		n = -n
	}
	return sign + indianWords(n) + " Only"
}

// RupeesInWords spells out a rupee amount including paise, e.g.
// 1180.50 -> "Rupees One Thousand One Hundred Eighty and Fifty Paise Only".
func RupeesInWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "Minus "
		amount = amount.Abs()
	}
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Shift(2).IntPart()

	switch {
	case rupees == 0 && paise == 0:
		return "Rupees Zero Only"
	case paise == 0:
		return sign + "Rupees " + indianWords(rupees) + " Only"
	case rupees == 0:
		return sign + twoDigitWords(paise) + " Paise Only"
	default:
		return sign + "Rupees " + indianWords(rupees) + " and " + twoDigitWords(paise) + " Paise Only"
	}
}

// indianWords converts n > 0 by splitting it into crore, lakh, thousand and
// hundred buckets. Crore counts above 99 are spelled out recursively.
func indianWords(n int64) string {
	var b strings.Builder

	if c := n / crore; c > 0 {
		if c > 99 {
			b.WriteString(indianWords(c))
		} else {
			b.WriteString(twoDigitWords(c))
		}
		b.WriteString(" Crore ")
		n %= crore
	}
	if l := n / lakh; l > 0 {
		b.WriteString(twoDigitWords(l))
		b.WriteString(" Lakh ")
		n %= lakh
	}
	if t := n / thousand; t > 0 {
		b.WriteString(twoDigitWords(t))
		b.WriteString(" Thousand ")
		n %= thousand
	}
	if h := n / hundred; h > 0 {
		b.WriteString(unitWords[h])
		b.WriteString(" Hundred ")
		n %= hundred
	}
	if n > 0 {
		b.WriteString(twoDigitWords(n))
	}
	return strings.TrimSpace(b.String())
}

// twoDigitWords converts 1..99.
func twoDigitWords(n int64) string {
	switch {
	case n < 10:
		return unitWords[n]
	case n < 20:
		return teenWords[n-10]
	case n%10 == 0:
		return tenWords[n/10]
	default:
		return tenWords[n/10] + " " + unitWords[n%10]
	}
}
