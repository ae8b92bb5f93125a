package inrfmt

import (
	"fmt"
	"strings"
	"time"
)

// FinancialYear returns the Indian financial year (April to March) containing
// ref, e.g. "2024-25" for any date from 1 April 2024 to 31 March 2025.
func FinancialYear(ref time.Time) string {
	year := ref.Year()
	if ref.Month() >= time.April {
		return fmt.Sprintf("%d-%02d", year, (year+1)%100)
	}
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}

// CurrentFinancialYear returns the financial year for the clock's current
// time. A nil clock uses time.Now.
func CurrentFinancialYear(clock func() time.Time) string {
	if clock == nil {
		clock = time.Now
	}
	return FinancialYear(clock())
}

// FinancialYearOf derives the financial year from an invoice date string in
// any of the formats ParseDate accepts.
func FinancialYearOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FinancialYear(t), nil
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 02, 2006",
	"January 02, 2006",
	"02-01-2006 15:04:05",
	time.RFC3339,
}

// ParseDate parses the date formats found on Indian invoices. Day-first
// layouts win over month-first ones.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", s)
}

// EInvoiceDate renders a date as dd/mm/yyyy, the format of the e-invoice
// schema. Unparseable input is returned unchanged.
func EInvoiceDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
