package gst

import (
	"strings"

	"github.com/shopspring/decimal"

	"taxengine/internal/port"
)

// HSNRate is a notified GST rate for an HSN code, with the condition under
// which it applies (empty for the default rate).
type HSNRate struct {
	Rate          decimal.Decimal `json:"rate"`
	ConditionDesc string          `json:"condition_desc,omitempty"`
}

// HSNLookup answers code and rate questions against the HSN master.
// It is immutable after construction and safe for concurrent use.
type HSNLookup struct {
	byCode map[string][]HSNRate
}

// NewHSNLookup indexes master entries by code. A code may carry several rates.
func NewHSNLookup(entries []port.HSNEntry) *HSNLookup {
	m := make(map[string][]HSNRate, len(entries))
	for i := range entries {
		e := &entries[i]
		code := strings.TrimSpace(e.Code)
		m[code] = append(m[code], HSNRate{Rate: e.GSTRate, ConditionDesc: e.ConditionDesc})
	}
	return &HSNLookup{byCode: m}
}

// Len returns the number of distinct codes.
func (h *HSNLookup) Len() int {
	if h == nil {
		return 0
	}
	return len(h.byCode)
}

// Rates returns the rates for code, falling back from 8 to 6 to 4 digit
// prefixes when the exact code is absent.
func (h *HSNLookup) Rates(code string) []HSNRate {
	if h.Len() == 0 || code == "" {
		return nil
	}
	if rates, ok := h.byCode[code]; ok {
		return rates
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if rates, ok := h.byCode[code[:prefixLen]]; ok {
				return rates
			}
		}
	}
	return nil
}

// Exists reports whether code, or one of its prefixes, is in the master.
func (h *HSNLookup) Exists(code string) bool {
	return len(h.Rates(code)) > 0
}

// RateMatches reports whether rate is one of the notified rates for code and
// returns the notified rates.
func (h *HSNLookup) RateMatches(code string, rate decimal.Decimal) (matched bool, valid []HSNRate) {
	valid = h.Rates(code)
	for i := range valid {
		if valid[i].Rate.Equal(rate) {
			return true, valid
		}
	}
	return false, valid
}

// SuggestRate returns the default rate for code: the first unconditional
// entry, or the first entry when every rate is conditional.
func (h *HSNLookup) SuggestRate(code string) (decimal.Decimal, bool) {
	rates := h.Rates(code)
	if len(rates) == 0 {
		return decimal.Zero, false
	}
	for i := range rates {
		if rates[i].ConditionDesc == "" {
			return rates[i].Rate, true
		}
	}
	return rates[0].Rate, true
}
