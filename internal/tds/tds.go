// Package tds computes tax deducted at source from a section rate table.
package tds

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
	"taxengine/internal/money"
)

// TDSRecord is one row of the section rate table.
type TDSRecord struct {
	Section         string          `json:"section"`
	Description     string          `json:"description"`
	RatePercent     decimal.Decimal `json:"rate_percent"`
	ThresholdAmount decimal.Decimal `json:"threshold_amount"`
}

// Result is a TDS amount together with how it was arrived at.
type Result struct {
	domain.Outcome
	Section string          `json:"section"`
	Amount  decimal.Decimal `json:"amount"`
}

// Table is an immutable section lookup. The zero value is an empty table.
type Table struct {
	records []TDSRecord
	index   map[string]int
}

// NewTable builds a table from records. Section codes match exactly; a later
// record for the same section replaces an earlier one.
func NewTable(records []TDSRecord) *Table {
	t := &Table{
		records: make([]TDSRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if pos, ok := t.index[r.Section]; ok {
			t.records[pos] = r
			continue
		}
		t.index[r.Section] = len(t.records)
		t.records = append(t.records, r)
	}
	return t
}

// Lookup returns the record for section. "194c" does not match "194C".
func (t *Table) Lookup(section string) (TDSRecord, bool) {
	if t == nil {
		return TDSRecord{}, false
	}
	pos, ok := t.index[section]
	if !ok {
		return TDSRecord{}, false
	}
	return t.records[pos], true
}

// Sections returns a copy of the table in declaration order.
func (t *Table) Sections() []TDSRecord {
	if t == nil {
		return nil
	}
	out := make([]TDSRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Calculate returns round2(amount * rate / 100), or zero when the section is
// unknown or amount is below the section threshold. An amount equal to the
// threshold is taxed.
func (t *Table) Calculate(amount decimal.Decimal, section string) decimal.Decimal {
	return t.Assess(amount, section).Amount
}

// Assess is Calculate with the reason for a zero amount made explicit.
func (t *Table) Assess(amount decimal.Decimal, section string) Result {
	res := Result{Section: section, Amount: decimal.Zero}

	rec, ok := t.Lookup(section)
	if !ok {
		reason := fmt.Sprintf("unknown TDS section %q", section)
		if near, found := t.Lookup(strings.ToUpper(strings.TrimSpace(section))); found {
			reason += fmt.Sprintf("; did you mean %q?", near.Section)
		}
		res.Outcome = domain.InvalidInput(reason)
		return res
	}
	res.Section = rec.Section
	if amount.IsNegative() {
		res.Outcome = domain.InvalidInput("amount is negative")
		return res
	}
	if amount.LessThan(rec.ThresholdAmount) {
		res.Outcome = domain.NotApplicable(fmt.Sprintf("amount %s is below the section %s threshold of %s",
			amount.StringFixed(2), rec.Section, rec.ThresholdAmount.StringFixed(2)))
		return res
	}
	res.Amount = money.Percent(amount, rec.RatePercent)
	res.Outcome = domain.Computed()
	return res
}
