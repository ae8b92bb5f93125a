package gst

import (
	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
)

// hsnKey joins code and rate. The same HSN code at two rates yields two rows.
func hsnKey(code string, rate decimal.Decimal) string {
	return code + "-" + rate.String()
}

// CalculateHSNSummary groups line items by (HSN code, GST rate) for the GSTR-1
// HSN table. Rows come back in the order their key was first seen. The unit of
// a row is taken from the first item in the group.
func CalculateHSNSummary(items []domain.InvoiceLineItem) []domain.HSNSummaryRow {
	index := make(map[string]int, len(items))
	rows := make([]domain.HSNSummaryRow, 0, len(items))

	for i := range items {
		item := &items[i]
		rate := item.GSTRate
		key := hsnKey(item.HSNCode, rate)

		pos, ok := index[key]
		if !ok {
			pos = len(rows)
			index[key] = pos
			rows = append(rows, domain.HSNSummaryRow{
				HSNCode:       item.HSNCode,
				GSTRate:       rate,
				Unit:          item.Unit,
				Quantity:      decimal.Zero,
				TaxableAmount: decimal.Zero,
				CGSTAmount:    decimal.Zero,
				SGSTAmount:    decimal.Zero,
				IGSTAmount:    decimal.Zero,
				CessAmount:    decimal.Zero,
				TotalAmount:   decimal.Zero,
			})
		}

		row := &rows[pos]
		row.Quantity = row.Quantity.Add(item.Quantity)
		row.TaxableAmount = row.TaxableAmount.Add(item.TaxableAmount)
		row.CGSTAmount = row.CGSTAmount.Add(item.Tax.CGSTAmount)
		row.SGSTAmount = row.SGSTAmount.Add(item.Tax.SGSTAmount)
		row.IGSTAmount = row.IGSTAmount.Add(item.Tax.IGSTAmount)
		row.CessAmount = row.CessAmount.Add(item.Tax.CessAmount)
		row.TotalAmount = row.TotalAmount.Add(item.Tax.TotalAmount)
	}
	return rows
}

// HSNSummaryTotals adds up summary rows into a single row with no HSN code,
// used as the footer of the GSTR-1 HSN table.
func HSNSummaryTotals(rows []domain.HSNSummaryRow) domain.HSNSummaryRow {
	total := domain.HSNSummaryRow{
		Quantity:      decimal.Zero,
		TaxableAmount: decimal.Zero,
		CGSTAmount:    decimal.Zero,
		SGSTAmount:    decimal.Zero,
		IGSTAmount:    decimal.Zero,
		CessAmount:    decimal.Zero,
		TotalAmount:   decimal.Zero,
	}
	for i := range rows {
		r := &rows[i]
		total.Quantity = total.Quantity.Add(r.Quantity)
		total.TaxableAmount = total.TaxableAmount.Add(r.TaxableAmount)
		total.CGSTAmount = total.CGSTAmount.Add(r.CGSTAmount)
		total.SGSTAmount = total.SGSTAmount.Add(r.SGSTAmount)
		total.IGSTAmount = total.IGSTAmount.Add(r.IGSTAmount)
		total.CessAmount = total.CessAmount.Add(r.CessAmount)
		total.TotalAmount = total.TotalAmount.Add(r.TotalAmount)
	}
	return total
}
