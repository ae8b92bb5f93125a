package gst

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
	"taxengine/internal/inrfmt"
	"taxengine/internal/money"
)

// LineInput is a line as entered on the invoice form, before tax.
type LineInput struct {
	Description string
	HSNCode     string
	Unit        string
	Quantity    decimal.Decimal
	UnitRate    decimal.Decimal
	Discount    decimal.Decimal
	GSTRate     decimal.Decimal
	CessRate    decimal.Decimal
}

// NewLineItem prices and taxes a form line and gives it a fresh identity.
func NewLineItem(in LineInput, supplierStateCode, customerStateCode string) domain.InvoiceLineItem {
	taxable := TaxableAmount(in.Quantity, in.UnitRate, in.Discount)
	return domain.InvoiceLineItem{
		ID:          uuid.New(),
		Description: in.Description,
		HSNCode:     in.HSNCode,
		Unit:        in.Unit,
		TaxableLine: domain.TaxableLine{
			TaxableAmount: taxable,
			GSTRate:       in.GSTRate,
			CessRate:      in.CessRate,
			Quantity:      in.Quantity,
			UnitRate:      in.UnitRate,
			Discount:      in.Discount,
		},
		Tax: CalculateGST(taxable, in.GSTRate, supplierStateCode, customerStateCode, in.CessRate),
	}
}

// CustomerStateCode is the state that decides the tax split: the place of
// supply when set, otherwise the buyer's state code or GSTIN prefix.
func CustomerStateCode(inv domain.Invoice) string {
	if inv.Header.PlaceOfSupply != "" {
		return inv.Header.PlaceOfSupply
	}
	return PartyStateCode(inv.Buyer)
}

// SupplierStateCode is the supplier's state code or GSTIN prefix.
func SupplierStateCode(inv domain.Invoice) string {
	return PartyStateCode(inv.Supplier)
}

// ComputeTotals adds up the lines of an invoice. The grand total is rounded to
// the nearest rupee and the adjustment is reported as RoundOff.
func ComputeTotals(items []domain.InvoiceLineItem) domain.InvoiceTotals {
	t := domain.InvoiceTotals{
		TaxableAmount: decimal.Zero,
		CGST:          decimal.Zero,
		SGST:          decimal.Zero,
		IGST:          decimal.Zero,
		Cess:          decimal.Zero,
	}
	for i := range items {
		item := &items[i]
		t.TaxableAmount = t.TaxableAmount.Add(item.TaxableAmount)
		t.CGST = t.CGST.Add(item.Tax.CGSTAmount)
		t.SGST = t.SGST.Add(item.Tax.SGSTAmount)
		t.IGST = t.IGST.Add(item.Tax.IGSTAmount)
		t.Cess = t.Cess.Add(item.Tax.CessAmount)
	}
	t.TotalGST = money.Sum(t.CGST, t.SGST, t.IGST, t.Cess)

	exact := money.Round2(t.TaxableAmount.Add(t.TotalGST))
	t.RoundOff = money.RoundOff(exact)
	t.GrandTotal = exact.Add(t.RoundOff)
	t.AmountInWords = inrfmt.RupeesInWords(t.GrandTotal)
	return t
}
