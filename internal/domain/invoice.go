package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxableLine is the pricing input of one invoice line.
// TaxableAmount is quantity*unit rate minus discount and is never negative.
type TaxableLine struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	CessRate      decimal.Decimal `json:"cess_rate"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitRate      decimal.Decimal `json:"unit_rate"`
	Discount      decimal.Decimal `json:"discount"`
}

// GSTBreakdown is the tax split of a single taxable amount. Either IGSTRate or
// the CGST/SGST pair is non-zero, never both.
type GSTBreakdown struct {
	CGSTRate    decimal.Decimal `json:"cgst_rate"`
	SGSTRate    decimal.Decimal `json:"sgst_rate"`
	IGSTRate    decimal.Decimal `json:"igst_rate"`
	CessRate    decimal.Decimal `json:"cess_rate"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount"`
	IGSTAmount  decimal.Decimal `json:"igst_amount"`
	CessAmount  decimal.Decimal `json:"cess_amount"`
	TotalGST    decimal.Decimal `json:"total_gst"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// IsInterState reports whether the breakdown was charged as IGST.
func (b GSTBreakdown) IsInterState() bool {
	return !b.IGSTRate.IsZero()
}

// InvoiceLineItem is a priced, taxed line on an invoice. It is immutable once
// added to an Invoice.
type InvoiceLineItem struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	HSNCode     string    `json:"hsn_code"`
	Unit        string    `json:"unit"`
	TaxableLine
	Tax GSTBreakdown `json:"tax"`
}

// Address is the postal address printed on invoices and in the e-invoice QR.
type Address struct {
	Line1    string `json:"line1"`
	Locality string `json:"locality"`
	Pincode  string `json:"pincode"`
}

// PartyGSTDetails identifies a supplier or buyer. StateCode, when present,
// must equal the first two characters of GSTIN.
type PartyGSTDetails struct {
	GSTIN        string  `json:"gstin"`
	PANNumber    string  `json:"pan_number"`
	BusinessName string  `json:"business_name"`
	StateCode    string  `json:"state_code"`
	Address      Address `json:"address"`
}

// InvoiceHeader holds the document-level fields of an invoice.
type InvoiceHeader struct {
	Number        string        `json:"number"`
	Date          string        `json:"date"`
	DueDate       string        `json:"due_date"`
	DocumentType  DocumentType  `json:"document_type"`
	PlaceOfSupply string        `json:"place_of_supply"`
	TransportMode TransportMode `json:"transport_mode"`
	ReverseCharge bool          `json:"reverse_charge"`
}

// Invoice is the aggregate root: header, parties and an ordered list of lines.
type Invoice struct {
	Header   InvoiceHeader     `json:"header"`
	Supplier PartyGSTDetails   `json:"supplier"`
	Buyer    PartyGSTDetails   `json:"buyer"`
	Items    []InvoiceLineItem `json:"items"`
}

// InvoiceTotals are derived from an invoice's lines.
type InvoiceTotals struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	Cess          decimal.Decimal `json:"cess"`
	TotalGST      decimal.Decimal `json:"total_gst"`
	RoundOff      decimal.Decimal `json:"round_off"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	AmountInWords string          `json:"amount_in_words"`
}

// HSNSummaryRow aggregates all lines sharing an (HSN code, GST rate) pair.
type HSNSummaryRow struct {
	HSNCode       string          `json:"hsn_code"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	CessAmount    decimal.Decimal `json:"cess_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// WithItem returns a copy of the invoice with item appended.
func (inv Invoice) WithItem(item InvoiceLineItem) Invoice {
	items := make([]InvoiceLineItem, len(inv.Items), len(inv.Items)+1)
	copy(items, inv.Items)
	inv.Items = append(items, item)
	return inv
}

// WithoutItem returns a copy of the invoice without the line identified by id.
func (inv Invoice) WithoutItem(id uuid.UUID) Invoice {
	items := make([]InvoiceLineItem, 0, len(inv.Items))
	for i := range inv.Items {
		if inv.Items[i].ID != id {
			items = append(items, inv.Items[i])
		}
	}
	inv.Items = items
	return inv
}
