package handler

import (
	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
	"taxengine/internal/gst"
	"taxengine/internal/service"
)

// Request and response types referenced by the swag annotations.

// --- Request Types ---

// ValidateRequest checks one identifier, or a batch when Items is set.
type ValidateRequest struct {
	Type  domain.IdentifierType     `json:"type" example:"gstin"`
	Value string                    `json:"value" example:"27AAPFU0939F1ZV"`
	Items []service.IdentifierCheck `json:"items" binding:"max=500"`
}

// GSTRequest represents a single GST calculation.
type GSTRequest struct {
	TaxableAmount     decimal.Decimal `json:"taxable_amount" swaggertype:"string" example:"1000.00"`
	GSTRate           decimal.Decimal `json:"gst_rate" swaggertype:"string" example:"18"`
	CessRate          decimal.Decimal `json:"cess_rate" swaggertype:"string" example:"0"`
	SupplierStateCode string          `json:"supplier_state_code" binding:"required" example:"27"`
	CustomerStateCode string          `json:"customer_state_code" binding:"required" example:"29"`
}

// TDSRequest represents a TDS calculation.
type TDSRequest struct {
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"50000"`
	Section string          `json:"section" binding:"required" example:"194C"`
}

// AddressRequest is a postal address.
type AddressRequest struct {
	Line1    string `json:"line1" binding:"max=100" example:"12 MG Road"`
	Locality string `json:"locality" binding:"max=100" example:"Pune"`
	Pincode  string `json:"pincode" binding:"omitempty,pincode" example:"411001"`
}

// PartyRequest is a supplier or buyer.
type PartyRequest struct {
	GSTIN        string         `json:"gstin" binding:"omitempty,gstin" example:"27AAPFU0939F1ZV"`
	PANNumber    string         `json:"pan_number" binding:"omitempty,pan" example:"AAPFU0939F"`
	BusinessName string         `json:"business_name" binding:"max=200" example:"Acme Traders"`
	StateCode    string         `json:"state_code" binding:"omitempty,statecode" example:"27"`
	Address      AddressRequest `json:"address"`
}

// HeaderRequest holds the document fields of an invoice.
type HeaderRequest struct {
	Number        string `json:"number" example:"ACME/2024-25/0001"`
	Date          string `json:"date" example:"2024-05-20"`
	DueDate       string `json:"due_date" example:"2024-06-19"`
	DocumentType  string `json:"document_type" binding:"omitempty,oneof=INV CRN DBN" example:"INV"`
	PlaceOfSupply string `json:"place_of_supply" binding:"omitempty,statecode" example:"29"`
	TransportMode string `json:"transport_mode" binding:"omitempty,oneof=road rail air ship" example:"road"`
	ReverseCharge bool   `json:"reverse_charge" example:"false"`
}

// LineRequest is an invoice line. A missing gst_rate is filled from the HSN master.
type LineRequest struct {
	Description string           `json:"description" binding:"max=300" example:"Basmati rice"`
	HSNCode     string           `json:"hsn_code" binding:"omitempty,hsn" example:"1006"`
	Unit        string           `json:"unit" binding:"max=8" example:"KGS"`
	Quantity    decimal.Decimal  `json:"quantity" swaggertype:"string" example:"10"`
	UnitRate    decimal.Decimal  `json:"unit_rate" swaggertype:"string" example:"100"`
	Discount    decimal.Decimal  `json:"discount" swaggertype:"string" example:"0"`
	GSTRate     *decimal.Decimal `json:"gst_rate" swaggertype:"string" example:"5"`
	CessRate    decimal.Decimal  `json:"cess_rate" swaggertype:"string" example:"0"`
}

// InvoiceRequest is a full invoice to price.
type InvoiceRequest struct {
	Header   HeaderRequest `json:"header"`
	Supplier PartyRequest  `json:"supplier"`
	Buyer    PartyRequest  `json:"buyer"`
	Items    []LineRequest `json:"items" binding:"required,min=1,max=1000,dive"`
}

// FormatRequest carries an amount to format.
type FormatRequest struct {
	Amount string `json:"amount" form:"amount" binding:"required" example:"1234567.891"`
}

// InvoiceNumberQuery selects the sequence and financial year of a number.
type InvoiceNumberQuery struct {
	Sequence      int    `form:"seq" binding:"required,min=1" example:"1"`
	FinancialYear string `form:"fy" binding:"omitempty,financialyear" example:"2024-25"`
}

// FinancialYearQuery holds an optional date; empty means today.
type FinancialYearQuery struct {
	Date string `form:"date" example:"2024-05-20"`
}

// --- Response Types ---

// ValidationResponse lists identifier results.
type ValidationResponse struct {
	Results []service.IdentifierResult `json:"results"`
}

// HSNSummaryResponse is the JSON form of the GSTR-1 HSN table.
type HSNSummaryResponse struct {
	Rows     []domain.HSNSummaryRow `json:"rows"`
	Total    domain.HSNSummaryRow   `json:"total"`
	Warnings []gst.FieldIssue       `json:"warnings"`
}

// EInvoiceQRResponse carries the QR payload string.
type EInvoiceQRResponse struct {
	Payload string `json:"payload" example:"{\"Version\":\"1.1\"}"`
}

// InvoiceNumberResponse is a generated invoice number.
type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoice_number" example:"ACME/2024-25/0001"`
	FinancialYear string `json:"financial_year" example:"2024-25"`
}

// FinancialYearResponse is the financial year of a date.
type FinancialYearResponse struct {
	Date          string `json:"date,omitempty" example:"2024-05-20"`
	FinancialYear string `json:"financial_year" example:"2024-25"`
}

// FormatResponse carries the formatted renditions of an amount.
type FormatResponse struct {
	Amount      string `json:"amount" example:"1234567.891"`
	Currency    string `json:"currency,omitempty" example:"₹12,34,567.89"`
	Number      string `json:"number,omitempty" example:"12,34,567.891"`
	Words       string `json:"words,omitempty" example:"Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Only"`
	RupeesWords string `json:"rupees_words,omitempty" example:"Rupees Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven and Eighty Nine Paise Only"`
}

func (r *AddressRequest) toDomain() domain.Address {
	return domain.Address{Line1: r.Line1, Locality: r.Locality, Pincode: r.Pincode}
}

func (r *PartyRequest) toDomain() domain.PartyGSTDetails {
	return domain.PartyGSTDetails{
		GSTIN:        r.GSTIN,
		PANNumber:    r.PANNumber,
		BusinessName: r.BusinessName,
		StateCode:    r.StateCode,
		Address:      r.Address.toDomain(),
	}
}

// ToInput converts the request into the service input. Lines without a
// gst_rate take their rate from the HSN master.
func (r *InvoiceRequest) ToInput() service.InvoiceInput {
	in := service.InvoiceInput{
		Header: domain.InvoiceHeader{
			Number:        r.Header.Number,
			Date:          r.Header.Date,
			DueDate:       r.Header.DueDate,
			DocumentType:  domain.DocumentType(r.Header.DocumentType),
			PlaceOfSupply: r.Header.PlaceOfSupply,
			TransportMode: domain.TransportMode(r.Header.TransportMode),
			ReverseCharge: r.Header.ReverseCharge,
		},
		Supplier: r.Supplier.toDomain(),
		Buyer:    r.Buyer.toDomain(),
		Lines:    make([]service.LineRequest, 0, len(r.Items)),
	}
	for i := range r.Items {
		item := &r.Items[i]
		line := service.LineRequest{
			LineInput: gst.LineInput{
				Description: item.Description,
				HSNCode:     item.HSNCode,
				Unit:        item.Unit,
				Quantity:    item.Quantity,
				UnitRate:    item.UnitRate,
				Discount:    item.Discount,
				CessRate:    item.CessRate,
			},
		}
		if item.GSTRate != nil {
			line.GSTRate = *item.GSTRate
		} else {
			line.RateFromMaster = true
		}
		in.Lines = append(in.Lines, line)
	}
	return in
}
