package einvoice

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
	"taxengine/internal/gst"
	"taxengine/internal/inrfmt"
)

// InvoiceData is everything the QR payload is built from.
type InvoiceData struct {
	DocumentType  domain.DocumentType
	Number        string
	Date          string
	SupplyType    string
	ReverseCharge bool
	Seller        domain.PartyGSTDetails
	Buyer         domain.PartyGSTDetails
	Values        ValueTotals
}

// ValueTotals are the amounts reported in ValDtls.
type ValueTotals struct {
	AssessableValue   decimal.Decimal
	CGST              decimal.Decimal
	SGST              decimal.Decimal
	IGST              decimal.Decimal
	Cess              decimal.Decimal
	TotalInvoiceValue decimal.Decimal
}

// FromInvoice collects QR data from an invoice and its computed totals.
func FromInvoice(inv domain.Invoice, totals domain.InvoiceTotals) InvoiceData {
	return InvoiceData{
		DocumentType:  inv.Header.DocumentType,
		Number:        inv.Header.Number,
		Date:          inv.Header.Date,
		ReverseCharge: inv.Header.ReverseCharge,
		Seller:        inv.Supplier,
		Buyer:         inv.Buyer,
		Values: ValueTotals{
			AssessableValue:   totals.TaxableAmount,
			CGST:              totals.CGST,
			SGST:              totals.SGST,
			IGST:              totals.IGST,
			Cess:              totals.Cess,
			TotalInvoiceValue: totals.GrandTotal,
		},
	}
}

// BuildPayload maps invoice data onto the QR schema. Missing document type
// and supply type default to INV and B2B.
func BuildPayload(data InvoiceData) Payload {
	docType := data.DocumentType
	if docType == "" {
		docType = domain.DocumentTypeInvoice
	}
	supplyType := data.SupplyType
	if supplyType == "" {
		supplyType = SupplyTypeB2B
	}
	regRev := FlagNo
	if data.ReverseCharge {
		regRev = FlagYes
	}

	return Payload{
		Version: SchemaVersion,
		Mode:    ModeGenerate,
		Tran: TranDetails{
			TaxSch:      TaxSchemeGST,
			SupTyp:      supplyType,
			RegRev:      regRev,
			IgstOnIntra: FlagNo,
		},
		Doc: DocDetails{
			Typ: string(docType),
			No:  data.Number,
			Dt:  inrfmt.EInvoiceDate(data.Date),
		},
		Seller: partyDetails(data.Seller),
		Buyer:  partyDetails(data.Buyer),
		ValDtls: ValueDetails{
			AssVal:    amount(data.Values.AssessableValue),
			CgstVal:   amount(data.Values.CGST),
			SgstVal:   amount(data.Values.SGST),
			IgstVal:   amount(data.Values.IGST),
			CesVal:    amount(data.Values.Cess),
			TotInvVal: amount(data.Values.TotalInvoiceValue),
		},
	}
}

// GenerateEInvoiceQR returns the QR payload as a JSON string.
func GenerateEInvoiceQR(data InvoiceData) (string, error) {
	b, err := json.Marshal(BuildPayload(data))
	if err != nil {
		return "", fmt.Errorf("einvoice.GenerateEInvoiceQR: marshal payload: %w", err)
	}
	return string(b), nil
}

func partyDetails(p domain.PartyGSTDetails) PartyDetails {
	pin, err := strconv.Atoi(p.Address.Pincode)
	if err != nil {
		pin = 0
	}
	return PartyDetails{
		Gstin: p.GSTIN,
		LglNm: p.BusinessName,
		Addr1: p.Address.Line1,
		Loc:   p.Address.Locality,
		Pin:   pin,
		Stcd:  gst.PartyStateCode(p),
	}
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
