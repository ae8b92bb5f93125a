// Package einvoice builds the signed-QR summary of an e-invoice. Field names
// follow the e-invoice schema abbreviations and must not be renamed.
package einvoice

import (
	"encoding/json"
)

const (
	SchemaVersion = "1.1"
	ModeGenerate  = "1"
	TaxSchemeGST  = "GST"
	SupplyTypeB2B = "B2B"
	FlagYes       = "Y"
	FlagNo        = "N"
)

// MaxDocumentNumberLength is the longest Doc.No the schema accepts.
const MaxDocumentNumberLength = 16

// Payload is the QR document.
type Payload struct {
	Version string       `json:"Version"`
	Mode    string       `json:"Mode"`
	Tran    TranDetails  `json:"Tran"`
	Doc     DocDetails   `json:"Doc"`
	Seller  PartyDetails `json:"Seller"`
	Buyer   PartyDetails `json:"Buyer"`
	ValDtls ValueDetails `json:"ValDtls"`
}

// TranDetails carries the transaction category.
type TranDetails struct {
	TaxSch      string `json:"TaxSch"`
	SupTyp      string `json:"SupTyp"`
	RegRev      string `json:"RegRev"`
	IgstOnIntra string `json:"IgstOnIntra"`
}

// DocDetails identifies the document. Dt is dd/mm/yyyy.
type DocDetails struct {
	Typ string `json:"Typ"`
	No  string `json:"No"`
	Dt  string `json:"Dt"`
}

// PartyDetails is the seller or buyer block.
type PartyDetails struct {
	Gstin string `json:"Gstin"`
	LglNm string `json:"LglNm"`
	Addr1 string `json:"Addr1"`
	Loc   string `json:"Loc"`
	Pin   int    `json:"Pin"`
	Stcd  string `json:"Stcd"`
}

// ValueDetails holds the invoice value totals as JSON numbers with two
// decimals.
type ValueDetails struct {
	AssVal    json.Number `json:"AssVal"`
	CgstVal   json.Number `json:"CgstVal"`
	SgstVal   json.Number `json:"SgstVal"`
	IgstVal   json.Number `json:"IgstVal"`
	CesVal    json.Number `json:"CesVal"`
	TotInvVal json.Number `json:"TotInvVal"`
}
