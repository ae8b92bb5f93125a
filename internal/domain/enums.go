package domain

// DocumentType is the e-invoice document type code.
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "INV"
	DocumentTypeCreditNote DocumentType = "CRN"
	DocumentTypeDebitNote  DocumentType = "DBN"
)

// TransportMode follows the e-way bill transport mode codes.
type TransportMode string

const (
	TransportModeRoad TransportMode = "road"
	TransportModeRail TransportMode = "rail"
	TransportModeAir  TransportMode = "air"
	TransportModeShip TransportMode = "ship"
)

// IdentifierType names the identifiers the validators understand.
type IdentifierType string

const (
	IdentifierGSTIN     IdentifierType = "gstin"
	IdentifierPAN       IdentifierType = "pan"
	IdentifierPincode   IdentifierType = "pincode"
	IdentifierMobile    IdentifierType = "mobile"
	IdentifierAadhar    IdentifierType = "aadhar"
	IdentifierIFSC      IdentifierType = "ifsc"
	IdentifierStateCode IdentifierType = "state_code"
	IdentifierHSN       IdentifierType = "hsn"
)

// ExportFormat is the output format of report downloads.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)
