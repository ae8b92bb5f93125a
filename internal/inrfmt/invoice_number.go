package inrfmt

import "fmt"

// GenerateInvoiceNumber returns "{companyCode}/{financialYear}/{sequence}"
// with the sequence zero-padded to four digits, e.g. "ACME/2024-25/0042".
func GenerateInvoiceNumber(companyCode, financialYear string, sequence int) string {
	return fmt.Sprintf("%s/%s/%04d", companyCode, financialYear, sequence)
}
