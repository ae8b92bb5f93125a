// Package export renders the GSTR-1 HSN summary as CSV or an Excel workbook.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"taxengine/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first so Excel on Windows
// detects the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns is the GSTR-1 HSN table header.
var columns = []string{
	"HSN",
	"UQC",
	"Total Quantity",
	"Rate",
	"Taxable Value",
	"Integrated Tax Amount",
	"Central Tax Amount",
	"State/UT Tax Amount",
	"Cess Amount",
	"Total Value",
}

// TotalLabel marks the footer row in the HSN column.
const TotalLabel = "TOTAL"

// Columns returns a copy of the header row.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

func summaryToRow(r *domain.HSNSummaryRow) []string {
	return []string{
		r.HSNCode,
		r.Unit,
		formatQuantity(r.Quantity),
		formatRate(r.GSTRate),
		formatMoney(r.TaxableAmount),
		formatMoney(r.IGSTAmount),
		formatMoney(r.CGSTAmount),
		formatMoney(r.SGSTAmount),
		formatMoney(r.CessAmount),
		formatMoney(r.TotalAmount),
	}
}

func totalToRow(total *domain.HSNSummaryRow) []string {
	row := summaryToRow(total)
	row[0] = TotalLabel
	row[1] = ""
	row[3] = ""
	return row
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatQuantity(d decimal.Decimal) string {
	return d.Round(3).String()
}

func formatRate(d decimal.Decimal) string {
	return d.String()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns "{sanitized base}_{YYYY-MM-DD}.{ext}" for the given
// export format. An empty base becomes "hsn_summary".
func BuildFilename(base string, format domain.ExportFormat, now time.Time) string {
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = "hsn_summary"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), format)
}

// ContentType returns the MIME type of an export format.
func ContentType(format domain.ExportFormat) string {
	switch format {
	case domain.ExportFormatCSV:
		return "text/csv; charset=utf-8"
	case domain.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}
