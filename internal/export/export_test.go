package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taxengine/internal/domain"
	"taxengine/internal/export"
	"taxengine/internal/gst"
	"taxengine/internal/money"
)

func sampleSummary() ([]domain.HSNSummaryRow, domain.HSNSummaryRow) {
	items := []domain.InvoiceLineItem{
		gst.NewLineItem(gst.LineInput{HSNCode: "1006", Unit: "KGS", Quantity: money.Must("2"), UnitRate: money.Must("50"), GSTRate: money.Must("5")}, "27", "29"),
		gst.NewLineItem(gst.LineInput{HSNCode: "8471", Unit: "NOS", Quantity: money.Must("1"), UnitRate: money.Must("1000"), GSTRate: money.Must("18")}, "27", "29"),
	}
	rows := gst.CalculateHSNSummary(items)
	return rows, gst.HSNSummaryTotals(rows)
}

func TestWriteHSNSummaryCSV(t *testing.T) {
	rows, total := sampleSummary()

	var buf bytes.Buffer
	require.NoError(t, export.WriteHSNSummaryCSV(&buf, rows, total))
	require.True(t, bytes.HasPrefix(buf.Bytes(), export.BOM))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, export.Columns(), records[0])
	assert.Equal(t, []string{"1006", "KGS", "2", "5", "100.00", "5.00", "0.00", "0.00", "0.00", "105.00"}, records[1])
	assert.Equal(t, []string{"8471", "NOS", "1", "18", "1000.00", "180.00", "0.00", "0.00", "0.00", "1180.00"}, records[2])
	assert.Equal(t, []string{"TOTAL", "", "3", "", "1100.00", "185.00", "0.00", "0.00", "0.00", "1285.00"}, records[3])
}

func TestWriteHSNSummaryCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteHSNSummaryCSV(&buf, nil, gst.HSNSummaryTotals(nil)))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TOTAL", records[1][0])
}

func TestWriteHSNSummaryXLSX(t *testing.T) {
	rows, total := sampleSummary()

	var buf bytes.Buffer
	require.NoError(t, export.WriteHSNSummaryXLSX(&buf, rows, total))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheetRows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, sheetRows, 4)
	assert.Equal(t, "HSN", sheetRows[0][0])
	assert.Equal(t, "1006", sheetRows[1][0])
	assert.Equal(t, "8471", sheetRows[2][0])
	assert.Equal(t, "TOTAL", sheetRows[3][0])

	v, err := f.GetCellValue(export.SheetName, "J4")
	require.NoError(t, err)
	assert.Equal(t, "1285", v)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "ACME_2024-25_0001", export.SanitizeFilename("ACME/2024-25/0001"))
	assert.Equal(t, "a_b", export.SanitizeFilename("  a!!  b  "))
	assert.Len(t, export.SanitizeFilename(string(bytes.Repeat([]byte("x"), 150))), 100)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "ACME_0001_2025-01-15.csv", export.BuildFilename("ACME/0001", domain.ExportFormatCSV, now))
	assert.Equal(t, "hsn_summary_2025-01-15.xlsx", export.BuildFilename("", domain.ExportFormatXLSX, now))
}

func TestContentType(t *testing.T) {
	assert.Contains(t, export.ContentType(domain.ExportFormatCSV), "text/csv")
	assert.Contains(t, export.ContentType(domain.ExportFormatXLSX), "spreadsheetml")
	assert.Contains(t, export.ContentType(domain.ExportFormatJSON), "json")
}
