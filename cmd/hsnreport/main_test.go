package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taxengine/internal/config"
	"taxengine/internal/domain"
	"taxengine/internal/export"
)

func testConfig() *config.Config {
	return &config.Config{
		Company: config.CompanyConfig{Code: "ACME", StateCode: "27", GSTIN: "27AAPFU0939F1ZV"},
		HSN:     config.HSNConfig{Source: config.HSNSourceNone},
	}
}

func writeInvoice(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const (
	invoiceOne = `{
		"header": {"number": "ACME/2024-25/0001", "date": "2024-05-20", "place_of_supply": "29"},
		"buyer": {"gstin": "29AAGCB7383J1Z4"},
		"items": [{"hsn_code": "1006", "unit": "KGS", "quantity": "10", "unit_rate": "100", "gst_rate": "5"}]
	}`
	invoiceTwo = `{
		"header": {"number": "ACME/2024-25/0002", "date": "2024-05-21", "place_of_supply": "29"},
		"buyer": {"gstin": "29AAGCB7383J1Z4"},
		"items": [
			{"hsn_code": "1006", "unit": "KGS", "quantity": "5", "unit_rate": "100", "gst_rate": "5"},
			{"hsn_code": "8471", "unit": "NOS", "quantity": "1", "unit_rate": "1000", "gst_rate": "18"}
		]
	}`
)

func TestRun_JSON(t *testing.T) {
	dir := t.TempDir()
	writeInvoice(t, dir, "a.json", invoiceOne)
	writeInvoice(t, dir, "b.json", invoiceTwo)
	out := filepath.Join(t.TempDir(), "summary.json")

	err := run(context.Background(), testConfig(), zap.NewNop(), options{
		format:  domain.ExportFormatJSON,
		out:     out,
		workers: 2,
		files:   []string{filepath.Join(dir, "*.json")},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var got struct {
		Rows  []domain.HSNSummaryRow `json:"rows"`
		Total domain.HSNSummaryRow   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "1006", got.Rows[0].HSNCode)
	assert.True(t, got.Rows[0].TaxableAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, got.Rows[0].IGSTAmount.Equal(decimal.NewFromInt(75)))
	assert.True(t, got.Rows[0].Quantity.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "8471", got.Rows[1].HSNCode)
	assert.True(t, got.Total.TaxableAmount.Equal(decimal.NewFromInt(2500)))
	assert.True(t, got.Total.IGSTAmount.Equal(decimal.NewFromInt(255)))
}

func TestRun_CSV(t *testing.T) {
	dir := t.TempDir()
	a := writeInvoice(t, dir, "a.json", invoiceOne)
	out := filepath.Join(dir, "summary.csv")

	require.NoError(t, run(context.Background(), testConfig(), zap.NewNop(), options{
		format: domain.ExportFormatCSV,
		out:    out,
		files:  []string{a},
	}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(raw[len(export.BOM):]))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1006", records[1][0])
	assert.Equal(t, export.TotalLabel, records[2][0])
}

func TestRun_ReportsEveryBadFile(t *testing.T) {
	dir := t.TempDir()
	writeInvoice(t, dir, "good.json", invoiceOne)
	bad := writeInvoice(t, dir, "bad.json", strings.Replace(invoiceOne, `"hsn_code": "1006"`, `"hsn_code": "10"`, 1))
	broken := writeInvoice(t, dir, "broken.json", `{"items": [`)

	err := run(context.Background(), testConfig(), zap.NewNop(), options{
		format: domain.ExportFormatJSON,
		out:    filepath.Join(dir, "out.json"),
		files:  []string{filepath.Join(dir, "*.json")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.Contains(t, err.Error(), broken)
}

func TestRun_UnsupportedFormat(t *testing.T) {
	err := run(context.Background(), testConfig(), zap.NewNop(), options{format: "pdf", files: []string{"x.json"}})
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeInvoice(t, dir, "a.json", invoiceOne)
	b := writeInvoice(t, dir, "b.json", invoiceTwo)

	paths, err := expandPaths([]string{filepath.Join(dir, "*.json"), a})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, paths)

	_, err = expandPaths(nil)
	assert.Error(t, err)

	_, err = expandPaths([]string{filepath.Join(dir, "*.xml")})
	assert.Error(t, err)
}
