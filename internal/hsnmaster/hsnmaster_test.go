package hsnmaster_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taxengine/internal/hsnmaster"
	"taxengine/internal/port"
)

func goodsRow(code4, desc4, code6, desc6, code8, desc8, rate string) []interface{} {
	row := make([]interface{}, 14)
	for i := range row {
		row[i] = ""
	}
	row[5], row[7] = code4, desc4
	row[8], row[9] = code6, desc6
	row[10], row[12] = code8, desc8
	row[13] = rate
	return row
}

func sampleWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	goods := f.GetSheetName(0)

	require.NoError(t, f.SetSheetRow(goods, "A1", &[]interface{}{"GST HSN summary"}))
	rows := [][]interface{}{
		goodsRow("1006", "Rice", "100630", "Semi-milled rice", "10063010", "Basmati", "5%"),
		goodsRow("1006", "Rice", "100640", "Broken rice", "", "", "5"),
		goodsRow("6205", "Men's shirts", "", "", "", "", "12%"),
		goodsRow("ABCD", "Header noise", "", "", "", "", "Rate"),
	}
	for i, r := range rows {
		r := r
		require.NoError(t, f.SetSheetRow(goods, fmt.Sprintf("A%d", i+6), &r))
	}

	_, err := f.NewSheet(hsnmaster.SACSheetName)
	require.NoError(t, err)
	services := [][]interface{}{
		{"9983", "Other professional services", "998314", "IT consulting", "18%"},
		{"9954", "Construction services", "995411", "Residential buildings", "1% (without ITC) or 5% (without ITC)"},
		{"9992", "Education services", "999210", "Pre-primary education", "Exempt"},
		{"9997", "Other services", "999799", "Other services nowhere else classified", "as applicable"},
	}
	for i, r := range services {
		r := r
		require.NoError(t, f.SetSheetRow(hsnmaster.SACSheetName, fmt.Sprintf("A%d", i+4), &r))
	}
	return f
}

func codes(entries []port.HSNEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Code+"@"+e.GSTRate.String())
	}
	return out
}

func TestParse(t *testing.T) {
	f := sampleWorkbook(t)
	defer func() { _ = f.Close() }()

	res, err := hsnmaster.NewParser(time.Time{}).Parse(f)
	require.NoError(t, err)

	assert.Equal(t, []string{"10063010@5", "100630@5", "1006@5", "100640@5", "6205@12"}, codes(res.Goods))
	assert.Equal(t, []string{
		"998314@18", "9983@18",
		"995411@1", "9954@1", "995411@5", "9954@5",
		"999210@0", "9992@0",
	}, codes(res.Services))
	assert.Len(t, res.Entries(), len(res.Goods)+len(res.Services))

	basmati := res.Goods[0]
	assert.Equal(t, "Basmati", basmati.Description)
	assert.Equal(t, "1006", basmati.ParentCode)
	assert.Equal(t, hsnmaster.GSTStartDate, basmati.EffectiveFrom)
	assert.Empty(t, res.Goods[2].ParentCode)

	assert.Empty(t, res.Services[0].ConditionDesc)
	assert.Equal(t, "1% (without ITC) or 5% (without ITC)", res.Services[2].ConditionDesc)
}

func TestParse_MissingSACSheet(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	_, err := hsnmaster.NewParser(time.Time{}).Parse(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), hsnmaster.SACSheetName)
}

func TestParseRateText(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"18%", []string{"18"}},
		{"Exempt", []string{"0"}},
		{"NIL", []string{"0"}},
		{"0%", []string{"0"}},
		{"12%-18%", []string{"12", "18"}},
		{"1% (without ITC) or 5% (without ITC)", []string{"1", "5"}},
		{"5%(With ITC restriction) or 18%", []string{"5", "18"}},
		{"0.25 %", []string{"0.25"}},
		{"18% or 18%", []string{"18"}},
		{"", nil},
		{"as applicable", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got []string
			for _, r := range hsnmaster.ParseRateText(tt.in) {
				got = append(got, r.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteSQL(t *testing.T) {
	from := time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)
	entries := []port.HSNEntry{
		{Code: "6205", Description: "Men's shirts", GSTRate: decimal.NewFromInt(12), EffectiveFrom: from},
		{Code: "995411", Description: "Residential", GSTRate: decimal.NewFromInt(1), ConditionDesc: "1% or 5%", ParentCode: "9954", EffectiveFrom: from},
	}

	var buf bytes.Buffer
	require.NoError(t, hsnmaster.WriteSQL(&buf, entries))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "-- HSN/SAC master"))
	assert.Contains(t, out, "BEGIN;")
	assert.Contains(t, out, "('6205', 'Men''s shirts', 12.00, '', NULL, '2017-07-01')")
	assert.Contains(t, out, "('995411', 'Residential', 1.00, '1% or 5%', '9954', '2017-07-01')")
	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
}

func TestWriteSQL_Batches(t *testing.T) {
	entries := make([]port.HSNEntry, hsnmaster.BatchSize+1)
	for i := range entries {
		entries[i] = port.HSNEntry{Code: fmt.Sprintf("%04d", 1000+i), GSTRate: decimal.NewFromInt(18), EffectiveFrom: hsnmaster.GSTStartDate}
	}

	var buf bytes.Buffer
	require.NoError(t, hsnmaster.WriteSQL(&buf, entries))
	assert.Equal(t, 2, strings.Count(buf.String(), "INSERT INTO hsn_codes"))
}
