// Package hsnmaster reads the CBIC GST HSN/SAC workbook into master rows and
// renders them as a SQL seed.
package hsnmaster

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"taxengine/internal/gst"
	"taxengine/internal/port"
)

// Sheet layout of the published workbook.
const (
	SACSheetName = "SAC_Master"

	hsnFirstRow = 5
	sacFirstRow = 3
)

// hsnColumns are the goods sheet columns: code and description pairs from the
// most to the least specific, then the rate.
var hsnColumns = struct {
	codes [3][2]int
	rate  int
}{
	codes: [3][2]int{{10, 12}, {8, 9}, {5, 7}},
	rate:  13,
}

// GSTStartDate is the default effective date of master rows.
var GSTStartDate = time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)

var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// Result holds the rows read from each sheet.
type Result struct {
	Goods    []port.HSNEntry
	Services []port.HSNEntry
}

// Entries returns goods followed by services.
func (r Result) Entries() []port.HSNEntry {
	out := make([]port.HSNEntry, 0, len(r.Goods)+len(r.Services))
	out = append(out, r.Goods...)
	return append(out, r.Services...)
}

// Parser turns workbook rows into master entries, dropping repeated
// (code, rate) pairs across both sheets.
type Parser struct {
	EffectiveFrom time.Time
	seen          map[string]struct{}
}

// NewParser creates a Parser stamping rows with effectiveFrom; a zero time
// means GSTStartDate.
func NewParser(effectiveFrom time.Time) *Parser {
	if effectiveFrom.IsZero() {
		effectiveFrom = GSTStartDate
	}
	return &Parser{EffectiveFrom: effectiveFrom, seen: make(map[string]struct{})}
}

// ParseFile opens and parses the workbook at path.
func (p *Parser) ParseFile(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return p.Parse(f)
}

// Parse reads the goods sheet (the first sheet) and the SAC sheet.
func (p *Parser) Parse(f *excelize.File) (Result, error) {
	var res Result

	goods, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return res, fmt.Errorf("read goods sheet: %w", err)
	}
	res.Goods = p.parseGoods(goods)

	services, err := f.GetRows(SACSheetName)
	if err != nil {
		return res, fmt.Errorf("read %s sheet: %w", SACSheetName, err)
	}
	res.Services = p.parseServices(services)
	return res, nil
}

func (p *Parser) parseGoods(rows [][]string) []port.HSNEntry {
	var entries []port.HSNEntry
	for i := hsnFirstRow; i < len(rows); i++ {
		row := rows[i]
		raw := strings.TrimSuffix(cell(row, hsnColumns.rate), "%")
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		for _, col := range hsnColumns.codes {
			entries = p.add(entries, cell(row, col[0]), cell(row, col[1]), rate, "")
		}
	}
	return entries
}

func (p *Parser) parseServices(rows [][]string) []port.HSNEntry {
	var entries []port.HSNEntry
	for i := sacFirstRow; i < len(rows); i++ {
		row := rows[i]
		text := cell(row, 4)
		rates := ParseRateText(text)
		condition := ""
		if len(rates) > 1 {
			condition = text
		}
		for _, rate := range rates {
			entries = p.add(entries, cell(row, 2), cell(row, 3), rate, condition)
			entries = p.add(entries, cell(row, 0), cell(row, 1), rate, condition)
		}
	}
	return entries
}

func (p *Parser) add(entries []port.HSNEntry, code, description string, rate decimal.Decimal, condition string) []port.HSNEntry {
	if !gst.ValidateHSNCode(code) {
		return entries
	}
	key := code + "|" + rate.StringFixed(2)
	if _, dup := p.seen[key]; dup {
		return entries
	}
	p.seen[key] = struct{}{}

	parent := ""
	if len(code) > 4 {
		parent = code[:4]
	}
	return append(entries, port.HSNEntry{
		Code:          code,
		Description:   description,
		GSTRate:       rate,
		ConditionDesc: condition,
		ParentCode:    parent,
		EffectiveFrom: p.EffectiveFrom,
	})
}

// ParseRateText extracts the rates from a free-text SAC rate such as "18%",
// "Exempt", "12%-18%" or "1% (without ITC) or 5% (without ITC)". Repeated
// rates are returned once, in order of appearance.
func ParseRateText(s string) []decimal.Decimal {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil
	case "exempt", "nil":
		return []decimal.Decimal{decimal.Zero}
	}

	var rates []decimal.Decimal
	for _, m := range ratePattern.FindAllStringSubmatch(s, -1) {
		rate, err := decimal.NewFromString(m[1])
		if err != nil || containsRate(rates, rate) {
			continue
		}
		rates = append(rates, rate)
	}
	return rates
}

func containsRate(rates []decimal.Decimal, rate decimal.Decimal) bool {
	for _, r := range rates {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
