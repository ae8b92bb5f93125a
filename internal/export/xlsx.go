package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"taxengine/internal/domain"
)

// SheetName is the worksheet holding the HSN table.
const SheetName = "HSN Summary"

// numeric columns are written as numbers so Excel can sum them.
var numericColumns = map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true}

// WriteHSNSummaryXLSX writes a single-sheet workbook with a bold header row
// and a bold total row.
func WriteHSNSummaryXLSX(out io.Writer, rows []domain.HSNSummaryRow, total domain.HSNSummaryRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("export.WriteHSNSummaryXLSX: rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export.WriteHSNSummaryXLSX: style: %w", err)
	}

	if err := writeSheetRow(f, 1, columns); err != nil {
		return err
	}
	for i := range rows {
		if err := writeSheetRow(f, i+2, summaryToRow(&rows[i])); err != nil {
			return err
		}
	}
	totalRow := len(rows) + 2
	if err := writeSheetRow(f, totalRow, totalToRow(&total)); err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	for _, r := range []int{1, totalRow} {
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("%s%d", lastCol, r), bold); err != nil {
			return fmt.Errorf("export.WriteHSNSummaryXLSX: apply style: %w", err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 16); err != nil {
		return fmt.Errorf("export.WriteHSNSummaryXLSX: column width: %w", err)
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("export.WriteHSNSummaryXLSX: write workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, rowNum int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = cellValue(i, v)
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("export.WriteHSNSummaryXLSX: row %d: %w", rowNum, err)
	}
	return nil
}

// cellValue converts an already rounded amount to a float cell.
func cellValue(col int, v string) interface{} {
	if !numericColumns[col] || v == "" {
		return v
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	return d.InexactFloat64()
}
