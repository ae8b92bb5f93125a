package export

import (
	"encoding/csv"
	"io"

	"taxengine/internal/domain"
)

// CSVWriter wraps csv.Writer for exporting HSN summary rows.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows writes one line per summary row.
func (w *CSVWriter) WriteRows(rows []domain.HSNSummaryRow) error {
	for i := range rows {
		if err := w.csv.Write(summaryToRow(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteTotal writes the footer row.
func (w *CSVWriter) WriteTotal(total domain.HSNSummaryRow) error {
	return w.csv.Write(totalToRow(&total))
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteHSNSummaryCSV writes BOM, header, rows and total to out.
func WriteHSNSummaryCSV(out io.Writer, rows []domain.HSNSummaryRow, total domain.HSNSummaryRow) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewCSVWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRows(rows); err != nil {
		return err
	}
	if err := w.WriteTotal(total); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
