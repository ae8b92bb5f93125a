package hsnmaster

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"taxengine/internal/port"
)

// BatchSize is the number of rows per INSERT statement in a SQL seed.
const BatchSize = 500

// WriteSQL writes entries as a transaction of batched multi-row upserts into
// hsn_codes.
func WriteSQL(out io.Writer, entries []port.HSNEntry) error {
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "-- HSN/SAC master generated from the GST rate workbook.")
	fmt.Fprintf(w, "-- %d entries in batches of %d.\n", len(entries), BatchSize)
	fmt.Fprintln(w, "BEGIN;")

	for start := 0; start < len(entries); start += BatchSize {
		end := start + BatchSize
		if end > len(entries) {
			end = len(entries)
		}
		writeBatch(w, entries[start:end])
	}

	fmt.Fprintln(w, "COMMIT;")
	return w.Flush()
}

func writeBatch(w *bufio.Writer, batch []port.HSNEntry) {
	w.WriteString("\nINSERT INTO hsn_codes (code, description, gst_rate, condition_desc, parent_code, effective_from) VALUES\n")
	for i := range batch {
		e := &batch[i]
		if i > 0 {
			w.WriteString(",\n")
		}
		parent := "NULL"
		if e.ParentCode != "" {
			parent = quote(e.ParentCode)
		}
		fmt.Fprintf(w, "  (%s, %s, %s, %s, %s, '%s')",
			quote(e.Code), quote(e.Description), e.GSTRate.StringFixed(2),
			quote(e.ConditionDesc), parent, e.EffectiveFrom.Format("2006-01-02"))
	}
	w.WriteString("\nON CONFLICT (code, gst_rate, condition_desc, effective_from) DO UPDATE SET description = EXCLUDED.description;\n")
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
