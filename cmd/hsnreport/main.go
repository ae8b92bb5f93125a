// Command hsnreport prices a set of invoice JSON files and writes the combined
// GSTR-1 HSN summary as CSV, XLSX or JSON.
//
// Usage: hsnreport [--format csv|xlsx|json] [--out FILE] [--workers N] FILE|GLOB...
//
// Each file holds one invoice in the same shape as the compute API request body.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taxengine/internal/config"
	"taxengine/internal/domain"
	"taxengine/internal/export"
	"taxengine/internal/gst"
	"taxengine/internal/handler"
	"taxengine/internal/logger"
	"taxengine/internal/port"
	"taxengine/internal/repository/postgres"
	"taxengine/internal/service"
)

type options struct {
	format  domain.ExportFormat
	out     string
	workers int
	files   []string
}

// invoiceReport is one priced input file.
type invoiceReport struct {
	path string
	comp *service.InvoiceComputation
}

func main() {
	_ = godotenv.Load()

	format := flag.StringP("format", "f", string(domain.ExportFormatCSV), "output format: csv, xlsx or json")
	out := flag.StringP("out", "o", "-", "output file, - for stdout")
	workers := flag.IntP("workers", "w", 4, "files priced concurrently")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	// stdout may carry the report, so logs go to stderr.
	log := logger.NewWithSink(cfg.Log, zapcore.Lock(os.Stderr))
	defer func() { _ = log.Sync() }()

	opts := options{
		format:  domain.ExportFormat(strings.ToLower(*format)),
		out:     *out,
		workers: *workers,
		files:   flag.Args(),
	}
	if err := run(context.Background(), cfg, log, opts); err != nil {
		log.Fatal("hsnreport failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, opts options) error {
	switch opts.format {
	case domain.ExportFormatCSV, domain.ExportFormatXLSX, domain.ExportFormatJSON:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, opts.format)
	}

	paths, err := expandPaths(opts.files)
	if err != nil {
		return err
	}

	var hsnRepo port.HSNRepository
	if cfg.HSN.Source == config.HSNSourcePostgres {
		db, err := postgres.NewDB(ctx, &cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()
		hsnRepo = postgres.NewHSNRepo(db)
	}
	svc := service.NewInvoiceService(service.NewHSNMasterService(hsnRepo, cfg.HSN.CacheTTL, log), cfg.Company, nil, log)

	reports, err := priceFiles(ctx, svc, paths, opts.workers)
	if err != nil {
		return err
	}
	for _, r := range reports {
		for _, w := range r.comp.Warnings {
			log.Warn("invoice warning", zap.String("file", r.path), zap.String("field", w.Field), zap.String("message", w.Message))
		}
	}

	rows, total := summarize(reports)
	log.Info("HSN summary built", zap.Int("invoices", len(reports)), zap.Int("rows", len(rows)))

	out, closeOut, err := openOutput(opts.out)
	if err != nil {
		return err
	}
	if err := writeReport(out, opts.format, rows, total); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

// expandPaths resolves globs and returns the sorted, de-duplicated file list.
func expandPaths(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no invoice files given")
	}
	var paths []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", p)
		}
		paths = append(paths, matches...)
	}
	paths = lo.Uniq(paths)
	sort.Strings(paths)
	return paths, nil
}

// priceFiles decodes, validates and prices every file. Results keep the order
// of paths; all failures are reported together.
func priceFiles(ctx context.Context, svc service.InvoiceService, paths []string, workers int) ([]invoiceReport, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := handler.RegisterValidations(v); err != nil {
		return nil, err
	}

	mapper := iter.Mapper[string, invoiceReport]{MaxGoroutines: workers}
	return mapper.MapErr(paths, func(path *string) (invoiceReport, error) {
		req, err := readInvoice(*path)
		if err != nil {
			return invoiceReport{}, err
		}
		if err := v.Struct(req); err != nil {
			return invoiceReport{}, fmt.Errorf("%s: %w", *path, err)
		}
		comp, err := svc.Compute(ctx, req.ToInput())
		if err != nil {
			return invoiceReport{}, fmt.Errorf("%s: %w", *path, err)
		}
		return invoiceReport{path: *path, comp: comp}, nil
	})
}

func readInvoice(path string) (*handler.InvoiceRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var req handler.InvoiceRequest
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%s: decoding invoice: %w", path, err)
	}
	return &req, nil
}

// summarize builds one HSN summary over the lines of every invoice.
func summarize(reports []invoiceReport) ([]domain.HSNSummaryRow, domain.HSNSummaryRow) {
	var items []domain.InvoiceLineItem
	for _, r := range reports {
		items = append(items, r.comp.Invoice.Items...)
	}
	rows := gst.CalculateHSNSummary(items)
	return rows, gst.HSNSummaryTotals(rows)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func writeReport(out io.Writer, format domain.ExportFormat, rows []domain.HSNSummaryRow, total domain.HSNSummaryRow) error {
	switch format {
	case domain.ExportFormatCSV:
		return export.WriteHSNSummaryCSV(out, rows, total)
	case domain.ExportFormatXLSX:
		return export.WriteHSNSummaryXLSX(out, rows, total)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Rows  []domain.HSNSummaryRow `json:"rows"`
			Total domain.HSNSummaryRow   `json:"total"`
		}{rows, total})
	}
}
