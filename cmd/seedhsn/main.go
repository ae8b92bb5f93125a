// Command seedhsn loads the GST HSN/SAC rate workbook (goods sheet plus
// SAC_Master) into the HSN master. It writes a SQL seed file and, with
// --apply, upserts the rows straight into PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"taxengine/internal/config"
	"taxengine/internal/hsnmaster"
	"taxengine/internal/logger"
	"taxengine/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	xlsxPath := flag.StringP("xlsx", "x", "", "path to the GST HSN/SAC workbook (required)")
	outPath := flag.StringP("out", "o", "db/seeds/hsn_codes.sql", "SQL seed file to write; empty to skip")
	apply := flag.Bool("apply", false, "upsert the rows into the configured database")
	effective := flag.String("effective-from", hsnmaster.GSTStartDate.Format("2006-01-02"), "effective_from date of the rows (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *xlsxPath, *outPath, *effective, *apply); err != nil {
		log.Fatal("seedhsn failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger, xlsxPath, outPath, effective string, apply bool) error {
	if xlsxPath == "" {
		return fmt.Errorf("--xlsx is required")
	}
	from, err := time.Parse("2006-01-02", effective)
	if err != nil {
		return fmt.Errorf("invalid --effective-from: %w", err)
	}

	res, err := hsnmaster.NewParser(from).ParseFile(xlsxPath)
	if err != nil {
		return err
	}
	entries := res.Entries()
	log.Info("workbook parsed",
		zap.String("file", xlsxPath),
		zap.Int("goods", len(res.Goods)),
		zap.Int("services", len(res.Services)),
	)

	if outPath != "" {
		if err := writeSeed(outPath, res); err != nil {
			return err
		}
		log.Info("seed written",
			zap.String("file", outPath),
			zap.Int("entries", len(entries)),
			zap.Int("batches", (len(entries)+hsnmaster.BatchSize-1)/hsnmaster.BatchSize),
		)
	}

	if !apply {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.NewDB(ctx, &cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := postgres.NewHSNRepo(db).Upsert(ctx, entries)
	if err != nil {
		return err
	}
	log.Info("HSN master upserted", zap.Int("entries", n))
	return nil
}

func writeSeed(path string, res hsnmaster.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create seed directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create seed file: %w", err)
	}
	if err := hsnmaster.WriteSQL(out, res.Entries()); err != nil {
		_ = out.Close()
		return fmt.Errorf("write seed file: %w", err)
	}
	return out.Close()
}
