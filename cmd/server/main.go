// Command server runs the tax engine HTTP API.
//
// @title          Tax Engine API
// @version        1.0
// @description    GST, TDS and invoice compliance calculations for Indian businesses.
// @BasePath       /api/v1/tax
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"taxengine/internal/config"
	"taxengine/internal/handler"
	"taxengine/internal/logger"
	"taxengine/internal/port"
	"taxengine/internal/repository/postgres"
	"taxengine/internal/router"
	"taxengine/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.SetupValidator(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// HSN master storage is optional; without it rate checks are skipped.
	var (
		db      *sqlx.DB
		hsnRepo port.HSNRepository
	)
	if cfg.HSN.Source == config.HSNSourcePostgres {
		var err error
		db, err = postgres.NewDB(ctx, &cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		hsnRepo = postgres.NewHSNRepo(db)
	}

	// Initialize services
	hsnSvc := service.NewHSNMasterService(hsnRepo, cfg.HSN.CacheTTL, log)
	if hsnSvc.Enabled() {
		if _, err := hsnSvc.Refresh(ctx); err != nil {
			log.Warn("HSN master not loaded at startup; will retry on demand", zap.Error(err))
		}
	}
	taxSvc := service.NewTaxService(nil, log)
	invoiceSvc := service.NewInvoiceService(hsnSvc, cfg.Company, nil, log)

	// Setup router
	r := router.Setup(log, cfg.CORS.AllowedOrigins, router.Handlers{
		Tax:     handler.NewTaxHandler(taxSvc),
		Invoice: handler.NewInvoiceHandler(invoiceSvc),
		Format:  handler.NewFormatHandler(),
		Health:  handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.String("hsn_source", cfg.HSN.Source),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
