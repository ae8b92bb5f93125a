package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "taxengine/docs" // registers the OpenAPI document
	"taxengine/internal/handler"
	"taxengine/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Tax     *handler.TaxHandler
	Invoice *handler.InvoiceHandler
	Format  *handler.FormatHandler
	Health  *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(log *zap.Logger, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tax := r.Group("/api/v1/tax")

	tax.POST("/validate", h.Tax.Validate)
	tax.POST("/gst", h.Tax.GST)
	tax.POST("/tds", h.Tax.TDS)
	tax.GET("/tds/sections", h.Tax.TDSSections)

	tax.GET("/format", h.Format.Format)
	tax.GET("/format/currency", h.Format.Currency)
	tax.GET("/format/number", h.Format.Number)
	tax.GET("/format/words", h.Format.Words)
	tax.GET("/financial-year", h.Invoice.FinancialYear)

	invoices := tax.Group("/invoices")
	invoices.POST("/compute", h.Invoice.Compute)
	invoices.POST("/hsn-summary", h.Invoice.HSNSummary)
	invoices.POST("/einvoice-qr", h.Invoice.EInvoiceQR)
	invoices.GET("/number", h.Invoice.InvoiceNumber)

	return r
}
