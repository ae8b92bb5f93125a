package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taxengine/internal/domain"
	"taxengine/internal/export"
	"taxengine/internal/service"
)

// InvoiceHandler handles invoice pricing and the reports derived from it.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	now            func() time.Time
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, now: time.Now}
}

func bindInvoice(c *gin.Context) (service.InvoiceInput, bool) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return service.InvoiceInput{}, false
	}
	return req.ToInput(), true
}

// Compute handles POST /api/v1/tax/invoices/compute
// @Summary      Price an invoice
// @Description  Taxes every line, totals the invoice, builds the HSN summary and reports warnings. Lines without gst_rate take the rate from the HSN master.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body InvoiceRequest true "Invoice"
// @Success      200 {object} APIResponse{data=service.InvoiceComputation}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /invoices/compute [post]
func (h *InvoiceHandler) Compute(c *gin.Context) {
	in, ok := bindInvoice(c)
	if !ok {
		return
	}

	comp, err := h.invoiceService.Compute(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comp)
}

// HSNSummary handles POST /api/v1/tax/invoices/hsn-summary
// @Summary      HSN summary of an invoice
// @Description  Groups lines by HSN code and GST rate in GSTR-1 layout, as JSON or as a CSV/XLSX download
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "json, csv or xlsx" default(json)
// @Param        filename query string false "Download file name without extension"
// @Param        body body InvoiceRequest true "Invoice"
// @Success      200 {object} APIResponse{data=HSNSummaryResponse}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /invoices/hsn-summary [post]
func (h *InvoiceHandler) HSNSummary(c *gin.Context) {
	format := domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportFormatJSON))))
	switch format {
	case domain.ExportFormatJSON, domain.ExportFormatCSV, domain.ExportFormatXLSX:
	default:
		HandleError(c, domain.ErrUnsupportedFormat)
		return
	}

	in, ok := bindInvoice(c)
	if !ok {
		return
	}

	comp, err := h.invoiceService.Compute(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}

	if format == domain.ExportFormatJSON {
		RespondOK(c, HSNSummaryResponse{Rows: comp.HSNSummary, Total: comp.HSNTotal, Warnings: comp.Warnings})
		return
	}

	var buf bytes.Buffer
	if format == domain.ExportFormatCSV {
		err = export.WriteHSNSummaryCSV(&buf, comp.HSNSummary, comp.HSNTotal)
	} else {
		err = export.WriteHSNSummaryXLSX(&buf, comp.HSNSummary, comp.HSNTotal)
	}
	if err != nil {
		HandleError(c, fmt.Errorf("writing %s export: %w", format, err))
		return
	}

	filename := export.BuildFilename(c.Query("filename"), format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}

// EInvoiceQR handles POST /api/v1/tax/invoices/einvoice-qr
// @Summary      E-invoice QR payload
// @Description  Builds the IRP e-invoice JSON payload for an invoice. The seller GSTIN and document number are required.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body InvoiceRequest true "Invoice"
// @Success      200 {object} APIResponse{data=EInvoiceQRResponse}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /invoices/einvoice-qr [post]
func (h *InvoiceHandler) EInvoiceQR(c *gin.Context) {
	in, ok := bindInvoice(c)
	if !ok {
		return
	}

	payload, err := h.invoiceService.EInvoiceQR(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, EInvoiceQRResponse{Payload: payload})
}

// InvoiceNumber handles GET /api/v1/tax/invoices/number
// @Summary      Generate an invoice number
// @Description  Returns {company code}/{financial year}/{sequence padded to 4 digits}. The current financial year is used when fy is omitted.
// @Tags         invoices
// @Produce      json
// @Param        seq query int true "Sequence number (>= 1)"
// @Param        fy query string false "Financial year, e.g. 2024-25"
// @Success      200 {object} APIResponse{data=InvoiceNumberResponse}
// @Failure      400 {object} APIResponse
// @Router       /invoices/number [get]
func (h *InvoiceHandler) InvoiceNumber(c *gin.Context) {
	var q InvoiceNumberQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondValidationError(c, err)
		return
	}

	fy := q.FinancialYear
	if fy == "" {
		current, err := h.invoiceService.FinancialYear("")
		if err != nil {
			HandleError(c, err)
			return
		}
		fy = current
	}

	number, err := h.invoiceService.NextInvoiceNumber(q.Sequence, fy)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, InvoiceNumberResponse{InvoiceNumber: number, FinancialYear: fy})
}

// FinancialYear handles GET /api/v1/tax/financial-year
// @Summary      Financial year of a date
// @Description  April to March financial year as YYYY-YY. Today is used when date is omitted.
// @Tags         invoices
// @Produce      json
// @Param        date query string false "Date (YYYY-MM-DD or DD/MM/YYYY)"
// @Success      200 {object} APIResponse{data=FinancialYearResponse}
// @Failure      400 {object} APIResponse
// @Router       /financial-year [get]
func (h *InvoiceHandler) FinancialYear(c *gin.Context) {
	var q FinancialYearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondValidationError(c, err)
		return
	}

	fy, err := h.invoiceService.FinancialYear(q.Date)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, FinancialYearResponse{Date: q.Date, FinancialYear: fy})
}
