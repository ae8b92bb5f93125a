package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"taxengine/internal/config"
	"taxengine/internal/domain"
	"taxengine/internal/einvoice"
	"taxengine/internal/gst"
	"taxengine/internal/inrfmt"
)

// LineRequest is an invoice line as submitted. RateFromMaster asks for the
// GST rate to be filled from the HSN master instead of GSTRate.
type LineRequest struct {
	gst.LineInput
	RateFromMaster bool
}

// InvoiceInput is an invoice before pricing.
type InvoiceInput struct {
	Header   domain.InvoiceHeader
	Supplier domain.PartyGSTDetails
	Buyer    domain.PartyGSTDetails
	Lines    []LineRequest
}

// InvoiceComputation is a priced invoice with its totals, HSN summary and any
// warnings raised while pricing it. Warnings never block the computation.
type InvoiceComputation struct {
	Invoice       domain.Invoice         `json:"invoice"`
	Totals        domain.InvoiceTotals   `json:"totals"`
	HSNSummary    []domain.HSNSummaryRow `json:"hsn_summary"`
	HSNTotal      domain.HSNSummaryRow   `json:"hsn_total"`
	InterState    bool                   `json:"inter_state"`
	FinancialYear string                 `json:"financial_year,omitempty"`
	Warnings      []gst.FieldIssue       `json:"warnings"`
}

// InvoiceService prices invoices and derives their reports.
type InvoiceService interface {
	Compute(ctx context.Context, in InvoiceInput) (*InvoiceComputation, error)
	EInvoiceQR(ctx context.Context, in InvoiceInput) (string, error)
	NextInvoiceNumber(sequence int, financialYear string) (string, error)
	FinancialYear(date string) (string, error)
}

type invoiceService struct {
	hsn     HSNMasterService
	company config.CompanyConfig
	clock   func() time.Time
	log     *zap.Logger
}

// NewInvoiceService creates an InvoiceService. The company config supplies the
// default supplier and the invoice number prefix; a nil clock uses time.Now.
func NewInvoiceService(hsn HSNMasterService, company config.CompanyConfig, clock func() time.Time, log *zap.Logger) InvoiceService {
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &invoiceService{hsn: hsn, company: company, clock: clock, log: log}
}

func (s *invoiceService) Compute(ctx context.Context, in InvoiceInput) (*InvoiceComputation, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyInvoice
	}

	inv := domain.Invoice{
		Header:   in.Header,
		Supplier: s.withCompanyDefaults(in.Supplier),
		Buyer:    in.Buyer,
	}
	if inv.Header.DocumentType == "" {
		inv.Header.DocumentType = domain.DocumentTypeInvoice
	}

	var warnings []gst.FieldIssue
	warnings = append(warnings, gst.CheckParty("supplier", inv.Supplier)...)
	warnings = append(warnings, gst.CheckParty("buyer", inv.Buyer)...)

	supplierState := gst.SupplierStateCode(inv)
	customerState := gst.CustomerStateCode(inv)
	if !gst.ValidateStateCode(supplierState) {
		warnings = append(warnings, gst.FieldIssue{Field: "supplier.state_code", Message: "supplier state is missing or invalid; tax split may be wrong"})
	}
	if !gst.ValidateStateCode(customerState) {
		warnings = append(warnings, gst.FieldIssue{Field: "header.place_of_supply", Message: "place of supply is missing or invalid; tax split may be wrong"})
	}

	fy, dateIssues := s.checkDates(inv.Header)
	warnings = append(warnings, dateIssues...)

	lookup := s.lookup(ctx, &warnings)

	for i := range in.Lines {
		line := in.Lines[i]
		field := fmt.Sprintf("items[%d]", i)
		line.HSNCode = strings.TrimSpace(line.HSNCode)
		warnings = append(warnings, s.applyMaster(lookup, field, &line)...)
		inv = inv.WithItem(gst.NewLineItem(line.LineInput, supplierState, customerState))
	}

	rows := gst.CalculateHSNSummary(inv.Items)
	return &InvoiceComputation{
		Invoice:       inv,
		Totals:        gst.ComputeTotals(inv.Items),
		HSNSummary:    rows,
		HSNTotal:      gst.HSNSummaryTotals(rows),
		InterState:    gst.IsInterState(supplierState, customerState),
		FinancialYear: fy,
		Warnings:      lo.Ternary(warnings == nil, []gst.FieldIssue{}, warnings),
	}, nil
}

// checkDates derives the financial year of the invoice date and flags dates
// that cannot be parsed, lie in the future, or a due date before the invoice date.
func (s *invoiceService) checkDates(h domain.InvoiceHeader) (string, []gst.FieldIssue) {
	if h.Date == "" {
		return "", nil
	}
	date, err := inrfmt.ParseDate(h.Date)
	if err != nil {
		return "", []gst.FieldIssue{{Field: "header.date", Message: fmt.Sprintf("%q is not a recognised date", h.Date)}}
	}

	var issues []gst.FieldIssue
	today := s.clock()
	endOfToday := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())
	if date.After(endOfToday) {
		issues = append(issues, gst.FieldIssue{Field: "header.date", Message: fmt.Sprintf("invoice date %s is in the future", date.Format("2006-01-02"))})
	}
	if h.DueDate != "" {
		due, err := inrfmt.ParseDate(h.DueDate)
		switch {
		case err != nil:
			issues = append(issues, gst.FieldIssue{Field: "header.due_date", Message: fmt.Sprintf("%q is not a recognised date", h.DueDate)})
		case due.Before(date):
			issues = append(issues, gst.FieldIssue{Field: "header.due_date", Message: "due date is before the invoice date"})
		}
	}
	return inrfmt.FinancialYear(date), issues
}

// lookup returns the HSN master, or nil with a warning when it cannot be loaded.
func (s *invoiceService) lookup(ctx context.Context, warnings *[]gst.FieldIssue) *gst.HSNLookup {
	if s.hsn == nil || !s.hsn.Enabled() {
		return nil
	}
	lookup, err := s.hsn.Lookup(ctx)
	if err != nil {
		s.log.Warn("invoiceService.Compute: HSN master unavailable, skipping rate checks", zap.Error(err))
		*warnings = append(*warnings, gst.FieldIssue{Field: "items", Message: "HSN master unavailable; rates were not checked"})
		return nil
	}
	return lookup
}

// applyMaster fills or checks the line rate against the HSN master.
func (s *invoiceService) applyMaster(lookup *gst.HSNLookup, field string, line *LineRequest) []gst.FieldIssue {
	var issues []gst.FieldIssue
	add := func(format string, args ...any) {
		issues = append(issues, gst.FieldIssue{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if line.HSNCode != "" && !gst.ValidateHSNCode(line.HSNCode) {
		add("HSN/SAC code %q must be 4 to 8 digits", line.HSNCode)
	}

	if line.RateFromMaster {
		rate, ok := lookup.SuggestRate(line.HSNCode)
		if !ok {
			add("no GST rate found for HSN/SAC code %q; 0%% applied", line.HSNCode)
		}
		line.GSTRate = rate
		return issues
	}

	if !gst.IsStandardRate(line.GSTRate) {
		add("GST rate %s%% is not a notified slab", line.GSTRate.String())
	}
	if lookup.Len() == 0 || line.HSNCode == "" {
		return issues
	}
	if !lookup.Exists(line.HSNCode) {
		add("HSN/SAC code %q not found in the HSN master", line.HSNCode)
		return issues
	}
	if matched, valid := lookup.RateMatches(line.HSNCode, line.GSTRate); !matched {
		rates := lo.Uniq(lo.Map(valid, func(r gst.HSNRate, _ int) string { return r.Rate.String() + "%" }))
		add("GST rate %s%% does not match the notified rate(s) %s for HSN/SAC %s",
			line.GSTRate.String(), strings.Join(rates, ", "), line.HSNCode)
	}
	return issues
}

func (s *invoiceService) withCompanyDefaults(p domain.PartyGSTDetails) domain.PartyGSTDetails {
	if p.GSTIN == "" {
		p.GSTIN = s.company.GSTIN
	}
	if p.StateCode == "" && p.GSTIN == s.company.GSTIN {
		p.StateCode = s.company.StateCode
	}
	return p
}

func (s *invoiceService) EInvoiceQR(ctx context.Context, in InvoiceInput) (string, error) {
	comp, err := s.Compute(ctx, in)
	if err != nil {
		return "", err
	}
	inv := comp.Invoice
	switch {
	case !gst.ValidateGSTIN(inv.Supplier.GSTIN):
		return "", fmt.Errorf("%w: e-invoice needs a valid seller GSTIN", domain.ErrInvalidRequest)
	case inv.Header.Number == "":
		return "", fmt.Errorf("%w: e-invoice needs a document number", domain.ErrInvalidRequest)
	case len(inv.Header.Number) > einvoice.MaxDocumentNumberLength:
		return "", fmt.Errorf("%w: e-invoice document number %q exceeds %d characters",
			domain.ErrInvalidRequest, inv.Header.Number, einvoice.MaxDocumentNumberLength)
	}

	qr, err := einvoice.GenerateEInvoiceQR(einvoice.FromInvoice(inv, comp.Totals))
	if err != nil {
		return "", fmt.Errorf("invoiceService.EInvoiceQR: %w", err)
	}
	return qr, nil
}

func (s *invoiceService) NextInvoiceNumber(sequence int, financialYear string) (string, error) {
	if sequence <= 0 {
		return "", fmt.Errorf("%w: sequence must be positive", domain.ErrInvalidRequest)
	}
	if financialYear == "" {
		financialYear = inrfmt.CurrentFinancialYear(s.clock)
	}
	return inrfmt.GenerateInvoiceNumber(s.company.Code, financialYear, sequence), nil
}

func (s *invoiceService) FinancialYear(date string) (string, error) {
	if date == "" {
		return inrfmt.CurrentFinancialYear(s.clock), nil
	}
	fy, err := inrfmt.FinancialYearOf(date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return fy, nil
}
