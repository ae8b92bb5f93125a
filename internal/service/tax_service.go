package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/internal/domain"
	"taxengine/internal/gst"
	"taxengine/internal/tds"
)

// IdentifierCheck is one value to validate.
type IdentifierCheck struct {
	Type  domain.IdentifierType `json:"type"`
	Value string                `json:"value"`
}

// IdentifierResult reports the validity of an IdentifierCheck. Known is false
// when the identifier type is not supported.
type IdentifierResult struct {
	Type  domain.IdentifierType `json:"type"`
	Value string                `json:"value"`
	Valid bool                  `json:"valid"`
	Known bool                  `json:"known"`
}

// GSTInput holds the arguments of a single GST calculation.
type GSTInput struct {
	TaxableAmount     decimal.Decimal
	GSTRate           decimal.Decimal
	CessRate          decimal.Decimal
	SupplierStateCode string
	CustomerStateCode string
}

// GSTResult is a breakdown with its outcome.
type GSTResult struct {
	domain.GSTBreakdown
	Outcome      domain.Outcome `json:"outcome"`
	InterState   bool           `json:"inter_state"`
	StandardRate bool           `json:"standard_rate"`
}

// TaxService exposes the stateless calculators.
type TaxService interface {
	ValidateIdentifiers(checks []IdentifierCheck) []IdentifierResult
	CalculateGST(in GSTInput) GSTResult
	CalculateTDS(amount decimal.Decimal, section string) tds.Result
	TDSSections() []tds.TDSRecord
}

type taxService struct {
	tdsTable *tds.Table
	log      *zap.Logger
}

// NewTaxService creates a TaxService over a TDS section table. A nil table
// uses the built-in one.
func NewTaxService(tdsTable *tds.Table, log *zap.Logger) TaxService {
	if tdsTable == nil {
		tdsTable = tds.DefaultTable()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &taxService{tdsTable: tdsTable, log: log}
}

func (s *taxService) ValidateIdentifiers(checks []IdentifierCheck) []IdentifierResult {
	results := make([]IdentifierResult, len(checks))
	for i, c := range checks {
		valid, known := gst.Validate(c.Type, c.Value)
		results[i] = IdentifierResult{Type: c.Type, Value: c.Value, Valid: valid, Known: known}
	}
	return results
}

func (s *taxService) CalculateGST(in GSTInput) GSTResult {
	b, outcome := gst.AssessGST(in.TaxableAmount, in.GSTRate, in.SupplierStateCode, in.CustomerStateCode, in.CessRate)
	if !outcome.OK() {
		s.log.Debug("taxService.CalculateGST: input rejected", zap.String("reason", outcome.Reason))
	}
	return GSTResult{
		GSTBreakdown: b,
		Outcome:      outcome,
		InterState:   gst.IsInterState(in.SupplierStateCode, in.CustomerStateCode),
		StandardRate: gst.IsStandardRate(in.GSTRate),
	}
}

func (s *taxService) CalculateTDS(amount decimal.Decimal, section string) tds.Result {
	res := s.tdsTable.Assess(amount, section)
	if res.Status == domain.OutcomeInvalidInput {
		s.log.Debug("taxService.CalculateTDS: input rejected", zap.String("reason", res.Reason))
	}
	return res
}

func (s *taxService) TDSSections() []tds.TDSRecord {
	return s.tdsTable.Sections()
}
