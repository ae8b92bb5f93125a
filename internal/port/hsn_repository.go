package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// HSNEntry is one (code, rate) row of the HSN/SAC master. ConditionDesc is
// empty for the unconditional rate of a code.
type HSNEntry struct {
	Code          string          `db:"code"`
	Description   string          `db:"description"`
	GSTRate       decimal.Decimal `db:"gst_rate"`
	ConditionDesc string          `db:"condition_desc"`
	ParentCode    string          `db:"parent_code"`
	EffectiveFrom time.Time       `db:"effective_from"`
}

// HSNRepository loads the currently effective HSN/SAC master.
type HSNRepository interface {
	LoadAll(ctx context.Context) ([]HSNEntry, error)
}

// HSNWriter stores HSN/SAC master rows.
type HSNWriter interface {
	Upsert(ctx context.Context, entries []HSNEntry) (int, error)
}

// HSNStore reads and writes the HSN/SAC master.
type HSNStore interface {
	HSNRepository
	HSNWriter
}
