package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taxengine/internal/port"
)

const (
	selectEffectiveHSN = `SELECT code, description, gst_rate, condition_desc
		FROM hsn_codes
		WHERE effective_from <= CURRENT_DATE
		  AND (effective_to IS NULL OR effective_to >= CURRENT_DATE)
		ORDER BY code, gst_rate`

	upsertHSN = `INSERT INTO hsn_codes (code, description, gst_rate, condition_desc, parent_code, effective_from)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		ON CONFLICT (code, gst_rate, condition_desc, effective_from)
		DO UPDATE SET description = EXCLUDED.description, parent_code = EXCLUDED.parent_code`
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a PostgreSQL-backed HSN master store.
func NewHSNRepo(db *sqlx.DB) port.HSNStore {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) LoadAll(ctx context.Context) ([]port.HSNEntry, error) {
	var entries []port.HSNEntry
	if err := r.db.SelectContext(ctx, &entries, selectEffectiveHSN); err != nil {
		return nil, fmt.Errorf("hsnRepo.LoadAll: %w", err)
	}
	return entries, nil
}

// Upsert writes entries in one transaction and returns how many were written.
func (r *hsnRepo) Upsert(ctx context.Context, entries []port.HSNEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("hsnRepo.Upsert: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range entries {
		e := &entries[i]
		if _, err := tx.ExecContext(ctx, upsertHSN,
			e.Code, e.Description, e.GSTRate, e.ConditionDesc, e.ParentCode, e.EffectiveFrom); err != nil {
			return 0, fmt.Errorf("hsnRepo.Upsert: code %s at %s%%: %w", e.Code, e.GSTRate.String(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("hsnRepo.Upsert: commit: %w", err)
	}
	return len(entries), nil
}
