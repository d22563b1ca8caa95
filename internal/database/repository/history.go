package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// HistoryRepo handles the copy history.
type HistoryRepo struct {
	db  DBTX
	now func() time.Time
}

func NewHistoryRepo(db DBTX) *HistoryRepo {
	return &HistoryRepo{db: db, now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }}
}

// Add records that glyph was copied and returns the new entry.
func (r *HistoryRepo) Add(ctx context.Context, glyph string) (HistoryEntry, error) {
	e := HistoryEntry{ID: uuid.NewString(), Glyph: glyph, CopiedAt: r.now()}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO copy_history(id, glyph, copied_at) VALUES (?, ?, ?);
	`, e.ID, e.Glyph, e.CopiedAt)
	if err != nil {
		return HistoryEntry{}, err
	}
	return e, nil
}

// Recent returns up to limit distinct glyphs, most recently copied first.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]RecentGlyph, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT glyph, COUNT(*) FROM copy_history
	GROUP BY glyph
	ORDER BY MAX(rowid) DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RecentGlyph
	for rows.Next() {
		var g RecentGlyph
		if err := rows.Scan(&g.Glyph, &g.Count); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Clear removes every entry.
func (r *HistoryRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM copy_history`)
	return err
}
