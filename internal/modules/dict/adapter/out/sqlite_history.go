package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"lector/internal/modules/dict/domain"
	dictout "lector/internal/modules/dict/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistory struct {
	db *sql.DB
}

func NewSQLiteHistory(dbPath string) (dictout.HistoryRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	h := &SQLiteHistory{db: db}
	if err := h.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *SQLiteHistory) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS lookups (
  term TEXT PRIMARY KEY,
  matched TEXT NOT NULL,
  hits INTEGER NOT NULL DEFAULT 1,
  looked_up TEXT NOT NULL
);
`
	if _, err := h.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create lookups table: %w", err)
	}
	return nil
}

func (h *SQLiteHistory) Record(ctx context.Context, result domain.LookupResult) error {
	const stmt = `
INSERT INTO lookups (term, matched, hits, looked_up)
VALUES (?, ?, 1, ?)
ON CONFLICT(term) DO UPDATE SET
  matched=excluded.matched,
  hits=lookups.hits+1,
  looked_up=excluded.looked_up;
`
	_, err := h.db.ExecContext(ctx, stmt,
		result.Term,
		result.Matched,
		result.LookedUp.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("record lookup: %w", err)
	}
	return nil
}

func (h *SQLiteHistory) Recent(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	const query = `
SELECT term, matched, hits, looked_up
FROM lookups
ORDER BY looked_up DESC, term ASC
LIMIT ?;
`
	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query lookup history: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoryItem
	for rows.Next() {
		var item domain.HistoryItem
		var lookedUp string
		if err := rows.Scan(&item.Term, &item.Matched, &item.Hits, &lookedUp); err != nil {
			return nil, fmt.Errorf("scan lookup history: %w", err)
		}
		item.LookedUp = parseTime(lookedUp)
		out = append(out, item)
	}
	return out, rows.Err()
}
