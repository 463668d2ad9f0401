package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"lector/internal/modules/library/domain"
	libraryout "lector/internal/modules/library/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteDocumentProjector struct {
	db *sql.DB
}

func NewSQLiteDocumentProjector(dbPath string) (libraryout.DocumentIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteDocumentProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteDocumentProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS documents (
  id TEXT PRIMARY KEY,
  format TEXT NOT NULL,
  title TEXT NOT NULL,
  slug TEXT NOT NULL,
  file_path TEXT NOT NULL,
  status TEXT,
  page_count INTEGER,
  current_page INTEGER,
  progress_percent REAL NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (s *SQLiteDocumentProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return fmt.Errorf("reset documents: %w", err)
	}
	return nil
}

func (s *SQLiteDocumentProjector) UpsertDocument(ctx context.Context, document domain.Document) error {
	const stmt = `
INSERT INTO documents (id, format, title, slug, file_path, status, page_count, current_page, progress_percent, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  format=excluded.format,
  title=excluded.title,
  slug=excluded.slug,
  file_path=excluded.file_path,
  status=excluded.status,
  page_count=excluded.page_count,
  current_page=excluded.current_page,
  progress_percent=excluded.progress_percent,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		document.ID,
		string(document.Format),
		document.Title,
		document.Slug,
		document.FilePath,
		document.Status,
		document.PageCount,
		document.CurrentPage,
		document.ProgressPct,
		document.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}
