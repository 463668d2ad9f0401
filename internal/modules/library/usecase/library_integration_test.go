package usecase_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	libraryout "lector/internal/modules/library/adapter/out"
	"lector/internal/modules/library/dto"
	"lector/internal/modules/library/service"
	"lector/internal/modules/library/usecase"
	"lector/internal/platform/clock"
	"lector/internal/platform/id"

	_ "modernc.org/sqlite"
)

func TestAddListGetUpdateAndReindex(t *testing.T) {
	t.Parallel()
	library := t.TempDir()
	dbPath := filepath.Join(library, ".lector", "lector.db")
	bookFile := filepath.Join(library, "sample.pdf")
	if err := os.WriteFile(bookFile, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write sample file: %v", err)
	}

	store := libraryout.NewShelfStore(filepath.Join(library, "shelf"))
	projector, err := libraryout.NewSQLiteDocumentProjector(dbPath)
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	uc := usecase.NewInteractor(service.NewDocumentService(clock.SystemClock{}, id.RandomHex{}, store, projector))

	out, err := uc.AddDocument(context.Background(), dto.AddDocumentInput{
		Path:  bookFile,
		Title: "The Go Programming Language",
		Tags:  []string{"golang"},
	})
	if err != nil {
		t.Fatalf("add document: %v", err)
	}
	if out.Format != "pdf" {
		t.Fatalf("format should be detected from the extension, got %q", out.Format)
	}

	content, err := os.ReadFile(out.NotePath)
	if err != nil {
		t.Fatalf("read shelf note: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "---\n") || !strings.Contains(text, "## Vocabulary") {
		t.Fatalf("shelf note was not rendered as expected: %s", text)
	}

	list, err := uc.ListDocuments(context.Background())
	if err != nil {
		t.Fatalf("list documents: %v", err)
	}
	if len(list) != 1 || list[0].ID != out.ID {
		t.Fatalf("unexpected list result: %+v", list)
	}

	detail, err := uc.GetDocument(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	if detail.FilePath != bookFile {
		t.Fatalf("expected file path %s, got %s", bookFile, detail.FilePath)
	}

	if _, err := uc.UpdateProgress(context.Background(), dto.UpdateProgressInput{DocumentID: out.ID, Page: 95, PageCount: 380, SessionID: "sess-0001"}); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	detail, err = uc.GetDocument(context.Background(), out.ID)
	if err != nil {
		t.Fatalf("get document after progress update: %v", err)
	}
	if detail.CurrentPage != 95 || detail.Percent != 25 {
		t.Fatalf("expected page 95 at 25%%, got page %d at %.2f", detail.CurrentPage, detail.Percent)
	}
	content, err = os.ReadFile(out.NotePath)
	if err != nil {
		t.Fatalf("re-read shelf note: %v", err)
	}
	if !strings.Contains(string(content), "last_session_id: sess-0001") {
		t.Fatalf("shelf note should record the last session: %s", content)
	}

	if err := uc.Reindex(context.Background(), dto.ReindexInput{}); err != nil {
		t.Fatalf("reindex: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		t.Fatalf("count documents: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one projected document, got %d", count)
	}
}
