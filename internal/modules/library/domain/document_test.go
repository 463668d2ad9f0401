package domain_test

import (
	"testing"
	"time"

	"lector/internal/modules/library/domain"
)

func TestFormatValidate(t *testing.T) {
	t.Parallel()
	if err := domain.Format("pdf").Validate(); err != nil {
		t.Fatalf("pdf should be valid: %v", err)
	}
	if err := domain.Format("docx").Validate(); err == nil {
		t.Fatalf("unknown format should fail")
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		path string
		want domain.Format
	}{
		{"book.pdf", domain.FormatPDF},
		{"Book.PDF", domain.FormatPDF},
		{"novel.epub", domain.FormatEPUB},
		{"notes.txt", domain.FormatText},
		{"readme.md", domain.FormatText},
	} {
		got, err := domain.DetectFormat(tc.path)
		if err != nil {
			t.Fatalf("detect %s: %v", tc.path, err)
		}
		if got != tc.want {
			t.Fatalf("detect %s = %s, want %s", tc.path, got, tc.want)
		}
	}
	if _, err := domain.DetectFormat("image.png"); err == nil {
		t.Fatalf("unknown extension should fail")
	}
}

func TestDocumentValidate(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	base := domain.Document{
		ID:        "id-1",
		Format:    domain.FormatPDF,
		Title:     "Sample",
		FilePath:  "/books/sample.pdf",
		Slug:      "sample",
		AddedAt:   now,
		UpdatedAt: now,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("document should be valid: %v", err)
	}
	invalidFormat := base
	invalidFormat.Format = "mystery"
	if err := invalidFormat.Validate(); err == nil {
		t.Fatalf("invalid format should fail")
	}
	missingTitle := base
	missingTitle.Title = ""
	if err := missingTitle.Validate(); err == nil {
		t.Fatalf("missing title should fail")
	}
	missingFile := base
	missingFile.FilePath = ""
	if err := missingFile.Validate(); err == nil {
		t.Fatalf("missing file path should fail")
	}
}

func TestDocumentProgress(t *testing.T) {
	t.Parallel()
	d := domain.Document{PageCount: 200, CurrentPage: 50}
	if got := d.Progress(); got != 25 {
		t.Fatalf("progress = %.2f, want 25", got)
	}
	d.CurrentPage = 300
	if got := d.Progress(); got != 100 {
		t.Fatalf("progress past the end should clamp to 100, got %.2f", got)
	}
	unknown := domain.Document{ProgressPct: 12.5}
	if got := unknown.Progress(); got != 12.5 {
		t.Fatalf("without a page count the stored percent wins, got %.2f", got)
	}
}
