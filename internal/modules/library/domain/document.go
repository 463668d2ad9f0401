package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatEPUB Format = "epub"
	FormatText Format = "text"
)

const SchemaVersion = 1

type Document struct {
	ID            string
	Format        Format
	Title         string
	Authors       []string
	FilePath      string
	NotePath      string
	Slug          string
	Tags          []string
	Status        string
	PageCount     int
	CurrentPage   int
	ProgressPct   float64
	AddedAt       time.Time
	UpdatedAt     time.Time
	LastSessionID string
}

func (f Format) Validate() error {
	switch f {
	case FormatPDF, FormatEPUB, FormatText:
		return nil
	default:
		return fmt.Errorf("unsupported document format %q", string(f))
	}
}

// DetectFormat maps a file extension to a document format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".epub":
		return FormatEPUB, nil
	case ".txt", ".md", ".text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("cannot detect format of %q", filepath.Base(path))
	}
}

func (d Document) Validate() error {
	if err := d.Format.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(d.FilePath) == "" {
		return fmt.Errorf("file path is required")
	}
	if strings.TrimSpace(d.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	return nil
}

// Progress derives the percentage read from page position when a page count
// is known.
func (d Document) Progress() float64 {
	if d.PageCount <= 0 {
		return d.ProgressPct
	}
	pct := float64(d.CurrentPage) / float64(d.PageCount) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DocumentNote pairs a document with the free-form body of its shelf note.
type DocumentNote struct {
	Document Document
	Body     string
}
