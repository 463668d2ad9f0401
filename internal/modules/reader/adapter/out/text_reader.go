package out

import (
	"context"
	"fmt"
	"os"
	"strings"

	"lector/internal/modules/reader/domain"
	readerout "lector/internal/modules/reader/port/out"
)

const linesPerPage = 40

// TextReader paginates plain text and markdown files by line count.
type TextReader struct{}

func NewTextReader() readerout.PageSource {
	return &TextReader{}
}

func (r *TextReader) ReadPage(_ context.Context, path string, page int) (domain.Page, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("read text file: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	total := (len(lines) + linesPerPage - 1) / linesPerPage
	if total == 0 {
		total = 1
	}
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * linesPerPage
	end := start + linesPerPage
	if end > len(lines) {
		end = len(lines)
	}
	return domain.Page{Number: page, Text: strings.Join(lines[start:end], "\n")}, total, nil
}
