package out

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lector/internal/modules/reader/domain"
	readerout "lector/internal/modules/reader/port/out"
	"rsc.io/pdf"
)

// LocalPDFReader extracts page text and positioned text runs from PDF files
// on the local filesystem.
type LocalPDFReader struct{}

func NewLocalPDFReader() *LocalPDFReader {
	return &LocalPDFReader{}
}

var _ readerout.PageSource = (*LocalPDFReader)(nil)
var _ readerout.LayoutSource = (*LocalPDFReader)(nil)

func (r *LocalPDFReader) ReadPage(ctx context.Context, path string, page int) (domain.Page, int, error) {
	layout, total, err := r.ReadLayout(ctx, path, page)
	if err != nil {
		return domain.Page{}, total, err
	}
	parts := make([]string, 0, len(layout.Spans))
	for _, span := range layout.Spans {
		parts = append(parts, span.Text)
	}
	return domain.Page{Number: layout.Number, Text: strings.Join(parts, "\n")}, total, nil
}

func (r *LocalPDFReader) ReadLayout(_ context.Context, path string, page int) (domain.PageLayout, int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.PageLayout{}, 0, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return domain.PageLayout{Number: 1}, 0, nil
	}
	if page > total {
		page = total
	}
	p := doc.Page(page)
	if p.V.IsNull() {
		return domain.PageLayout{}, total, fmt.Errorf("pdf page %d is null", page)
	}
	return domain.PageLayout{Number: page, Spans: spansFromContent(p.Content())}, total, nil
}

// spansFromContent merges the raw text runs of a page into line spans. Runs
// sharing a baseline are joined left to right; a gap wider than a third of
// the font size becomes a space.
func spansFromContent(content pdf.Content) []domain.TextSpan {
	runs := make([]pdf.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		runs = append(runs, t)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var spans []domain.TextSpan
	for _, t := range runs {
		if len(spans) > 0 {
			last := &spans[len(spans)-1]
			if sameBaseline(last.Y, t.Y) {
				gap := t.X - (last.X + last.W)
				if gap > last.FontSize/3 && !strings.HasSuffix(last.Text, " ") {
					last.Text += " "
				}
				last.Text += t.S
				last.W = t.X + t.W - last.X
				continue
			}
		}
		spans = append(spans, domain.TextSpan{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			FontSize: t.FontSize,
		})
	}
	for i := range spans {
		spans[i].Text = strings.TrimRight(spans[i].Text, " ")
	}
	return spans
}

func sameBaseline(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.5
}
