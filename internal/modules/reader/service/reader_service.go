package service

import (
	"context"
	"fmt"
	"strings"

	"lector/internal/modules/reader/domain"
	readerout "lector/internal/modules/reader/port/out"
)

type ReaderService struct {
	pdfSource  readerout.PageSource
	epubSource readerout.PageSource
	textSource readerout.PageSource
	layout     readerout.LayoutSource
	resolver   readerout.DocumentResolver
	progress   readerout.ProgressPort
	position   readerout.PositionPort
}

func NewReaderService(
	pdfSource readerout.PageSource,
	epubSource readerout.PageSource,
	textSource readerout.PageSource,
	layout readerout.LayoutSource,
	resolver readerout.DocumentResolver,
	progress readerout.ProgressPort,
	position readerout.PositionPort,
) *ReaderService {
	return &ReaderService{
		pdfSource:  pdfSource,
		epubSource: epubSource,
		textSource: textSource,
		layout:     layout,
		resolver:   resolver,
		progress:   progress,
		position:   position,
	}
}

func (s *ReaderService) OpenDocument(ctx context.Context, documentID string, page int) (domain.DocumentRef, domain.Page, int, error) {
	document, err := s.resolve(ctx, documentID)
	if err != nil {
		return domain.DocumentRef{}, domain.Page{}, 0, err
	}
	if page <= 0 {
		// Resume where the reader left off.
		if s.position != nil {
			if saved, ok := s.position.Position(ctx, document.ID); ok {
				page = saved
			}
		}
		if page <= 0 && document.CurrentPage > 0 {
			page = document.CurrentPage
		}
		if page <= 0 {
			page = 1
		}
	}
	p, total, err := s.readPage(ctx, document, page)
	if err != nil {
		return domain.DocumentRef{}, domain.Page{}, 0, err
	}
	if s.progress != nil {
		if err := s.progress.Update(ctx, document.ID, p.Number, total); err != nil {
			return domain.DocumentRef{}, domain.Page{}, 0, err
		}
	}
	return document, p, total, nil
}

func (s *ReaderService) PageText(ctx context.Context, documentID string, page int) (domain.Page, int, error) {
	document, err := s.resolve(ctx, documentID)
	if err != nil {
		return domain.Page{}, 0, err
	}
	if page <= 0 {
		page = 1
	}
	return s.readPage(ctx, document, page)
}

func (s *ReaderService) WordAt(ctx context.Context, documentID string, page int, x, y float64) (domain.Selection, error) {
	document, err := s.resolve(ctx, documentID)
	if err != nil {
		return domain.Selection{}, err
	}
	if strings.ToLower(document.Format) != "pdf" {
		return domain.Selection{}, fmt.Errorf("selection by point is only available for pdf documents")
	}
	if s.layout == nil {
		return domain.Selection{}, fmt.Errorf("layout source is not configured")
	}
	if page <= 0 {
		page = 1
	}
	layout, _, err := s.layout.ReadLayout(ctx, document.FilePath, page)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.WordAt(layout, x, y)
}

func (s *ReaderService) resolve(ctx context.Context, documentID string) (domain.DocumentRef, error) {
	if s.resolver == nil {
		return domain.DocumentRef{}, fmt.Errorf("document resolver is not configured")
	}
	return s.resolver.Resolve(ctx, documentID)
}

func (s *ReaderService) readPage(ctx context.Context, document domain.DocumentRef, page int) (domain.Page, int, error) {
	if document.FilePath == "" {
		return domain.Page{}, 0, fmt.Errorf("document has no readable file path")
	}
	var source readerout.PageSource
	switch strings.ToLower(document.Format) {
	case "pdf":
		source = s.pdfSource
	case "epub":
		source = s.epubSource
	case "text":
		source = s.textSource
	default:
		return domain.Page{}, 0, fmt.Errorf("unsupported document format %q", document.Format)
	}
	if source == nil {
		return domain.Page{}, 0, fmt.Errorf("no reader configured for format %q", document.Format)
	}
	return source.ReadPage(ctx, document.FilePath, page)
}
