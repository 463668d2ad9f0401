package usecase

import (
	"context"

	"lector/internal/modules/reader/dto"
	readerin "lector/internal/modules/reader/port/in"
	"lector/internal/modules/reader/service"
)

type Interactor struct {
	svc *service.ReaderService
}

func NewInteractor(svc *service.ReaderService) readerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) OpenDocument(ctx context.Context, input dto.OpenDocumentInput) (dto.OpenResult, error) {
	document, page, total, err := i.svc.OpenDocument(ctx, input.DocumentID, input.Page)
	if err != nil {
		return dto.OpenResult{}, err
	}
	return dto.OpenResult{
		DocumentID: document.ID,
		Title:      document.Title,
		Format:     document.Format,
		Page:       page.Number,
		TotalPages: total,
		Content:    page.Text,
		Percent:    document.Percent,
	}, nil
}

func (i *Interactor) PageText(ctx context.Context, input dto.PageTextInput) (dto.PageTextOutput, error) {
	page, total, err := i.svc.PageText(ctx, input.DocumentID, input.Page)
	if err != nil {
		return dto.PageTextOutput{}, err
	}
	return dto.PageTextOutput{Page: page.Number, TotalPages: total, Text: page.Text}, nil
}

func (i *Interactor) WordAt(ctx context.Context, input dto.WordAtInput) (dto.WordAtOutput, error) {
	selection, err := i.svc.WordAt(ctx, input.DocumentID, input.Page, input.X, input.Y)
	if err != nil {
		return dto.WordAtOutput{}, err
	}
	return dto.WordAtOutput{Word: selection.Word, SpanText: selection.Span.Text}, nil
}
