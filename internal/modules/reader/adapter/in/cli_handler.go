package in

import (
	"context"

	"lector/internal/modules/reader/dto"
	readerin "lector/internal/modules/reader/port/in"
)

type CLIHandler struct {
	usecase readerin.Usecase
}

func NewCLIHandler(usecase readerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) OpenDocument(ctx context.Context, documentID string, page int) (dto.OpenResult, error) {
	return h.usecase.OpenDocument(ctx, dto.OpenDocumentInput{DocumentID: documentID, Page: page})
}

func (h CLIHandler) PageText(ctx context.Context, documentID string, page int) (dto.PageTextOutput, error) {
	return h.usecase.PageText(ctx, dto.PageTextInput{DocumentID: documentID, Page: page})
}

func (h CLIHandler) WordAt(ctx context.Context, documentID string, page int, x, y float64) (dto.WordAtOutput, error) {
	return h.usecase.WordAt(ctx, dto.WordAtInput{DocumentID: documentID, Page: page, X: x, Y: y})
}
