package in

import (
	"context"

	"lector/internal/modules/reader/dto"
)

type Usecase interface {
	OpenDocument(ctx context.Context, input dto.OpenDocumentInput) (dto.OpenResult, error)
	PageText(ctx context.Context, input dto.PageTextInput) (dto.PageTextOutput, error)
	WordAt(ctx context.Context, input dto.WordAtInput) (dto.WordAtOutput, error)
}
