package in

import (
	"context"

	"lector/internal/modules/library/dto"
)

type Usecase interface {
	AddDocument(ctx context.Context, input dto.AddDocumentInput) (dto.DocumentOutput, error)
	UpdateProgress(ctx context.Context, input dto.UpdateProgressInput) (dto.DocumentOutput, error)
	ListDocuments(ctx context.Context) ([]dto.DocumentOutput, error)
	GetDocument(ctx context.Context, id string) (dto.DocumentDetailOutput, error)
	Reindex(ctx context.Context, input dto.ReindexInput) error
}
