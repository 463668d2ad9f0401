package in

import (
	"context"

	"lector/internal/modules/library/dto"
	libraryin "lector/internal/modules/library/port/in"
)

type CLIHandler struct {
	usecase libraryin.Usecase
}

func NewCLIHandler(usecase libraryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddDocument(ctx context.Context, path, format, title string, authors, tags []string) (dto.DocumentOutput, error) {
	return h.usecase.AddDocument(ctx, dto.AddDocumentInput{
		Path:    path,
		Format:  format,
		Title:   title,
		Authors: authors,
		Tags:    tags,
	})
}

func (h CLIHandler) UpdateProgress(ctx context.Context, documentID string, page, pageCount int) (dto.DocumentOutput, error) {
	return h.usecase.UpdateProgress(ctx, dto.UpdateProgressInput{DocumentID: documentID, Page: page, PageCount: pageCount})
}

func (h CLIHandler) ListDocuments(ctx context.Context) ([]dto.DocumentOutput, error) {
	return h.usecase.ListDocuments(ctx)
}

func (h CLIHandler) GetDocument(ctx context.Context, id string) (dto.DocumentDetailOutput, error) {
	return h.usecase.GetDocument(ctx, id)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx, dto.ReindexInput{})
}
