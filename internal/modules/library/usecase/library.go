package usecase

import (
	"context"

	"lector/internal/modules/library/domain"
	"lector/internal/modules/library/dto"
	libraryin "lector/internal/modules/library/port/in"
	"lector/internal/modules/library/service"
)

type Interactor struct {
	svc *service.DocumentService
}

func NewInteractor(svc *service.DocumentService) libraryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddDocument(ctx context.Context, input dto.AddDocumentInput) (dto.DocumentOutput, error) {
	document, path, err := i.svc.AddDocument(ctx, domain.Format(input.Format), input.Path, input.Title, input.Authors, input.Tags)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return dto.DocumentOutput{
		ID:       document.ID,
		Title:    document.Title,
		Format:   string(document.Format),
		Percent:  document.ProgressPct,
		Page:     document.CurrentPage,
		NotePath: path,
	}, nil
}

func (i *Interactor) UpdateProgress(ctx context.Context, input dto.UpdateProgressInput) (dto.DocumentOutput, error) {
	document, err := i.svc.UpdateProgress(ctx, input.DocumentID, input.Page, input.PageCount, input.SessionID)
	if err != nil {
		return dto.DocumentOutput{}, err
	}
	return dto.DocumentOutput{
		ID:       document.ID,
		Title:    document.Title,
		Format:   string(document.Format),
		Percent:  document.ProgressPct,
		Page:     document.CurrentPage,
		NotePath: document.NotePath,
	}, nil
}

func (i *Interactor) ListDocuments(ctx context.Context) ([]dto.DocumentOutput, error) {
	documents, err := i.svc.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentOutput, 0, len(documents))
	for _, document := range documents {
		out = append(out, dto.DocumentOutput{
			ID:       document.ID,
			Title:    document.Title,
			Format:   string(document.Format),
			Percent:  document.ProgressPct,
			Page:     document.CurrentPage,
			NotePath: document.NotePath,
		})
	}
	return out, nil
}

func (i *Interactor) GetDocument(ctx context.Context, id string) (dto.DocumentDetailOutput, error) {
	document, err := i.svc.GetDocument(ctx, id)
	if err != nil {
		return dto.DocumentDetailOutput{}, err
	}
	return dto.DocumentDetailOutput{
		ID:          document.ID,
		Title:       document.Title,
		Format:      string(document.Format),
		Authors:     document.Authors,
		FilePath:    document.FilePath,
		NotePath:    document.NotePath,
		Status:      document.Status,
		Percent:     document.ProgressPct,
		CurrentPage: document.CurrentPage,
		PageCount:   document.PageCount,
		Tags:        document.Tags,
	}, nil
}

func (i *Interactor) Reindex(ctx context.Context, _ dto.ReindexInput) error {
	return i.svc.Reindex(ctx)
}
