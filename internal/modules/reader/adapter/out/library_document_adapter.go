package out

import (
	"context"

	libraryin "lector/internal/modules/library/port/in"
	"lector/internal/modules/reader/domain"
	readerout "lector/internal/modules/reader/port/out"
)

type LibraryDocumentAdapter struct {
	library libraryin.Usecase
}

func NewLibraryDocumentAdapter(library libraryin.Usecase) readerout.DocumentResolver {
	return &LibraryDocumentAdapter{library: library}
}

func (a *LibraryDocumentAdapter) Resolve(ctx context.Context, documentID string) (domain.DocumentRef, error) {
	document, err := a.library.GetDocument(ctx, documentID)
	if err != nil {
		return domain.DocumentRef{}, err
	}
	return domain.DocumentRef{
		ID:          document.ID,
		Title:       document.Title,
		Format:      document.Format,
		FilePath:    document.FilePath,
		NotePath:    document.NotePath,
		CurrentPage: document.CurrentPage,
		PageCount:   document.PageCount,
		Percent:     document.Percent,
	}, nil
}
