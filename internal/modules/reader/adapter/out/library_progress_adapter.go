package out

import (
	"context"

	"lector/internal/modules/library/dto"
	libraryin "lector/internal/modules/library/port/in"
	readerout "lector/internal/modules/reader/port/out"
)

type LibraryProgressAdapter struct {
	library libraryin.Usecase
}

func NewLibraryProgressAdapter(library libraryin.Usecase) readerout.ProgressPort {
	return &LibraryProgressAdapter{library: library}
}

func (a *LibraryProgressAdapter) Update(ctx context.Context, documentID string, page, pageCount int) error {
	_, err := a.library.UpdateProgress(ctx, dto.UpdateProgressInput{
		DocumentID: documentID,
		Page:       page,
		PageCount:  pageCount,
	})
	return err
}
