package out

import (
	"context"

	"lector/internal/modules/library/domain"
)

type DocumentStore interface {
	Save(ctx context.Context, note domain.DocumentNote) (string, error)
	FindByID(ctx context.Context, id string) (domain.DocumentNote, error)
	List(ctx context.Context) ([]domain.DocumentNote, error)
}

type DocumentIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertDocument(ctx context.Context, document domain.Document) error
}
