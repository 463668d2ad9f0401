package out

import (
	"context"

	"lector/internal/modules/reader/domain"
)

// PageSource extracts text from one document format. ReadPage returns the
// page along with the total page count.
type PageSource interface {
	ReadPage(ctx context.Context, path string, page int) (domain.Page, int, error)
}

// LayoutSource additionally reports positioned text runs for selection.
type LayoutSource interface {
	ReadLayout(ctx context.Context, path string, page int) (domain.PageLayout, int, error)
}

type DocumentResolver interface {
	Resolve(ctx context.Context, documentID string) (domain.DocumentRef, error)
}

type ProgressPort interface {
	Update(ctx context.Context, documentID string, page, pageCount int) error
}

// PositionPort reports the last persisted reading position, if any.
type PositionPort interface {
	Position(ctx context.Context, documentID string) (int, bool)
}
