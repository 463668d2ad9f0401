package out

import (
	"context"

	"lector/internal/modules/provider/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Lookup(ctx context.Context, manifest domain.Manifest, headword string) ([]domain.Entry, error)
}
