package out

import (
	"context"

	"lector/internal/modules/dict/domain"
)

// Provider serves definitions for exact headwords. Implementations do no
// normalization or inflection handling of their own; the lookup service
// drives the variation chain.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, headword string) ([]domain.Entry, error)
	Dictionaries(ctx context.Context) ([]domain.DictionaryInfo, error)
}

// HistoryRecorder persists finished lookups for later recall.
type HistoryRecorder interface {
	Record(ctx context.Context, result domain.LookupResult) error
	Recent(ctx context.Context, limit int) ([]domain.HistoryItem, error)
}
