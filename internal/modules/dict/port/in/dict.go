package in

import (
	"context"

	"lector/internal/modules/dict/dto"
)

type Usecase interface {
	Lookup(ctx context.Context, input dto.LookupInput) (dto.LookupOutput, error)
	Dictionaries(ctx context.Context) ([]dto.DictionaryOutput, error)
	History(ctx context.Context, limit int) ([]dto.HistoryOutput, error)
}
