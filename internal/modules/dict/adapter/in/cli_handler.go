package in

import (
	"context"

	"lector/internal/modules/dict/dto"
	dictin "lector/internal/modules/dict/port/in"
)

type CLIHandler struct {
	usecase dictin.Usecase
}

func NewCLIHandler(usecase dictin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Lookup(ctx context.Context, term string) (dto.LookupOutput, error) {
	return h.usecase.Lookup(ctx, dto.LookupInput{Term: term})
}

func (h CLIHandler) Dictionaries(ctx context.Context) ([]dto.DictionaryOutput, error) {
	return h.usecase.Dictionaries(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.HistoryOutput, error) {
	return h.usecase.History(ctx, limit)
}
