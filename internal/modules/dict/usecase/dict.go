package usecase

import (
	"context"

	"lector/internal/modules/dict/dto"
	dictin "lector/internal/modules/dict/port/in"
	"lector/internal/modules/dict/service"
)

type Interactor struct {
	svc *service.LookupService
}

func NewInteractor(svc *service.LookupService) dictin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Lookup(ctx context.Context, input dto.LookupInput) (dto.LookupOutput, error) {
	result, err := i.svc.Lookup(ctx, input.Term)
	if err != nil {
		return dto.LookupOutput{}, err
	}
	out := dto.LookupOutput{
		Term:      result.Term,
		Matched:   result.Matched,
		FromCache: result.FromCache,
		Entries:   make([]dto.EntryOutput, 0, len(result.Entries)),
	}
	for _, entry := range result.Entries {
		out.Entries = append(out.Entries, dto.EntryOutput{
			Headword:   entry.Headword,
			Dictionary: entry.Dictionary,
			Phonetic:   entry.Phonetic,
			Definition: entry.Definition,
		})
	}
	return out, nil
}

func (i *Interactor) Dictionaries(ctx context.Context) ([]dto.DictionaryOutput, error) {
	infos, err := i.svc.Dictionaries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DictionaryOutput, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.DictionaryOutput{Name: info.Name, Source: info.Source, WordCount: info.WordCount})
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.HistoryOutput, error) {
	items, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.HistoryOutput{Term: item.Term, Matched: item.Matched, Hits: item.Hits, LookedUp: item.LookedUp})
	}
	return out, nil
}
