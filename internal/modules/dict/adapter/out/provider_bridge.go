package out

import (
	"context"

	"lector/internal/modules/dict/domain"
	dictout "lector/internal/modules/dict/port/out"
	providerdto "lector/internal/modules/provider/dto"
	providerin "lector/internal/modules/provider/port/in"
)

// ProviderBridge exposes external lookup plugins as one dictionary
// provider.
type ProviderBridge struct {
	providers providerin.Usecase
}

func NewProviderBridge(providers providerin.Usecase) dictout.Provider {
	return &ProviderBridge{providers: providers}
}

func (b *ProviderBridge) Name() string {
	return "plugins"
}

func (b *ProviderBridge) Lookup(ctx context.Context, headword string) ([]domain.Entry, error) {
	result, err := b.providers.Lookup(ctx, providerdto.LookupInput{Term: headword})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Entry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		out = append(out, domain.Entry{
			Term:       headword,
			Headword:   entry.Headword,
			Dictionary: entry.Dictionary,
			Phonetic:   entry.Phonetic,
			Definition: entry.Definition,
		})
	}
	return out, nil
}

func (b *ProviderBridge) Dictionaries(ctx context.Context) ([]domain.DictionaryInfo, error) {
	providers, err := b.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DictionaryInfo, 0, len(providers))
	for _, p := range providers {
		if !p.Enabled {
			continue
		}
		out = append(out, domain.DictionaryInfo{Name: p.Name, Source: "plugin:" + p.Path})
	}
	return out, nil
}
