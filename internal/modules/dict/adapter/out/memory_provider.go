package out

import (
	"context"
	"strings"

	"lector/internal/modules/dict/domain"
	dictout "lector/internal/modules/dict/port/out"
)

const builtinDictionary = "Built-in Glossary"

// MemoryProvider is a tiny built-in glossary used when no dictionaries are
// installed, so that lookup always has something to answer with.
type MemoryProvider struct {
	entries map[string]domain.Entry
}

func NewMemoryProvider() dictout.Provider {
	entries := map[string]domain.Entry{
		"praise": {
			Headword:   "praise",
			Dictionary: builtinDictionary,
			Phonetic:   "/preɪz/",
			Definition: "1. (noun) words that show approval of or admiration for somebody or something\n2. (verb) to express approval or admiration for somebody or something",
		},
		"lookup": {
			Headword:   "lookup",
			Dictionary: builtinDictionary,
			Definition: "1. (noun) the action of finding a piece of information in a reference work",
		},
		"lector": {
			Headword:   "lector",
			Dictionary: builtinDictionary,
			Phonetic:   "/ˈlektɔːr/",
			Definition: "1. (noun) a person who reads, especially aloud; a reader",
		},
	}
	return &MemoryProvider{entries: entries}
}

func (p *MemoryProvider) Name() string {
	return "builtin"
}

func (p *MemoryProvider) Lookup(_ context.Context, headword string) ([]domain.Entry, error) {
	entry, ok := p.entries[strings.ToLower(headword)]
	if !ok {
		return nil, nil
	}
	entry.Term = headword
	return []domain.Entry{entry}, nil
}

func (p *MemoryProvider) Dictionaries(context.Context) ([]domain.DictionaryInfo, error) {
	return []domain.DictionaryInfo{{
		Name:      builtinDictionary,
		Source:    "builtin",
		WordCount: int64(len(p.entries)),
	}}, nil
}
