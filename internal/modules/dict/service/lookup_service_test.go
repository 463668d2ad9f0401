package service_test

import (
	"context"
	"errors"
	"testing"

	"lector/internal/modules/dict/domain"
	dictout "lector/internal/modules/dict/port/out"
	"lector/internal/modules/dict/service"
	"lector/internal/platform/clock"
	apperrors "lector/internal/platform/errors"
)

type fakeProvider struct {
	name    string
	entries map[string][]domain.Entry
	err     error
	calls   int
}

func (f *fakeProvider) Name() string {
	return f.name
}

func (f *fakeProvider) Lookup(_ context.Context, headword string) ([]domain.Entry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[headword], nil
}

func (f *fakeProvider) Dictionaries(context.Context) ([]domain.DictionaryInfo, error) {
	return []domain.DictionaryInfo{{Name: f.name}}, nil
}

type fakeHistory struct {
	records []domain.LookupResult
}

func (f *fakeHistory) Record(_ context.Context, result domain.LookupResult) error {
	f.records = append(f.records, result)
	return nil
}

func (f *fakeHistory) Recent(context.Context, int) ([]domain.HistoryItem, error) {
	items := make([]domain.HistoryItem, 0, len(f.records))
	for _, r := range f.records {
		items = append(items, domain.HistoryItem{Term: r.Term, Matched: r.Matched, Hits: 1})
	}
	return items, nil
}

func entry(word, dict string) domain.Entry {
	return domain.Entry{Headword: word, Dictionary: dict, Definition: "a definition of " + word}
}

func newService(t *testing.T, history dictout.HistoryRecorder, providers ...dictout.Provider) *service.LookupService {
	t.Helper()
	svc, err := service.NewLookupService(clock.SystemClock{}, providers, history, nil)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestLookupTriesVariationsInOrder(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{
		name:    "main",
		entries: map[string][]domain.Entry{"walk": {entry("walk", "Main")}},
	}
	history := &fakeHistory{}
	svc := newService(t, history, provider)

	result, err := svc.Lookup(context.Background(), "Walked")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if result.Matched != "walk" {
		t.Fatalf("matched = %q, want walk", result.Matched)
	}
	if len(result.Entries) != 1 || result.Entries[0].Headword != "walk" {
		t.Fatalf("unexpected entries: %+v", result.Entries)
	}
	if len(history.records) != 1 {
		t.Fatalf("history should record the lookup, got %d", len(history.records))
	}
}

func TestLookupMergesProvidersAndSkipsBrokenOnes(t *testing.T) {
	t.Parallel()
	first := &fakeProvider{
		name:    "first",
		entries: map[string][]domain.Entry{"tea": {entry("tea", "First")}},
	}
	broken := &fakeProvider{name: "broken", err: errors.New("boom")}
	second := &fakeProvider{
		name:    "second",
		entries: map[string][]domain.Entry{"tea": {entry("tea", "Second")}},
	}
	svc := newService(t, nil, first, broken, second)

	result, err := svc.Lookup(context.Background(), "tea")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected entries from both healthy providers, got %+v", result.Entries)
	}
	if result.Entries[0].Dictionary != "First" || result.Entries[1].Dictionary != "Second" {
		t.Fatalf("provider order not preserved: %+v", result.Entries)
	}
}

func TestLookupCachesResults(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{
		name:    "main",
		entries: map[string][]domain.Entry{"tea": {entry("tea", "Main")}},
	}
	svc := newService(t, nil, provider)

	first, err := svc.Lookup(context.Background(), "tea")
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if first.FromCache {
		t.Fatal("first lookup must not come from cache")
	}
	callsAfterFirst := provider.calls

	second, err := svc.Lookup(context.Background(), "Tea")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second lookup should come from cache")
	}
	if provider.calls != callsAfterFirst {
		t.Fatalf("cached lookup must not hit the provider again: %d -> %d", callsAfterFirst, provider.calls)
	}
}

func TestLookupRejectsShortTerms(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, &fakeProvider{name: "main"})

	for _, term := range []string{"", " ", "a", " a "} {
		if _, err := svc.Lookup(context.Background(), term); !errors.Is(err, apperrors.ErrTermTooShort) {
			t.Fatalf("term %q should be rejected, got %v", term, err)
		}
	}
}

func TestLookupReportsNoDefinition(t *testing.T) {
	t.Parallel()
	history := &fakeHistory{}
	svc := newService(t, history, &fakeProvider{name: "main"})

	if _, err := svc.Lookup(context.Background(), "zzzz"); !errors.Is(err, apperrors.ErrNoDefinition) {
		t.Fatalf("expected no definition error, got %v", err)
	}
	if len(history.records) != 0 {
		t.Fatal("misses must not be recorded in history")
	}
}

func TestDictionariesAggregatesProviders(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil,
		&fakeProvider{name: "first"},
		&fakeProvider{name: "second"},
	)
	infos, err := svc.Dictionaries(context.Background())
	if err != nil {
		t.Fatalf("dictionaries: %v", err)
	}
	if len(infos) != 2 || infos[0].Name != "first" || infos[1].Name != "second" {
		t.Fatalf("unexpected dictionaries: %+v", infos)
	}
}
