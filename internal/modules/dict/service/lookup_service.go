package service

import (
	"context"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"

	"lector/internal/modules/dict/domain"
	dictout "lector/internal/modules/dict/port/out"
	"lector/internal/platform/clock"
	apperrors "lector/internal/platform/errors"
	"lector/internal/platform/logging"
)

const (
	minTermLength = 2
	cacheSize     = 256
)

// LookupService resolves a term against all configured providers. For each
// provider the headword variations are tried in order and the first hit
// wins; results across providers are merged.
type LookupService struct {
	clock     clock.Clock
	providers []dictout.Provider
	history   dictout.HistoryRecorder
	cache     *lru.Cache[string, domain.LookupResult]
	logger    hclog.Logger
}

func NewLookupService(clock clock.Clock, providers []dictout.Provider, history dictout.HistoryRecorder, logger hclog.Logger) (*LookupService, error) {
	cache, err := lru.New[string, domain.LookupResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &LookupService{
		clock:     clock,
		providers: providers,
		history:   history,
		cache:     cache,
		logger:    logger,
	}, nil
}

func (s *LookupService) Lookup(ctx context.Context, term string) (domain.LookupResult, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minTermLength {
		return domain.LookupResult{}, apperrors.ErrTermTooShort
	}

	cacheKey := strings.ToLower(term)
	if cached, ok := s.cache.Get(cacheKey); ok {
		cached.FromCache = true
		s.logger.Debug("lookup served from cache", "term", logging.Sanitize(term))
		return cached, nil
	}

	variations := domain.Variations(term)
	result := domain.LookupResult{Term: term, LookedUp: s.clock.Now()}

	for _, provider := range s.providers {
		if err := ctx.Err(); err != nil {
			return domain.LookupResult{}, err
		}
		entries, matched, err := s.lookupProvider(ctx, provider, variations)
		if err != nil {
			// One broken provider must not take the whole lookup down.
			s.logger.Warn("provider lookup failed", "provider", provider.Name(), "error", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}
		if result.Matched == "" {
			result.Matched = matched
		}
		result.Entries = append(result.Entries, entries...)
	}

	if !result.Found() {
		s.logger.Info("lookup found nothing", "term", logging.Sanitize(term))
		return domain.LookupResult{}, apperrors.ErrNoDefinition
	}

	s.cache.Add(cacheKey, result)
	if s.history != nil {
		if err := s.history.Record(ctx, result); err != nil {
			s.logger.Warn("recording lookup history failed", "error", err)
		}
	}
	s.logger.Info("lookup resolved",
		"term", logging.Sanitize(term),
		"entries", len(result.Entries),
	)
	return result, nil
}

func (s *LookupService) lookupProvider(ctx context.Context, provider dictout.Provider, variations []string) ([]domain.Entry, string, error) {
	for _, variation := range variations {
		entries, err := provider.Lookup(ctx, variation)
		if err != nil {
			return nil, "", err
		}
		if len(entries) > 0 {
			return entries, variation, nil
		}
	}
	return nil, "", nil
}

func (s *LookupService) Dictionaries(ctx context.Context) ([]domain.DictionaryInfo, error) {
	var out []domain.DictionaryInfo
	for _, provider := range s.providers {
		infos, err := provider.Dictionaries(ctx)
		if err != nil {
			s.logger.Warn("listing dictionaries failed", "provider", provider.Name(), "error", err)
			continue
		}
		out = append(out, infos...)
	}
	return out, nil
}

func (s *LookupService) History(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.history.Recent(ctx, limit)
}
