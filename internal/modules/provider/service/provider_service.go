package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lector/internal/modules/provider/domain"
	"lector/internal/modules/provider/dto"
	providerout "lector/internal/modules/provider/port/out"
	apperrors "lector/internal/platform/errors"
)

type ProviderService struct {
	store providerout.ManifestStore
	host  providerout.Host
}

func NewProviderService(store providerout.ManifestStore, host providerout.Host) *ProviderService {
	return &ProviderService{store: store, host: host}
}

func (s *ProviderService) List(ctx context.Context) ([]dto.ProviderInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.ProviderInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Path: m.Binary})
	}
	return out, nil
}

func (s *ProviderService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ProviderService) Lookup(ctx context.Context, input dto.LookupInput) (dto.LookupOutput, error) {
	term := strings.TrimSpace(input.Term)
	if term == "" {
		return dto.LookupOutput{}, fmt.Errorf("%w: lookup term is required", apperrors.ErrInvalidInput)
	}
	if input.Provider != "" {
		manifest, err := s.getRunnableManifest(ctx, input.Provider)
		if err != nil {
			return dto.LookupOutput{}, err
		}
		entries, err := s.lookupOne(ctx, manifest, term)
		if err != nil {
			return dto.LookupOutput{}, err
		}
		return dto.LookupOutput{Term: term, Entries: entries}, nil
	}

	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return dto.LookupOutput{}, err
	}
	out := dto.LookupOutput{Term: term}
	for _, manifest := range manifests {
		if !manifest.Enabled {
			continue
		}
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			continue
		}
		entries, err := s.lookupOne(ctx, manifest, term)
		if err != nil {
			continue
		}
		out.Entries = append(out.Entries, entries...)
	}
	return out, nil
}

func (s *ProviderService) lookupOne(ctx context.Context, manifest domain.Manifest, term string) ([]dto.EntryOutput, error) {
	entries, err := s.host.Lookup(ctx, manifest, term)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrProviderTimeout, manifest.Name)
		}
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			continue
		}
		out = append(out, dto.EntryOutput{
			Headword:   entry.Headword,
			Dictionary: entry.Dictionary,
			Phonetic:   entry.Phonetic,
			Definition: entry.Definition,
		})
	}
	return out, nil
}

func (s *ProviderService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate provider name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *ProviderService) getRunnableManifest(ctx context.Context, providerName string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == providerName {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("provider %q not found", providerName)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", apperrors.ErrProviderDisabled, providerName)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", apperrors.ErrProviderTimeout, providerName)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read provider binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", apperrors.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
