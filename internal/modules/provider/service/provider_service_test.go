package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lector/internal/modules/provider/domain"
	"lector/internal/modules/provider/dto"
	"lector/internal/modules/provider/service"
	apperrors "lector/internal/platform/errors"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
}

func (s fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	entries map[string][]domain.Entry
	err     error
}

func (h fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return h.err
}

func (h fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: "p1", Version: "1"}, nil
}

func (h fakeHost) Lookup(_ context.Context, manifest domain.Manifest, headword string) ([]domain.Entry, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.entries[manifest.Name], nil
}

func manifestWithBinary(t *testing.T, name string, enabled bool) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), name+"-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:    name,
		Version: "1",
		Binary:  binPath,
		SHA256:  hex.EncodeToString(hash[:]),
		Enabled: enabled,
	}
}

func TestListReportsManifests(t *testing.T) {
	t.Parallel()
	store := fakeManifestStore{manifests: []domain.Manifest{
		manifestWithBinary(t, "oxford", true),
		manifestWithBinary(t, "legacy", false),
	}}
	svc := service.NewProviderService(store, fakeHost{})

	infos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected two providers, got %+v", infos)
	}
	if infos[0].Name != "oxford" || !infos[0].Enabled {
		t.Fatalf("unexpected first provider: %+v", infos[0])
	}
	if infos[1].Enabled {
		t.Fatalf("legacy provider should stay disabled: %+v", infos[1])
	}
}

func TestLookupNamedProvider(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, "oxford", true)
	host := fakeHost{entries: map[string][]domain.Entry{
		"oxford": {{Headword: "tea", Dictionary: "Oxford", Definition: "a hot drink"}},
	}}
	svc := service.NewProviderService(fakeManifestStore{manifests: []domain.Manifest{manifest}}, host)

	out, err := svc.Lookup(context.Background(), dto.LookupInput{Provider: "oxford", Term: "tea"})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(out.Entries) != 1 || out.Entries[0].Dictionary != "Oxford" {
		t.Fatalf("unexpected entries: %+v", out.Entries)
	}
}

func TestLookupRejectsDisabledProvider(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, "oxford", false)
	svc := service.NewProviderService(fakeManifestStore{manifests: []domain.Manifest{manifest}}, fakeHost{})

	_, err := svc.Lookup(context.Background(), dto.LookupInput{Provider: "oxford", Term: "tea"})
	if !errors.Is(err, apperrors.ErrProviderDisabled) {
		t.Fatalf("expected disabled error, got %v", err)
	}
}

func TestLookupRejectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, "oxford", true)
	manifest.SHA256 = strings.Repeat("0", 64)
	svc := service.NewProviderService(fakeManifestStore{manifests: []domain.Manifest{manifest}}, fakeHost{})

	_, err := svc.Lookup(context.Background(), dto.LookupInput{Provider: "oxford", Term: "tea"})
	if !errors.Is(err, apperrors.ErrChecksumMismatch) {
		t.Fatalf("expected checksum error, got %v", err)
	}
}

func TestLookupAggregatesEnabledProviders(t *testing.T) {
	t.Parallel()
	first := manifestWithBinary(t, "first", true)
	disabled := manifestWithBinary(t, "disabled", false)
	second := manifestWithBinary(t, "second", true)
	host := fakeHost{entries: map[string][]domain.Entry{
		"first":    {{Headword: "tea", Dictionary: "First", Definition: "one"}},
		"disabled": {{Headword: "tea", Dictionary: "Disabled", Definition: "never"}},
		"second":   {{Headword: "tea", Dictionary: "Second", Definition: "two"}},
	}}
	svc := service.NewProviderService(fakeManifestStore{manifests: []domain.Manifest{first, disabled, second}}, host)

	out, err := svc.Lookup(context.Background(), dto.LookupInput{Term: "tea"})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("expected entries from enabled providers only, got %+v", out.Entries)
	}
	if out.Entries[0].Dictionary != "First" || out.Entries[1].Dictionary != "Second" {
		t.Fatalf("manifest order not preserved: %+v", out.Entries)
	}
}

func TestLookupMapsDeadlineToTimeout(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, "slow", true)
	svc := service.NewProviderService(
		fakeManifestStore{manifests: []domain.Manifest{manifest}},
		fakeHost{err: context.DeadlineExceeded},
	)

	_, err := svc.Lookup(context.Background(), dto.LookupInput{Provider: "slow", Term: "tea"})
	if !errors.Is(err, apperrors.ErrProviderTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestLookupRequiresTerm(t *testing.T) {
	t.Parallel()
	svc := service.NewProviderService(fakeManifestStore{}, fakeHost{})
	if _, err := svc.Lookup(context.Background(), dto.LookupInput{Term: "  "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	manifest := manifestWithBinary(t, "demo", true)
	manifest.SHA256 = strings.Repeat("0", 64)
	svc := service.NewProviderService(fakeManifestStore{manifests: []domain.Manifest{manifest}}, nil)

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].ChecksumValid {
		t.Fatalf("expected checksum mismatch")
	}
	if !results[0].BinaryReachable {
		t.Fatalf("binary should be reachable")
	}
}
