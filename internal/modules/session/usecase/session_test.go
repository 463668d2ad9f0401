package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	librarydto "lector/internal/modules/library/dto"
	sessionout "lector/internal/modules/session/adapter/out"
	"lector/internal/modules/session/domain"
	"lector/internal/modules/session/dto"
	sessionin "lector/internal/modules/session/port/in"
	sessionport "lector/internal/modules/session/port/out"
	"lector/internal/modules/session/service"
	"lector/internal/modules/session/usecase"
	"lector/internal/platform/clock"
	apperrors "lector/internal/platform/errors"
	"lector/internal/platform/id"
)

type fakeLibrary struct {
	title         string
	lastPage      int
	lastDocID     string
	lastSessionID string
	updateHits    int
}

func (f *fakeLibrary) AddDocument(context.Context, librarydto.AddDocumentInput) (librarydto.DocumentOutput, error) {
	return librarydto.DocumentOutput{}, nil
}

func (f *fakeLibrary) UpdateProgress(_ context.Context, input librarydto.UpdateProgressInput) (librarydto.DocumentOutput, error) {
	f.updateHits++
	f.lastDocID = input.DocumentID
	f.lastPage = input.Page
	f.lastSessionID = input.SessionID
	return librarydto.DocumentOutput{ID: input.DocumentID, Page: input.Page}, nil
}

func (f *fakeLibrary) ListDocuments(context.Context) ([]librarydto.DocumentOutput, error) {
	return nil, nil
}

func (f *fakeLibrary) GetDocument(context.Context, string) (librarydto.DocumentDetailOutput, error) {
	return librarydto.DocumentDetailOutput{ID: "doc-1", Title: f.title}, nil
}

func (f *fakeLibrary) Reindex(context.Context, librarydto.ReindexInput) error {
	return nil
}

func newSessionFixture(t *testing.T) (*fakeLibrary, sessionin.Usecase) {
	t.Helper()
	library := t.TempDir()
	stateStore := sessionout.NewFileStateStore(filepath.Join(library, ".lector", "state"))
	svc := service.NewSessionService(clock.SystemClock{}, id.RandomHex{}, sessionout.NewSessionLogStore(library), stateStore)
	fl := &fakeLibrary{title: "Dune"}
	return fl, usecase.NewInteractor(svc, fl, sessionout.NewFileActiveSessionStore(library))
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	fl, uc := newSessionFixture(t)
	ctx := context.Background()

	if _, err := uc.GetActive(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected no active session, got %v", err)
	}

	started, err := uc.Start(ctx, dto.StartInput{DocumentID: "doc-1", Goal: "finish chapter 3"})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if started.StartPage != 1 {
		t.Fatalf("fresh document should start at page 1, got %d", started.StartPage)
	}

	if _, err := uc.Start(ctx, dto.StartInput{DocumentID: "doc-1"}); !errors.Is(err, apperrors.ErrActiveSessionExists) {
		t.Fatalf("second start should be rejected, got %v", err)
	}

	active, err := uc.GetActive(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.DocumentTitle != "Dune" {
		t.Fatalf("title should be resolved from the library, got %q", active.DocumentTitle)
	}

	if _, err := uc.SetPosition(ctx, dto.SetPositionInput{DocumentID: "doc-1", Page: 42}); err != nil {
		t.Fatalf("set position: %v", err)
	}

	ended, err := uc.End(ctx, dto.EndInput{Outcome: "read three chapters"})
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if ended.StartPage != 1 || ended.EndPage != 42 || ended.PagesRead != 41 {
		t.Fatalf("unexpected page accounting: %+v", ended)
	}
	if fl.lastPage != 42 || fl.updateHits != 1 {
		t.Fatalf("library progress was not synced: %+v", fl)
	}
	if fl.lastSessionID != ended.SessionID {
		t.Fatalf("catalog should record session %s, got %q", ended.SessionID, fl.lastSessionID)
	}

	content, err := os.ReadFile(ended.Path)
	if err != nil {
		t.Fatalf("read session note: %v", err)
	}
	if !strings.Contains(string(content), "read three chapters") {
		t.Fatalf("session note missing outcome: %s", content)
	}

	if _, err := uc.GetActive(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("active session should be cleared, got %v", err)
	}
}

func TestStatePersistsAcrossLoads(t *testing.T) {
	t.Parallel()
	_, uc := newSessionFixture(t)
	ctx := context.Background()

	state, err := uc.GetState(ctx, "doc-9")
	if err != nil {
		t.Fatalf("get default state: %v", err)
	}
	if state.Page != 1 || state.Zoom != 100 || state.ZoomMode != "custom" {
		t.Fatalf("unexpected defaults: %+v", state)
	}

	if _, err := uc.SetZoom(ctx, dto.SetZoomInput{DocumentID: "doc-9", Step: 1}); err != nil {
		t.Fatalf("zoom in: %v", err)
	}
	if _, err := uc.SetZoom(ctx, dto.SetZoomInput{DocumentID: "doc-9", Mode: "fit-width"}); err != nil {
		t.Fatalf("set fit-width: %v", err)
	}
	if _, err := uc.SetPosition(ctx, dto.SetPositionInput{DocumentID: "doc-9", Page: 7}); err != nil {
		t.Fatalf("set position: %v", err)
	}

	state, err = uc.GetState(ctx, "doc-9")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Page != 7 || state.Zoom != 110 || state.ZoomMode != "fit-width" {
		t.Fatalf("state did not persist: %+v", state)
	}

	state, err = uc.SetZoom(ctx, dto.SetZoomInput{DocumentID: "doc-9", Preset: 200})
	if err != nil {
		t.Fatalf("apply preset: %v", err)
	}
	if state.Zoom != 200 || state.ZoomMode != "custom" {
		t.Fatalf("preset should land on 200%% custom, got %+v", state)
	}
	if _, err := uc.SetZoom(ctx, dto.SetZoomInput{DocumentID: "doc-9", Preset: 33}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unlisted preset should fail with invalid input, got %v", err)
	}

	if _, err := uc.SetZoom(ctx, dto.SetZoomInput{DocumentID: "doc-9"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty zoom change should fail with invalid input, got %v", err)
	}
}

// wrappingActiveStore decorates every error with context, the way adapters
// that annotate their failures do.
type wrappingActiveStore struct {
	inner sessionport.ActiveSessionStore
}

func (s wrappingActiveStore) SaveActive(ctx context.Context, active domain.ActiveSession) error {
	return s.inner.SaveActive(ctx, active)
}

func (s wrappingActiveStore) LoadActive(ctx context.Context) (domain.ActiveSession, error) {
	active, err := s.inner.LoadActive(ctx)
	if err != nil {
		return domain.ActiveSession{}, fmt.Errorf("read active marker: %w", err)
	}
	return active, nil
}

func (s wrappingActiveStore) ClearActive(ctx context.Context) error {
	return s.inner.ClearActive(ctx)
}

func TestStartAcceptsAnnotatedNoActiveError(t *testing.T) {
	t.Parallel()
	library := t.TempDir()
	stateStore := sessionout.NewFileStateStore(filepath.Join(library, ".lector", "state"))
	svc := service.NewSessionService(clock.SystemClock{}, id.RandomHex{}, sessionout.NewSessionLogStore(library), stateStore)
	store := wrappingActiveStore{inner: sessionout.NewFileActiveSessionStore(library)}
	uc := usecase.NewInteractor(svc, &fakeLibrary{title: "Dune"}, store)

	if _, err := uc.Start(context.Background(), dto.StartInput{DocumentID: "doc-1"}); err != nil {
		t.Fatalf("start should treat a wrapped no-active-session error as a clean slate: %v", err)
	}
}
