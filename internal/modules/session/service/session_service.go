package service

import (
	"context"
	"errors"
	"fmt"

	"lector/internal/modules/session/domain"
	sessionout "lector/internal/modules/session/port/out"
	"lector/internal/platform/clock"
	apperrors "lector/internal/platform/errors"
	"lector/internal/platform/id"
)

type SessionService struct {
	clock      clock.Clock
	idGen      id.Generator
	store      sessionout.SessionStore
	stateStore sessionout.StateStore
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore, stateStore sessionout.StateStore) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, store: store, stateStore: stateStore}
}

func (s *SessionService) Start(ctx context.Context, documentID, documentTitle, goal string) (domain.ActiveSession, error) {
	if documentID == "" {
		return domain.ActiveSession{}, fmt.Errorf("document id is required")
	}
	state, err := s.State(ctx, documentID)
	if err != nil {
		return domain.ActiveSession{}, err
	}
	return domain.ActiveSession{
		SessionID:     s.idGen.New(),
		DocumentID:    documentID,
		DocumentTitle: documentTitle,
		StartedAt:     s.clock.Now(),
		StartPage:     state.Page,
		Goal:          goal,
	}, nil
}

func (s *SessionService) End(ctx context.Context, active domain.ActiveSession, outcome string) (domain.Session, string, error) {
	state, err := s.State(ctx, active.DocumentID)
	if err != nil {
		return domain.Session{}, "", err
	}
	endedAt := s.clock.Now()
	duration := int(endedAt.Sub(active.StartedAt).Minutes())
	if duration < 0 {
		duration = 0
	}
	pagesRead := state.Page - active.StartPage
	if pagesRead < 0 {
		pagesRead = 0
	}
	session := domain.Session{
		ID:            active.SessionID,
		DocumentID:    active.DocumentID,
		DocumentTitle: active.DocumentTitle,
		StartedAt:     active.StartedAt,
		EndedAt:       endedAt,
		DurationMin:   duration,
		Goal:          active.Goal,
		Outcome:       outcome,
		StartPage:     active.StartPage,
		EndPage:       state.Page,
		PagesRead:     pagesRead,
	}
	path, err := s.store.Save(ctx, session)
	if err != nil {
		return domain.Session{}, "", err
	}
	return session, path, nil
}

// State loads the persisted reading state, falling back to defaults when the
// document has never been opened.
func (s *SessionService) State(ctx context.Context, documentID string) (domain.ReadingState, error) {
	if documentID == "" {
		return domain.ReadingState{}, fmt.Errorf("document id is required")
	}
	state, err := s.stateStore.Load(ctx, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewReadingState(documentID), nil
		}
		return domain.ReadingState{}, err
	}
	return state, nil
}

func (s *SessionService) SetPosition(ctx context.Context, documentID string, page int) (domain.ReadingState, error) {
	state, err := s.State(ctx, documentID)
	if err != nil {
		return domain.ReadingState{}, err
	}
	state.SetPage(page)
	state.UpdatedAt = s.clock.Now()
	if err := s.stateStore.Save(ctx, state); err != nil {
		return domain.ReadingState{}, err
	}
	return state, nil
}

// SetZoom applies one zoom change: a step in either direction, a mode
// switch, a preset, or an explicit percentage, in that order of precedence.
func (s *SessionService) SetZoom(ctx context.Context, documentID string, zoom int, mode string, step, preset int) (domain.ReadingState, error) {
	state, err := s.State(ctx, documentID)
	if err != nil {
		return domain.ReadingState{}, err
	}
	switch {
	case step > 0:
		state.ZoomIn()
	case step < 0:
		state.ZoomOut()
	case mode != "":
		if err := state.SetZoomMode(domain.ZoomMode(mode)); err != nil {
			return domain.ReadingState{}, err
		}
	case preset != 0:
		if err := state.ApplyPreset(preset); err != nil {
			return domain.ReadingState{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	case zoom != 0:
		state.SetZoom(zoom)
	default:
		return domain.ReadingState{}, fmt.Errorf("%w: no zoom change requested", apperrors.ErrInvalidInput)
	}
	state.UpdatedAt = s.clock.Now()
	if err := s.stateStore.Save(ctx, state); err != nil {
		return domain.ReadingState{}, err
	}
	return state, nil
}
