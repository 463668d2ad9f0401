package usecase

import (
	"context"
	"errors"
	"fmt"

	"lector/internal/modules/library/dto"
	libraryin "lector/internal/modules/library/port/in"
	"lector/internal/modules/session/domain"
	sessiondto "lector/internal/modules/session/dto"
	sessionin "lector/internal/modules/session/port/in"
	sessionout "lector/internal/modules/session/port/out"
	"lector/internal/modules/session/service"
	apperrors "lector/internal/platform/errors"
)

type Interactor struct {
	svc         *service.SessionService
	library     libraryin.Usecase
	activeStore sessionout.ActiveSessionStore
}

func NewInteractor(svc *service.SessionService, library libraryin.Usecase, activeStore sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, library: library, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	if i.activeStore != nil {
		_, err := i.activeStore.LoadActive(ctx)
		if err == nil {
			return sessiondto.StartOutput{}, apperrors.ErrActiveSessionExists
		}
		if err != nil && !errors.Is(err, apperrors.ErrNoActiveSession) {
			return sessiondto.StartOutput{}, err
		}
	}

	documentTitle := input.DocumentTitle
	if documentTitle == "" && i.library != nil {
		document, err := i.library.GetDocument(ctx, input.DocumentID)
		if err != nil {
			return sessiondto.StartOutput{}, err
		}
		documentTitle = document.Title
	}

	active, err := i.svc.Start(ctx, input.DocumentID, documentTitle, input.Goal)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	if i.activeStore != nil {
		if err := i.activeStore.SaveActive(ctx, active); err != nil {
			return sessiondto.StartOutput{}, err
		}
	}
	return sessiondto.StartOutput{
		SessionID:  active.SessionID,
		DocumentID: active.DocumentID,
		StartedAt:  active.StartedAt,
		StartPage:  active.StartPage,
	}, nil
}

func (i *Interactor) End(ctx context.Context, input sessiondto.EndInput) (sessiondto.EndOutput, error) {
	if i.activeStore == nil {
		return sessiondto.EndOutput{}, apperrors.ErrNoActiveSession
	}
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	if input.SessionID != "" && input.SessionID != active.SessionID {
		return sessiondto.EndOutput{}, fmt.Errorf("session id mismatch")
	}

	session, path, err := i.svc.End(ctx, active, input.Outcome)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	if i.library != nil {
		if _, err := i.library.UpdateProgress(ctx, dto.UpdateProgressInput{DocumentID: active.DocumentID, Page: session.EndPage, SessionID: session.ID}); err != nil {
			return sessiondto.EndOutput{}, err
		}
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.EndOutput{}, err
	}

	return sessiondto.EndOutput{
		SessionID:   session.ID,
		DocumentID:  session.DocumentID,
		Path:        path,
		DurationMin: session.DurationMin,
		StartPage:   session.StartPage,
		EndPage:     session.EndPage,
		PagesRead:   session.PagesRead,
	}, nil
}

func (i *Interactor) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	if i.activeStore == nil {
		return sessiondto.ActiveSessionOutput{}, apperrors.ErrNoActiveSession
	}
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.ActiveSessionOutput{}, err
	}
	return sessiondto.ActiveSessionOutput{
		SessionID:     active.SessionID,
		DocumentID:    active.DocumentID,
		DocumentTitle: active.DocumentTitle,
		StartedAt:     active.StartedAt,
		StartPage:     active.StartPage,
		Goal:          active.Goal,
	}, nil
}

func (i *Interactor) GetState(ctx context.Context, documentID string) (sessiondto.StateOutput, error) {
	state, err := i.svc.State(ctx, documentID)
	if err != nil {
		return sessiondto.StateOutput{}, err
	}
	return toStateOutput(state), nil
}

func (i *Interactor) SetPosition(ctx context.Context, input sessiondto.SetPositionInput) (sessiondto.StateOutput, error) {
	state, err := i.svc.SetPosition(ctx, input.DocumentID, input.Page)
	if err != nil {
		return sessiondto.StateOutput{}, err
	}
	return toStateOutput(state), nil
}

func (i *Interactor) SetZoom(ctx context.Context, input sessiondto.SetZoomInput) (sessiondto.StateOutput, error) {
	state, err := i.svc.SetZoom(ctx, input.DocumentID, input.Zoom, input.Mode, input.Step, input.Preset)
	if err != nil {
		return sessiondto.StateOutput{}, err
	}
	return toStateOutput(state), nil
}

func toStateOutput(state domain.ReadingState) sessiondto.StateOutput {
	return sessiondto.StateOutput{
		DocumentID: state.DocumentID,
		Page:       state.Page,
		Zoom:       state.Zoom,
		ZoomMode:   string(state.ZoomMode),
	}
}
