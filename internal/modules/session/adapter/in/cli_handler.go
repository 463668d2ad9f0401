package in

import (
	"context"

	sessiondto "lector/internal/modules/session/dto"
	sessionin "lector/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, documentID, documentTitle, goal string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{DocumentID: documentID, DocumentTitle: documentTitle, Goal: goal})
}

func (h CLIHandler) End(ctx context.Context, sessionID, outcome string) (sessiondto.EndOutput, error) {
	return h.usecase.End(ctx, sessiondto.EndInput{SessionID: sessionID, Outcome: outcome})
}

func (h CLIHandler) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) GetState(ctx context.Context, documentID string) (sessiondto.StateOutput, error) {
	return h.usecase.GetState(ctx, documentID)
}

func (h CLIHandler) SetPosition(ctx context.Context, documentID string, page int) (sessiondto.StateOutput, error) {
	return h.usecase.SetPosition(ctx, sessiondto.SetPositionInput{DocumentID: documentID, Page: page})
}

func (h CLIHandler) SetZoom(ctx context.Context, documentID string, zoom int, mode string, step, preset int) (sessiondto.StateOutput, error) {
	return h.usecase.SetZoom(ctx, sessiondto.SetZoomInput{DocumentID: documentID, Zoom: zoom, Mode: mode, Step: step, Preset: preset})
}
