package in

import (
	"context"

	"lector/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.EndOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)
	GetState(ctx context.Context, documentID string) (dto.StateOutput, error)
	SetPosition(ctx context.Context, input dto.SetPositionInput) (dto.StateOutput, error)
	SetZoom(ctx context.Context, input dto.SetZoomInput) (dto.StateOutput, error)
}
