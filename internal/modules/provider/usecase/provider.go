package usecase

import (
	"context"

	"lector/internal/modules/provider/dto"
	providerin "lector/internal/modules/provider/port/in"
	"lector/internal/modules/provider/service"
)

type Interactor struct {
	svc *service.ProviderService
}

func NewInteractor(svc *service.ProviderService) providerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.ProviderInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Lookup(ctx context.Context, input dto.LookupInput) (dto.LookupOutput, error) {
	return i.svc.Lookup(ctx, input)
}
