package in

import (
	"context"

	"lector/internal/modules/provider/dto"
	providerin "lector/internal/modules/provider/port/in"
)

type CLIHandler struct {
	usecase providerin.Usecase
}

func NewCLIHandler(usecase providerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ProviderInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) Lookup(ctx context.Context, input dto.LookupInput) (dto.LookupOutput, error) {
	return h.usecase.Lookup(ctx, input)
}
