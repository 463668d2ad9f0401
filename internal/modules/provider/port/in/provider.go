package in

import (
	"context"

	"lector/internal/modules/provider/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ProviderInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Lookup(ctx context.Context, input dto.LookupInput) (dto.LookupOutput, error)
}
