package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type CreateRealtorUseCase interface {
	Execute(ctx context.Context, params domain.CreateRealtorParams) (*domain.Realtor, error)
}
