package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, params domain.CreatePropertyParams) (*domain.PropertyCreated, error)
}
