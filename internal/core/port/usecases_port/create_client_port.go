package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type CreateClientUseCase interface {
	Execute(ctx context.Context, params domain.CreateClientParams) (*domain.Client, error)
}
