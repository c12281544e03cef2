package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type ListClientsUseCase interface {
	Execute(ctx context.Context, nameQuery string) ([]domain.Client, error)
}
