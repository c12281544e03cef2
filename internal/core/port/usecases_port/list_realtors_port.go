package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type ListRealtorsUseCase interface {
	Execute(ctx context.Context, nameQuery string) ([]domain.Realtor, error)
}
