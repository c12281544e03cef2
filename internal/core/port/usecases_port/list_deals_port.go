package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type ListDealsUseCase interface {
	Execute(ctx context.Context) ([]domain.DealListItem, error)
}
