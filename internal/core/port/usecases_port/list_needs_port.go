package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type ListNeedsUseCase interface {
	Execute(ctx context.Context, status *domain.NeedStatus) ([]domain.NeedListItem, error)
}
