package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type CreateNeedUseCase interface {
	Execute(ctx context.Context, params domain.CreateNeedParams) (*domain.Need, error)
}
