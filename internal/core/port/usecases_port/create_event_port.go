package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type CreateEventUseCase interface {
	Execute(ctx context.Context, params domain.CreateEventParams) (*domain.Event, error)
}
