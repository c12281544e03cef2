package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListEventsUseCase interface {
	Execute(ctx context.Context, realtorID *uuid.UUID) ([]domain.Event, error)
}
