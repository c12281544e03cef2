package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetClientDetailsUseCase interface {
	Execute(ctx context.Context, clientID uuid.UUID) (*domain.ClientDetailsView, error)
}
