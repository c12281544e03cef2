package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetDealDetailsUseCase interface {
	Execute(ctx context.Context, dealID uuid.UUID) (*domain.DealDetailsView, error)
}
