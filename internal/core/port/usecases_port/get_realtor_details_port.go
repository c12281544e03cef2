package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetRealtorDetailsUseCase interface {
	Execute(ctx context.Context, realtorID uuid.UUID) (*domain.RealtorDetailsView, error)
}
