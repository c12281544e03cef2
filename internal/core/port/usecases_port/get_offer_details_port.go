package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetOfferDetailsUseCase interface {
	Execute(ctx context.Context, offerID uuid.UUID) (*domain.OfferDetailsView, error)
}
