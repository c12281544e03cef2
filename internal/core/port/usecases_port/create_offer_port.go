package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type CreateOfferUseCase interface {
	Execute(ctx context.Context, params domain.CreateOfferParams) (*domain.Offer, error)
}
