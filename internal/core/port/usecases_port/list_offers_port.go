package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type ListOffersUseCase interface {
	Execute(ctx context.Context, status *domain.OfferStatus) ([]domain.OfferListItem, error)
}
