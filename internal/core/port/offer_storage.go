package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// OfferStoragePort - контракт хранилища предложений о продаже.
type OfferStoragePort interface {
	List(ctx context.Context) ([]domain.Offer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Offer, error)
	ListByRealtor(ctx context.Context, realtorID uuid.UUID) ([]domain.Offer, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Offer, error)
	Create(ctx context.Context, offer domain.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
