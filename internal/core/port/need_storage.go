package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// NeedStoragePort - контракт хранилища потребностей покупателей.
type NeedStoragePort interface {
	List(ctx context.Context) ([]domain.Need, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Need, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Need, error)
	ListByRealtor(ctx context.Context, realtorID uuid.UUID) ([]domain.Need, error)
	Create(ctx context.Context, need domain.Need) error
	Delete(ctx context.Context, id uuid.UUID) error
}
