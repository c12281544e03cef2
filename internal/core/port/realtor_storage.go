package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// RealtorStoragePort - контракт хранилища риэлторов.
type RealtorStoragePort interface {
	List(ctx context.Context) ([]domain.Realtor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Realtor, error)
	Create(ctx context.Context, realtor domain.Realtor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
