package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// EventStoragePort - контракт хранилища активностей риэлторов.
type EventStoragePort interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListByRealtor(ctx context.Context, realtorID uuid.UUID) ([]domain.Event, error)
	Create(ctx context.Context, event domain.Event) error
}
