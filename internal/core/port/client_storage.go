package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// ClientStoragePort - контракт хранилища клиентов.
// Если клиент не найден, GetByID возвращает domain.ErrNotFound.
type ClientStoragePort interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Create(ctx context.Context, client domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
