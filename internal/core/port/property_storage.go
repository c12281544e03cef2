package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyStoragePort - контракт хранилища объектов недвижимости.
type PropertyStoragePort interface {
	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Create(ctx context.Context, property domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindSimilar ищет уже сохраненный объект с тем же ключом дедупликации
	// (геохэш координат + тип + ключевые характеристики).
	// Возвращает nil, если похожих объектов нет.
	FindSimilar(ctx context.Context, property domain.Property) (*uuid.UUID, error)
}
