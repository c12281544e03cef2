package port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// DealStoragePort - контракт хранилища сделок.
type DealStoragePort interface {
	List(ctx context.Context) ([]domain.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)

	// Create атомарно создает сделку: проверяет, что потребность и предложение
	// активны и еще не участвуют в другой сделке, после чего переводит
	// предложение в статус in_deal, а потребность - в satisfied.
	// Если пара недоступна - возвращает domain.ErrNotAvailable.
	Create(ctx context.Context, deal domain.Deal) error

	// UsedNeedIDs / UsedOfferIDs - идентификаторы потребностей и предложений,
	// уже задействованных в существующих сделках.
	UsedNeedIDs(ctx context.Context) (map[uuid.UUID]struct{}, error)
	UsedOfferIDs(ctx context.Context) (map[uuid.UUID]struct{}, error)
}
