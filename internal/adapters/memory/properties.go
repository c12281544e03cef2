package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyStorageAdapter реализует port.PropertyStoragePort поверх Store.
type PropertyStorageAdapter struct {
	store *Store
}

func NewPropertyStorageAdapter(store *Store) *PropertyStorageAdapter {
	return &PropertyStorageAdapter{store: store}
}

func (a *PropertyStorageAdapter) List(ctx context.Context) ([]domain.Property, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Property, len(a.store.properties))
	copy(out, a.store.properties)
	return out, nil
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, p := range a.store.properties {
		if p.ID == id {
			property := p
			return &property, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (a *PropertyStorageAdapter) Create(ctx context.Context, property domain.Property) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.properties = append(a.store.properties, property)
	return nil
}

func (a *PropertyStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i, p := range a.store.properties {
		if p.ID == id {
			a.store.properties = append(a.store.properties[:i], a.store.properties[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// FindSimilar ищет объект с тем же ключом дедупликации.
// Без координат стабильный ключ не построить - считаем, что похожих нет.
func (a *PropertyStorageAdapter) FindSimilar(ctx context.Context, property domain.Property) (*uuid.UUID, error) {
	key, ok := buildDedupKey(property)
	if !ok {
		return nil, nil
	}

	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, p := range a.store.properties {
		if p.ID == property.ID {
			continue
		}
		existingKey, ok := buildDedupKey(p)
		if ok && existingKey == key {
			id := p.ID
			return &id, nil
		}
	}
	return nil, nil
}
