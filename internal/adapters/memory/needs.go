package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// NeedStorageAdapter реализует port.NeedStoragePort поверх Store.
type NeedStorageAdapter struct {
	store *Store
}

func NewNeedStorageAdapter(store *Store) *NeedStorageAdapter {
	return &NeedStorageAdapter{store: store}
}

func (a *NeedStorageAdapter) List(ctx context.Context) ([]domain.Need, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Need, len(a.store.needs))
	copy(out, a.store.needs)
	return out, nil
}

func (a *NeedStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Need, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, n := range a.store.needs {
		if n.ID == id {
			need := n
			return &need, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (a *NeedStorageAdapter) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Need, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var out []domain.Need
	for _, n := range a.store.needs {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (a *NeedStorageAdapter) ListByRealtor(ctx context.Context, realtorID uuid.UUID) ([]domain.Need, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var out []domain.Need
	for _, n := range a.store.needs {
		if n.RealtorID == realtorID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (a *NeedStorageAdapter) Create(ctx context.Context, need domain.Need) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.needs = append(a.store.needs, need)
	return nil
}

func (a *NeedStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i, n := range a.store.needs {
		if n.ID == id {
			a.store.needs = append(a.store.needs[:i], a.store.needs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
