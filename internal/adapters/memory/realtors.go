package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// RealtorStorageAdapter реализует port.RealtorStoragePort поверх Store.
type RealtorStorageAdapter struct {
	store *Store
}

func NewRealtorStorageAdapter(store *Store) *RealtorStorageAdapter {
	return &RealtorStorageAdapter{store: store}
}

func (a *RealtorStorageAdapter) List(ctx context.Context) ([]domain.Realtor, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Realtor, len(a.store.realtors))
	copy(out, a.store.realtors)
	return out, nil
}

func (a *RealtorStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Realtor, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, r := range a.store.realtors {
		if r.ID == id {
			realtor := r
			return &realtor, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (a *RealtorStorageAdapter) Create(ctx context.Context, realtor domain.Realtor) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.realtors = append(a.store.realtors, realtor)
	return nil
}

func (a *RealtorStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i, r := range a.store.realtors {
		if r.ID == id {
			a.store.realtors = append(a.store.realtors[:i], a.store.realtors[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
