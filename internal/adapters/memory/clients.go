package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// ClientStorageAdapter реализует port.ClientStoragePort поверх Store.
type ClientStorageAdapter struct {
	store *Store
}

func NewClientStorageAdapter(store *Store) *ClientStorageAdapter {
	return &ClientStorageAdapter{store: store}
}

func (a *ClientStorageAdapter) List(ctx context.Context) ([]domain.Client, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Client, len(a.store.clients))
	copy(out, a.store.clients)
	return out, nil
}

func (a *ClientStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, c := range a.store.clients {
		if c.ID == id {
			client := c
			return &client, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (a *ClientStorageAdapter) Create(ctx context.Context, client domain.Client) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.clients = append(a.store.clients, client)
	return nil
}

func (a *ClientStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i, c := range a.store.clients {
		if c.ID == id {
			a.store.clients = append(a.store.clients[:i], a.store.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
