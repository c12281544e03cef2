package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// EventStorageAdapter реализует port.EventStoragePort поверх Store.
type EventStorageAdapter struct {
	store *Store
}

func NewEventStorageAdapter(store *Store) *EventStorageAdapter {
	return &EventStorageAdapter{store: store}
}

func (a *EventStorageAdapter) List(ctx context.Context) ([]domain.Event, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Event, len(a.store.events))
	copy(out, a.store.events)
	return out, nil
}

func (a *EventStorageAdapter) ListByRealtor(ctx context.Context, realtorID uuid.UUID) ([]domain.Event, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var out []domain.Event
	for _, e := range a.store.events {
		if e.RealtorID == realtorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (a *EventStorageAdapter) Create(ctx context.Context, event domain.Event) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.events = append(a.store.events, event)
	return nil
}
