package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// OfferStorageAdapter реализует port.OfferStoragePort поверх Store.
type OfferStorageAdapter struct {
	store *Store
}

func NewOfferStorageAdapter(store *Store) *OfferStorageAdapter {
	return &OfferStorageAdapter{store: store}
}

func (a *OfferStorageAdapter) List(ctx context.Context) ([]domain.Offer, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Offer, len(a.store.offers))
	copy(out, a.store.offers)
	return out, nil
}

func (a *OfferStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, o := range a.store.offers {
		if o.ID == id {
			offer := o
			return &offer, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (a *OfferStorageAdapter) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Offer, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var out []domain.Offer
	for _, o := range a.store.offers {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (a *OfferStorageAdapter) ListByRealtor(ctx context.Context, realtorID uuid.UUID) ([]domain.Offer, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var out []domain.Offer
	for _, o := range a.store.offers {
		if o.RealtorID == realtorID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (a *OfferStorageAdapter) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Offer, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var out []domain.Offer
	for _, o := range a.store.offers {
		if o.PropertyID == propertyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (a *OfferStorageAdapter) Create(ctx context.Context, offer domain.Offer) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	a.store.offers = append(a.store.offers, offer)
	return nil
}

func (a *OfferStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for i, o := range a.store.offers {
		if o.ID == id {
			a.store.offers = append(a.store.offers[:i], a.store.offers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
