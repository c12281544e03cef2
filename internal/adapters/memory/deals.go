package memory

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

// DealStorageAdapter реализует port.DealStoragePort поверх Store.
type DealStorageAdapter struct {
	store *Store
}

func NewDealStorageAdapter(store *Store) *DealStorageAdapter {
	return &DealStorageAdapter{store: store}
}

func (a *DealStorageAdapter) List(ctx context.Context) ([]domain.Deal, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	out := make([]domain.Deal, len(a.store.deals))
	copy(out, a.store.deals)
	return out, nil
}

func (a *DealStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	for _, d := range a.store.deals {
		if d.ID == id {
			deal := d
			return &deal, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create проверяет доступность пары и меняет статусы под одной блокировкой,
// чтобы два конкурентных запроса не заняли одно предложение дважды.
func (a *DealStorageAdapter) Create(ctx context.Context, deal domain.Deal) error {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	for _, d := range a.store.deals {
		if d.NeedID == deal.NeedID || d.OfferID == deal.OfferID {
			return domain.ErrNotAvailable
		}
	}

	offerIdx := -1
	for i, o := range a.store.offers {
		if o.ID == deal.OfferID {
			offerIdx = i
			break
		}
	}
	needIdx := -1
	for i, n := range a.store.needs {
		if n.ID == deal.NeedID {
			needIdx = i
			break
		}
	}
	if offerIdx < 0 || needIdx < 0 {
		return domain.ErrNotFound
	}
	if a.store.offers[offerIdx].Status != domain.OfferStatusActive ||
		a.store.needs[needIdx].Status != domain.NeedStatusActive {
		return domain.ErrNotAvailable
	}

	a.store.offers[offerIdx].Status = domain.OfferStatusInDeal
	a.store.needs[needIdx].Status = domain.NeedStatusSatisfied
	a.store.deals = append(a.store.deals, deal)
	return nil
}

func (a *DealStorageAdapter) UsedNeedIDs(ctx context.Context) (map[uuid.UUID]struct{}, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	used := make(map[uuid.UUID]struct{}, len(a.store.deals))
	for _, d := range a.store.deals {
		used[d.NeedID] = struct{}{}
	}
	return used, nil
}

func (a *DealStorageAdapter) UsedOfferIDs(ctx context.Context) (map[uuid.UUID]struct{}, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	used := make(map[uuid.UUID]struct{}, len(a.store.deals))
	for _, d := range a.store.deals {
		used[d.OfferID] = struct{}{}
	}
	return used, nil
}
