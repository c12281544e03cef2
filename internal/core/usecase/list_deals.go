package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListDealsUseCase struct {
	deals      port.DealStoragePort
	needs      port.NeedStoragePort
	offers     port.OfferStoragePort
	properties port.PropertyStoragePort
	realtors   port.RealtorStoragePort
}

func NewListDealsUseCase(deals port.DealStoragePort, needs port.NeedStoragePort,
	offers port.OfferStoragePort, properties port.PropertyStoragePort,
	realtors port.RealtorStoragePort) *ListDealsUseCase {
	return &ListDealsUseCase{deals: deals, needs: needs, offers: offers, properties: properties, realtors: realtors}
}

// Execute возвращает сделки со связями и рассчитанными комиссиями.
// Если объект или кто-то из риэлторов не разрешился - комиссии
// не считаются и в элементе остается nil.
func (uc *ListDealsUseCase) Execute(ctx context.Context) ([]domain.DealListItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListDeals"})

	all, err := uc.deals.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	items := make([]domain.DealListItem, 0, len(all))
	for _, deal := range all {
		need, err := orNil(uc.needs.GetByID(ctx, deal.NeedID))
		if err != nil {
			return nil, err
		}
		offer, err := orNil(uc.offers.GetByID(ctx, deal.OfferID))
		if err != nil {
			return nil, err
		}

		item := domain.DealListItem{Deal: deal, Need: need, Offer: offer}

		if need != nil && offer != nil {
			commissions, err := uc.resolveCommissions(ctx, *offer, *need)
			if err != nil {
				return nil, err
			}
			item.Commissions = commissions
		}

		items = append(items, item)
	}

	return items, nil
}

// resolveCommissions разрешает объект и обоих риэлторов и считает
// комиссии. nil без ошибки означает "рассчитать невозможно".
func (uc *ListDealsUseCase) resolveCommissions(ctx context.Context, offer domain.Offer, need domain.Need) (*domain.DealCommissions, error) {
	property, err := orNil(uc.properties.GetByID(ctx, offer.PropertyID))
	if err != nil {
		return nil, err
	}
	sellerRealtor, err := orNil(uc.realtors.GetByID(ctx, offer.RealtorID))
	if err != nil {
		return nil, err
	}
	buyerRealtor, err := orNil(uc.realtors.GetByID(ctx, need.RealtorID))
	if err != nil {
		return nil, err
	}
	if property == nil || sellerRealtor == nil || buyerRealtor == nil {
		return nil, nil
	}

	commissions := domain.CalculateDealCommissions(offer, *property, *sellerRealtor, *buyerRealtor)
	return &commissions, nil
}
