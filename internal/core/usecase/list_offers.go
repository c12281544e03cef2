package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListOffersUseCase struct {
	offers     port.OfferStoragePort
	clients    port.ClientStoragePort
	realtors   port.RealtorStoragePort
	properties port.PropertyStoragePort
}

func NewListOffersUseCase(offers port.OfferStoragePort, clients port.ClientStoragePort,
	realtors port.RealtorStoragePort, properties port.PropertyStoragePort) *ListOffersUseCase {
	return &ListOffersUseCase{offers: offers, clients: clients, realtors: realtors, properties: properties}
}

// Execute возвращает предложения с разрешенными связями,
// опционально отфильтрованные по статусу.
func (uc *ListOffersUseCase) Execute(ctx context.Context, status *domain.OfferStatus) ([]domain.OfferListItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListOffers"})

	all, err := uc.offers.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	items := make([]domain.OfferListItem, 0, len(all))
	for _, offer := range all {
		if status != nil && offer.Status != *status {
			continue
		}

		client, err := orNil(uc.clients.GetByID(ctx, offer.ClientID))
		if err != nil {
			return nil, err
		}
		realtor, err := orNil(uc.realtors.GetByID(ctx, offer.RealtorID))
		if err != nil {
			return nil, err
		}
		property, err := orNil(uc.properties.GetByID(ctx, offer.PropertyID))
		if err != nil {
			return nil, err
		}

		items = append(items, domain.OfferListItem{
			Offer:    offer,
			Client:   client,
			Realtor:  realtor,
			Property: property,
		})
	}

	return items, nil
}
