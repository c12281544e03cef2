package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type GetNeedDetailsUseCase struct {
	needs      port.NeedStoragePort
	offers     port.OfferStoragePort
	clients    port.ClientStoragePort
	realtors   port.RealtorStoragePort
	properties port.PropertyStoragePort
	deals      port.DealStoragePort
}

func NewGetNeedDetailsUseCase(needs port.NeedStoragePort, offers port.OfferStoragePort,
	clients port.ClientStoragePort, realtors port.RealtorStoragePort,
	properties port.PropertyStoragePort, deals port.DealStoragePort) *GetNeedDetailsUseCase {
	return &GetNeedDetailsUseCase{
		needs: needs, offers: offers, clients: clients,
		realtors: realtors, properties: properties, deals: deals,
	}
}

// Execute собирает карточку потребности: связи и подбор - активные
// предложения, удовлетворяющие потребности. Предложение без
// разрешившегося объекта в подбор не попадает.
func (uc *GetNeedDetailsUseCase) Execute(ctx context.Context, needID uuid.UUID) (*domain.NeedDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetNeedDetails",
		"need_id":  needID.String(),
	})

	need, err := uc.needs.GetByID(ctx, needID)
	if err != nil {
		ucLogger.Warn("Need lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	client, err := orNil(uc.clients.GetByID(ctx, need.ClientID))
	if err != nil {
		return nil, err
	}
	realtor, err := orNil(uc.realtors.GetByID(ctx, need.RealtorID))
	if err != nil {
		return nil, err
	}

	allOffers, err := uc.offers.List(ctx)
	if err != nil {
		return nil, err
	}

	var matching []domain.OfferListItem
	for _, offer := range allOffers {
		if offer.Status != domain.OfferStatusActive {
			continue
		}
		property, err := orNil(uc.properties.GetByID(ctx, offer.PropertyID))
		if err != nil {
			return nil, err
		}
		if property == nil || !domain.OfferMatchesNeed(offer, *need, *property) {
			continue
		}

		offerClient, err := orNil(uc.clients.GetByID(ctx, offer.ClientID))
		if err != nil {
			return nil, err
		}
		offerRealtor, err := orNil(uc.realtors.GetByID(ctx, offer.RealtorID))
		if err != nil {
			return nil, err
		}
		matching = append(matching, domain.OfferListItem{
			Offer:    offer,
			Client:   offerClient,
			Realtor:  offerRealtor,
			Property: property,
		})
	}

	usedNeeds, err := uc.deals.UsedNeedIDs(ctx)
	if err != nil {
		return nil, err
	}
	_, inDeal := usedNeeds[need.ID]

	ucLogger.Debug("Matching finished", port.Fields{"matching_offers": len(matching)})

	return &domain.NeedDetailsView{
		Need:           *need,
		Client:         client,
		Realtor:        realtor,
		MatchingOffers: matching,
		Deletable:      !inDeal,
	}, nil
}
