package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type GetOfferDetailsUseCase struct {
	offers     port.OfferStoragePort
	clients    port.ClientStoragePort
	realtors   port.RealtorStoragePort
	properties port.PropertyStoragePort
	needs      port.NeedStoragePort
	deals      port.DealStoragePort
}

func NewGetOfferDetailsUseCase(offers port.OfferStoragePort, clients port.ClientStoragePort,
	realtors port.RealtorStoragePort, properties port.PropertyStoragePort,
	needs port.NeedStoragePort, deals port.DealStoragePort) *GetOfferDetailsUseCase {
	return &GetOfferDetailsUseCase{
		offers: offers, clients: clients, realtors: realtors,
		properties: properties, needs: needs, deals: deals,
	}
}

// Execute собирает карточку предложения: связи, список активных
// потребностей, которым оно подходит, и признак возможности удаления
// (предложение, связанное со сделкой, не удаляется).
func (uc *GetOfferDetailsUseCase) Execute(ctx context.Context, offerID uuid.UUID) (*domain.OfferDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetOfferDetails",
		"offer_id": offerID.String(),
	})

	offer, err := uc.offers.GetByID(ctx, offerID)
	if err != nil {
		ucLogger.Warn("Offer lookup failed", port.Fields{"error": err.Error()})
		return nil, err
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

	// Без объекта подбор невозможен: матчеру нужны его характеристики.
	var matching []domain.Need
	if property != nil {
		allNeeds, err := uc.needs.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, need := range allNeeds {
			if need.Status != domain.NeedStatusActive {
				continue
			}
			if domain.OfferMatchesNeed(*offer, need, *property) {
				matching = append(matching, need)
			}
		}
	}

	usedOffers, err := uc.deals.UsedOfferIDs(ctx)
	if err != nil {
		return nil, err
	}
	_, inDeal := usedOffers[offer.ID]

	return &domain.OfferDetailsView{
		Offer:         *offer,
		Client:        client,
		Realtor:       realtor,
		Property:      property,
		MatchingNeeds: matching,
		Deletable:     !inDeal,
	}, nil
}
