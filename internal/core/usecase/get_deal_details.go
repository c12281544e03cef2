package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type GetDealDetailsUseCase struct {
	deals      port.DealStoragePort
	needs      port.NeedStoragePort
	offers     port.OfferStoragePort
	properties port.PropertyStoragePort
	realtors   port.RealtorStoragePort
	clients    port.ClientStoragePort
}

func NewGetDealDetailsUseCase(deals port.DealStoragePort, needs port.NeedStoragePort,
	offers port.OfferStoragePort, properties port.PropertyStoragePort,
	realtors port.RealtorStoragePort, clients port.ClientStoragePort) *GetDealDetailsUseCase {
	return &GetDealDetailsUseCase{
		deals: deals, needs: needs, offers: offers,
		properties: properties, realtors: realtors, clients: clients,
	}
}

// Execute собирает полную картину сделки: обе стороны, объект
// и финансовую разбивку. Любая не разрешившаяся ссылка дает nil
// в соответствующем поле; комиссии считаются только когда
// присутствуют объект и оба риэлтора.
func (uc *GetDealDetailsUseCase) Execute(ctx context.Context, dealID uuid.UUID) (*domain.DealDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDealDetails",
		"deal_id":  dealID.String(),
	})

	deal, err := uc.deals.GetByID(ctx, dealID)
	if err != nil {
		ucLogger.Warn("Deal lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	view := &domain.DealDetailsView{Deal: *deal}

	view.Need, err = orNil(uc.needs.GetByID(ctx, deal.NeedID))
	if err != nil {
		return nil, err
	}
	view.Offer, err = orNil(uc.offers.GetByID(ctx, deal.OfferID))
	if err != nil {
		return nil, err
	}

	if view.Offer != nil {
		view.Property, err = orNil(uc.properties.GetByID(ctx, view.Offer.PropertyID))
		if err != nil {
			return nil, err
		}
		view.SellerClient, err = orNil(uc.clients.GetByID(ctx, view.Offer.ClientID))
		if err != nil {
			return nil, err
		}
		view.SellerRealtor, err = orNil(uc.realtors.GetByID(ctx, view.Offer.RealtorID))
		if err != nil {
			return nil, err
		}
	}
	if view.Need != nil {
		view.BuyerClient, err = orNil(uc.clients.GetByID(ctx, view.Need.ClientID))
		if err != nil {
			return nil, err
		}
		view.BuyerRealtor, err = orNil(uc.realtors.GetByID(ctx, view.Need.RealtorID))
		if err != nil {
			return nil, err
		}
	}

	if view.Offer != nil && view.Property != nil && view.SellerRealtor != nil && view.BuyerRealtor != nil {
		commissions := domain.CalculateDealCommissions(*view.Offer, *view.Property, *view.SellerRealtor, *view.BuyerRealtor)
		view.Commissions = &commissions
	}

	return view, nil
}
