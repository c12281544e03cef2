package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type GetDashboardStatsUseCase struct {
	clients    port.ClientStoragePort
	realtors   port.RealtorStoragePort
	properties port.PropertyStoragePort
	offers     port.OfferStoragePort
	needs      port.NeedStoragePort
	deals      port.DealStoragePort
}

func NewGetDashboardStatsUseCase(clients port.ClientStoragePort, realtors port.RealtorStoragePort,
	properties port.PropertyStoragePort, offers port.OfferStoragePort,
	needs port.NeedStoragePort, deals port.DealStoragePort) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		clients: clients, realtors: realtors, properties: properties,
		offers: offers, needs: needs, deals: deals,
	}
}

// Execute считает показатели для главного экрана. Объемы данных
// одного офиса позволяют обойтись линейным проходом.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*domain.DashboardStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetDashboardStats"})

	stats := &domain.DashboardStats{}

	allClients, err := uc.clients.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	stats.Clients = len(allClients)

	allRealtors, err := uc.realtors.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Realtors = len(allRealtors)

	allProperties, err := uc.properties.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Properties = len(allProperties)

	allOffers, err := uc.offers.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range allOffers {
		if o.Status == domain.OfferStatusActive {
			stats.ActiveOffers++
		}
	}

	allNeeds, err := uc.needs.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range allNeeds {
		if n.Status == domain.NeedStatusActive {
			stats.ActiveNeeds++
		}
	}

	allDeals, err := uc.deals.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Deals = len(allDeals)

	return stats, nil
}
