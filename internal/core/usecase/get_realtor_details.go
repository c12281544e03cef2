package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type GetRealtorDetailsUseCase struct {
	realtors port.RealtorStoragePort
	offers   port.OfferStoragePort
	needs    port.NeedStoragePort
	events   port.EventStoragePort
}

func NewGetRealtorDetailsUseCase(realtors port.RealtorStoragePort, offers port.OfferStoragePort,
	needs port.NeedStoragePort, events port.EventStoragePort) *GetRealtorDetailsUseCase {
	return &GetRealtorDetailsUseCase{realtors: realtors, offers: offers, needs: needs, events: events}
}

// Execute собирает карточку риэлтора: его предложения, потребности,
// запланированные активности и признак возможности удаления.
func (uc *GetRealtorDetailsUseCase) Execute(ctx context.Context, realtorID uuid.UUID) (*domain.RealtorDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetRealtorDetails",
		"realtor_id": realtorID.String(),
	})

	realtor, err := uc.realtors.GetByID(ctx, realtorID)
	if err != nil {
		ucLogger.Warn("Realtor lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	realtorOffers, err := uc.offers.ListByRealtor(ctx, realtorID)
	if err != nil {
		return nil, err
	}
	realtorNeeds, err := uc.needs.ListByRealtor(ctx, realtorID)
	if err != nil {
		return nil, err
	}
	realtorEvents, err := uc.events.ListByRealtor(ctx, realtorID)
	if err != nil {
		return nil, err
	}

	return &domain.RealtorDetailsView{
		Realtor:   *realtor,
		Offers:    realtorOffers,
		Needs:     realtorNeeds,
		Events:    realtorEvents,
		Deletable: len(realtorOffers) == 0 && len(realtorNeeds) == 0 && len(realtorEvents) == 0,
	}, nil
}
