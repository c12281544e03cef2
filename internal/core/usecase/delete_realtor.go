package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteRealtorUseCase struct {
	realtors port.RealtorStoragePort
	offers   port.OfferStoragePort
	needs    port.NeedStoragePort
	events   port.EventStoragePort
}

func NewDeleteRealtorUseCase(realtors port.RealtorStoragePort, offers port.OfferStoragePort,
	needs port.NeedStoragePort, events port.EventStoragePort) *DeleteRealtorUseCase {
	return &DeleteRealtorUseCase{realtors: realtors, offers: offers, needs: needs, events: events}
}

// Execute удаляет риэлтора, если за ним не числятся предложения,
// потребности или активности.
func (uc *DeleteRealtorUseCase) Execute(ctx context.Context, realtorID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteRealtor",
		"realtor_id": realtorID.String(),
	})

	if _, err := uc.realtors.GetByID(ctx, realtorID); err != nil {
		return err
	}

	realtorOffers, err := uc.offers.ListByRealtor(ctx, realtorID)
	if err != nil {
		return err
	}
	realtorNeeds, err := uc.needs.ListByRealtor(ctx, realtorID)
	if err != nil {
		return err
	}
	realtorEvents, err := uc.events.ListByRealtor(ctx, realtorID)
	if err != nil {
		return err
	}
	if len(realtorOffers) > 0 || len(realtorNeeds) > 0 || len(realtorEvents) > 0 {
		ucLogger.Warn("Realtor has dependent records", port.Fields{
			"offers": len(realtorOffers),
			"needs":  len(realtorNeeds),
			"events": len(realtorEvents),
		})
		return fmt.Errorf("%w: realtor has offers, needs or events", domain.ErrHasDependents)
	}

	if err := uc.realtors.Delete(ctx, realtorID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Realtor deleted", nil)
	return nil
}
