package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteOfferUseCase struct {
	offers port.OfferStoragePort
	deals  port.DealStoragePort
}

func NewDeleteOfferUseCase(offers port.OfferStoragePort, deals port.DealStoragePort) *DeleteOfferUseCase {
	return &DeleteOfferUseCase{offers: offers, deals: deals}
}

// Execute удаляет предложение. Предложение, связанное со сделкой,
// удалить нельзя.
func (uc *DeleteOfferUseCase) Execute(ctx context.Context, offerID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteOffer",
		"offer_id": offerID.String(),
	})

	if _, err := uc.offers.GetByID(ctx, offerID); err != nil {
		return err
	}

	usedOffers, err := uc.deals.UsedOfferIDs(ctx)
	if err != nil {
		return err
	}
	if _, inDeal := usedOffers[offerID]; inDeal {
		ucLogger.Warn("Offer is linked to a deal", nil)
		return fmt.Errorf("%w: offer is linked to a deal", domain.ErrHasDependents)
	}

	if err := uc.offers.Delete(ctx, offerID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Offer deleted", nil)
	return nil
}
