package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type DeletePropertyUseCase struct {
	properties port.PropertyStoragePort
	offers     port.OfferStoragePort
}

func NewDeletePropertyUseCase(properties port.PropertyStoragePort, offers port.OfferStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties, offers: offers}
}

// Execute удаляет объект, если на него не ссылаются предложения.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": propertyID.String(),
	})

	if _, err := uc.properties.GetByID(ctx, propertyID); err != nil {
		return err
	}

	propertyOffers, err := uc.offers.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if len(propertyOffers) > 0 {
		ucLogger.Warn("Property has dependent offers", port.Fields{"offers": len(propertyOffers)})
		return fmt.Errorf("%w: property is referenced by offers", domain.ErrHasDependents)
	}

	if err := uc.properties.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Property deleted", nil)
	return nil
}
