package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
)

type GetPropertyDetailsUseCase struct {
	properties port.PropertyStoragePort
	offers     port.OfferStoragePort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyStoragePort, offers port.OfferStoragePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties, offers: offers}
}

// Execute собирает карточку объекта: предложения по нему, геохэш
// координат (если заданы) и признак возможности удаления.
func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID.String(),
	})

	property, err := uc.properties.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	propertyOffers, err := uc.offers.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	var hash string
	if c := property.Coordinates; c != nil && c.Latitude != nil && c.Longitude != nil {
		hash = geohash.Encode(*c.Latitude, *c.Longitude)
	}

	return &domain.PropertyDetailsView{
		Property:  *property,
		Geohash:   hash,
		Offers:    propertyOffers,
		Deletable: len(propertyOffers) == 0,
	}, nil
}
