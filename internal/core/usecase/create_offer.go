package usecase

import (
	"context"
	"fmt"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateOfferUseCase struct {
	offers     port.OfferStoragePort
	clients    port.ClientStoragePort
	realtors   port.RealtorStoragePort
	properties port.PropertyStoragePort
}

func NewCreateOfferUseCase(offers port.OfferStoragePort, clients port.ClientStoragePort,
	realtors port.RealtorStoragePort, properties port.PropertyStoragePort) *CreateOfferUseCase {
	return &CreateOfferUseCase{offers: offers, clients: clients, realtors: realtors, properties: properties}
}

// Execute создает предложение о продаже. Клиент, риэлтор и объект
// должны существовать на момент создания; новое предложение активно.
func (uc *CreateOfferUseCase) Execute(ctx context.Context, params domain.CreateOfferParams) (*domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateOffer"})

	if params.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	if _, err := uc.clients.GetByID(ctx, params.ClientID); err != nil {
		return nil, fmt.Errorf("client %s: %w", params.ClientID, err)
	}
	if _, err := uc.realtors.GetByID(ctx, params.RealtorID); err != nil {
		return nil, fmt.Errorf("realtor %s: %w", params.RealtorID, err)
	}
	if _, err := uc.properties.GetByID(ctx, params.PropertyID); err != nil {
		return nil, fmt.Errorf("property %s: %w", params.PropertyID, err)
	}

	offer := domain.Offer{
		ID:         uuid.New(),
		ClientID:   params.ClientID,
		RealtorID:  params.RealtorID,
		PropertyID: params.PropertyID,
		Price:      params.Price,
		Status:     domain.OfferStatusActive,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.offers.Create(ctx, offer); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Offer created", port.Fields{"offer_id": offer.ID.String()})
	return &offer, nil
}
