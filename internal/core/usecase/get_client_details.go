package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type GetClientDetailsUseCase struct {
	clients port.ClientStoragePort
	needs   port.NeedStoragePort
	offers  port.OfferStoragePort
}

func NewGetClientDetailsUseCase(clients port.ClientStoragePort, needs port.NeedStoragePort, offers port.OfferStoragePort) *GetClientDetailsUseCase {
	return &GetClientDetailsUseCase{clients: clients, needs: needs, offers: offers}
}

// Execute собирает карточку клиента: его потребности, предложения
// и признак возможности удаления.
func (uc *GetClientDetailsUseCase) Execute(ctx context.Context, clientID uuid.UUID) (*domain.ClientDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetClientDetails",
		"client_id": clientID.String(),
	})

	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		ucLogger.Warn("Client lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	clientNeeds, err := uc.needs.ListByClient(ctx, clientID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	clientOffers, err := uc.offers.ListByClient(ctx, clientID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	return &domain.ClientDetailsView{
		Client:    *client,
		Needs:     clientNeeds,
		Offers:    clientOffers,
		Deletable: len(clientNeeds) == 0 && len(clientOffers) == 0,
	}, nil
}
