package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteClientUseCase struct {
	clients port.ClientStoragePort
	needs   port.NeedStoragePort
	offers  port.OfferStoragePort
}

func NewDeleteClientUseCase(clients port.ClientStoragePort, needs port.NeedStoragePort, offers port.OfferStoragePort) *DeleteClientUseCase {
	return &DeleteClientUseCase{clients: clients, needs: needs, offers: offers}
}

// Execute удаляет клиента. Клиент с потребностями или предложениями
// не удаляется - сначала нужно разобраться с зависимыми записями.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, clientID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "DeleteClient",
		"client_id": clientID.String(),
	})

	if _, err := uc.clients.GetByID(ctx, clientID); err != nil {
		return err
	}

	clientNeeds, err := uc.needs.ListByClient(ctx, clientID)
	if err != nil {
		return err
	}
	clientOffers, err := uc.offers.ListByClient(ctx, clientID)
	if err != nil {
		return err
	}
	if len(clientNeeds) > 0 || len(clientOffers) > 0 {
		ucLogger.Warn("Client has dependent records", port.Fields{
			"needs":  len(clientNeeds),
			"offers": len(clientOffers),
		})
		return fmt.Errorf("%w: client has needs or offers", domain.ErrHasDependents)
	}

	if err := uc.clients.Delete(ctx, clientID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Client deleted", nil)
	return nil
}
