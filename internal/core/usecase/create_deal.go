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

type CreateDealUseCase struct {
	deals  port.DealStoragePort
	needs  port.NeedStoragePort
	offers port.OfferStoragePort
}

func NewCreateDealUseCase(deals port.DealStoragePort, needs port.NeedStoragePort,
	offers port.OfferStoragePort) *CreateDealUseCase {
	return &CreateDealUseCase{deals: deals, needs: needs, offers: offers}
}

// Execute заключает сделку по паре потребность-предложение.
// Оба должны существовать, быть активными и не участвовать в других
// сделках. Финальную проверку и смену статусов хранилище выполняет
// атомарно, здесь отсекаем заведомо недоступные пары.
func (uc *CreateDealUseCase) Execute(ctx context.Context, params domain.CreateDealParams) (*domain.Deal, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateDeal",
		"need_id":  params.NeedID.String(),
		"offer_id": params.OfferID.String(),
	})

	need, err := uc.needs.GetByID(ctx, params.NeedID)
	if err != nil {
		return nil, fmt.Errorf("need %s: %w", params.NeedID, err)
	}
	offer, err := uc.offers.GetByID(ctx, params.OfferID)
	if err != nil {
		return nil, fmt.Errorf("offer %s: %w", params.OfferID, err)
	}

	if need.Status != domain.NeedStatusActive || offer.Status != domain.OfferStatusActive {
		return nil, fmt.Errorf("%w: need or offer is not active", domain.ErrNotAvailable)
	}

	usedNeeds, err := uc.deals.UsedNeedIDs(ctx)
	if err != nil {
		return nil, err
	}
	usedOffers, err := uc.deals.UsedOfferIDs(ctx)
	if err != nil {
		return nil, err
	}
	if _, used := usedNeeds[need.ID]; used {
		return nil, fmt.Errorf("%w: need is already in a deal", domain.ErrNotAvailable)
	}
	if _, used := usedOffers[offer.ID]; used {
		return nil, fmt.Errorf("%w: offer is already in a deal", domain.ErrNotAvailable)
	}

	deal := domain.Deal{
		ID:        uuid.New(),
		NeedID:    params.NeedID,
		OfferID:   params.OfferID,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.deals.Create(ctx, deal); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Deal created", port.Fields{"deal_id": deal.ID.String()})
	return &deal, nil
}
