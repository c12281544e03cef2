package usecase

import (
	"context"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"

	"github.com/google/uuid"
)

type DeleteNeedUseCase struct {
	needs port.NeedStoragePort
	deals port.DealStoragePort
}

func NewDeleteNeedUseCase(needs port.NeedStoragePort, deals port.DealStoragePort) *DeleteNeedUseCase {
	return &DeleteNeedUseCase{needs: needs, deals: deals}
}

// Execute удаляет потребность. Потребность, связанную со сделкой,
// удалить нельзя.
func (uc *DeleteNeedUseCase) Execute(ctx context.Context, needID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteNeed",
		"need_id":  needID.String(),
	})

	if _, err := uc.needs.GetByID(ctx, needID); err != nil {
		return err
	}

	usedNeeds, err := uc.deals.UsedNeedIDs(ctx)
	if err != nil {
		return err
	}
	if _, inDeal := usedNeeds[needID]; inDeal {
		ucLogger.Warn("Need is linked to a deal", nil)
		return fmt.Errorf("%w: need is linked to a deal", domain.ErrHasDependents)
	}

	if err := uc.needs.Delete(ctx, needID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Need deleted", nil)
	return nil
}
