package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetNeedDetailsUseCase interface {
	Execute(ctx context.Context, needID uuid.UUID) (*domain.NeedDetailsView, error)
}
