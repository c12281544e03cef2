package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (*domain.PropertyDetailsView, error)
}
