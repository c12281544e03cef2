package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID) error
}
