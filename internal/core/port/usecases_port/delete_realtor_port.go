package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteRealtorUseCase interface {
	Execute(ctx context.Context, realtorID uuid.UUID) error
}
