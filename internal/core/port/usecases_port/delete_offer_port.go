package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteOfferUseCase interface {
	Execute(ctx context.Context, offerID uuid.UUID) error
}
