package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteClientUseCase interface {
	Execute(ctx context.Context, clientID uuid.UUID) error
}
