package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeleteNeedUseCase interface {
	Execute(ctx context.Context, needID uuid.UUID) error
}
