package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type SearchUseCase interface {
	Execute(ctx context.Context, query string) (*domain.SearchResult, error)
}
