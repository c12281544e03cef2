package usecases_port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

type GetDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*domain.DashboardStats, error)
}
