package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListNeedsUseCase struct {
	needs    port.NeedStoragePort
	clients  port.ClientStoragePort
	realtors port.RealtorStoragePort
}

func NewListNeedsUseCase(needs port.NeedStoragePort, clients port.ClientStoragePort,
	realtors port.RealtorStoragePort) *ListNeedsUseCase {
	return &ListNeedsUseCase{needs: needs, clients: clients, realtors: realtors}
}

// Execute возвращает потребности с разрешенными связями,
// опционально отфильтрованные по статусу.
func (uc *ListNeedsUseCase) Execute(ctx context.Context, status *domain.NeedStatus) ([]domain.NeedListItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListNeeds"})

	all, err := uc.needs.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	items := make([]domain.NeedListItem, 0, len(all))
	for _, need := range all {
		if status != nil && need.Status != *status {
			continue
		}

		client, err := orNil(uc.clients.GetByID(ctx, need.ClientID))
		if err != nil {
			return nil, err
		}
		realtor, err := orNil(uc.realtors.GetByID(ctx, need.RealtorID))
		if err != nil {
			return nil, err
		}

		items = append(items, domain.NeedListItem{Need: need, Client: client, Realtor: realtor})
	}

	return items, nil
}
