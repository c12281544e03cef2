package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListClientsUseCase struct {
	clients port.ClientStoragePort
}

func NewListClientsUseCase(clients port.ClientStoragePort) *ListClientsUseCase {
	return &ListClientsUseCase{clients: clients}
}

// Execute возвращает клиентов, отфильтрованных нечетким поиском по ФИО.
// Пустой запрос не фильтрует.
func (uc *ListClientsUseCase) Execute(ctx context.Context, nameQuery string) ([]domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListClients",
		"query":    nameQuery,
	})

	all, err := uc.clients.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	filtered := make([]domain.Client, 0, len(all))
	for _, c := range all {
		if domain.MatchesName(nameQuery, c.LastName, c.FirstName, c.MiddleName) {
			filtered = append(filtered, c)
		}
	}

	ucLogger.Debug("Use case finished", port.Fields{"total": len(all), "matched": len(filtered)})
	return filtered, nil
}
