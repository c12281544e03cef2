package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type ListRealtorsUseCase struct {
	realtors port.RealtorStoragePort
}

func NewListRealtorsUseCase(realtors port.RealtorStoragePort) *ListRealtorsUseCase {
	return &ListRealtorsUseCase{realtors: realtors}
}

// Execute возвращает риэлторов, отфильтрованных нечетким поиском по ФИО.
func (uc *ListRealtorsUseCase) Execute(ctx context.Context, nameQuery string) ([]domain.Realtor, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListRealtors",
		"query":    nameQuery,
	})

	all, err := uc.realtors.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	filtered := make([]domain.Realtor, 0, len(all))
	for _, r := range all {
		if domain.MatchesName(nameQuery, &r.LastName, &r.FirstName, &r.MiddleName) {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}
