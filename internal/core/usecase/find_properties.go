package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	properties port.PropertyStoragePort
}

func NewFindPropertiesUseCase(properties port.PropertyStoragePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{properties: properties}
}

// Execute возвращает объекты недвижимости, отфильтрованные по типу
// и нечеткому поиску по адресу.
func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"filters":  filters,
	})

	all, err := uc.properties.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	filtered := make([]domain.Property, 0, len(all))
	for _, p := range all {
		if filters.Type != nil && p.Type != *filters.Type {
			continue
		}
		if filters.AddressQuery != "" && !domain.MatchesAddress(filters.AddressQuery, p.Address) {
			continue
		}
		filtered = append(filtered, p)
	}

	ucLogger.Debug("Use case finished", port.Fields{"total": len(all), "matched": len(filtered)})
	return filtered, nil
}
