package usecase

import (
	"context"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
)

type SearchUseCase struct {
	clients    port.ClientStoragePort
	realtors   port.RealtorStoragePort
	properties port.PropertyStoragePort
}

func NewSearchUseCase(clients port.ClientStoragePort, realtors port.RealtorStoragePort,
	properties port.PropertyStoragePort) *SearchUseCase {
	return &SearchUseCase{clients: clients, realtors: realtors, properties: properties}
}

// Execute - глобальный нечеткий поиск: клиенты и риэлторы по ФИО,
// объекты недвижимости по адресу.
func (uc *SearchUseCase) Execute(ctx context.Context, query string) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Search",
		"query":    query,
	})

	allClients, err := uc.clients.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	allRealtors, err := uc.realtors.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	allProperties, err := uc.properties.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result := &domain.SearchResult{}
	for _, c := range allClients {
		if domain.MatchesName(query, c.LastName, c.FirstName, c.MiddleName) {
			result.Clients = append(result.Clients, c)
		}
	}
	for _, r := range allRealtors {
		if domain.MatchesName(query, &r.LastName, &r.FirstName, &r.MiddleName) {
			result.Realtors = append(result.Realtors, r)
		}
	}
	for _, p := range allProperties {
		if domain.MatchesAddress(query, p.Address) {
			result.Properties = append(result.Properties, p)
		}
	}

	ucLogger.Debug("Search finished", port.Fields{
		"clients":    len(result.Clients),
		"realtors":   len(result.Realtors),
		"properties": len(result.Properties),
	})
	return result, nil
}
