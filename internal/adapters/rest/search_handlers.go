package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"
)

type SearchHandler struct {
	searchUC            usecases_port.SearchUseCase
	getDashboardStatsUC usecases_port.GetDashboardStatsUseCase
}

func NewSearchHandler(
	searchUC usecases_port.SearchUseCase,
	getDashboardStatsUC usecases_port.GetDashboardStatsUseCase) *SearchHandler {
	return &SearchHandler{
		searchUC:            searchUC,
		getDashboardStatsUC: getDashboardStatsUC,
	}
}

// Search обрабатывает GET /api/v1/search?q=<запрос>
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	result, err := h.searchUC.Execute(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "Search"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Clients:    toClientResponses(result.Clients),
		Realtors:   toRealtorResponses(result.Realtors),
		Properties: toPropertyResponses(result.Properties),
	})
}

// GetDashboardStats обрабатывает GET /api/v1/dashboard/stats
func (h *SearchHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	stats, err := h.getDashboardStatsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetDashboardStats"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, DashboardStatsResponse{
		Clients:      stats.Clients,
		Realtors:     stats.Realtors,
		Properties:   stats.Properties,
		ActiveOffers: stats.ActiveOffers,
		ActiveNeeds:  stats.ActiveNeeds,
		Deals:        stats.Deals,
	})
}
