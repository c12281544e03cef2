package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NeedsHandler struct {
	listNeedsUC      usecases_port.ListNeedsUseCase
	getNeedDetailsUC usecases_port.GetNeedDetailsUseCase
	createNeedUC     usecases_port.CreateNeedUseCase
	deleteNeedUC     usecases_port.DeleteNeedUseCase
}

func NewNeedsHandler(
	listNeedsUC usecases_port.ListNeedsUseCase,
	getNeedDetailsUC usecases_port.GetNeedDetailsUseCase,
	createNeedUC usecases_port.CreateNeedUseCase,
	deleteNeedUC usecases_port.DeleteNeedUseCase) *NeedsHandler {
	return &NeedsHandler{
		listNeedsUC:      listNeedsUC,
		getNeedDetailsUC: getNeedDetailsUC,
		createNeedUC:     createNeedUC,
		deleteNeedUC:     deleteNeedUC,
	}
}

// List обрабатывает GET /api/v1/needs?status=<фильтр по статусу>
func (h *NeedsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var status *domain.NeedStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.NeedStatus(statusStr)
		status = &s
	}

	items, err := h.listNeedsUC.Execute(r.Context(), status)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListNeeds"})
		WriteDomainError(w, err)
		return
	}

	response := make([]NeedListItemResponse, len(items))
	for i, item := range items {
		response[i] = NeedListItemResponse{
			Need:    toNeedResponse(item.Need),
			Client:  toClientResponsePtr(item.Client),
			Realtor: toRealtorResponsePtr(item.Realtor),
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetDetails обрабатывает GET /api/v1/needs/{needID}
func (h *NeedsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	needID, err := uuid.Parse(chi.URLParam(r, "needID"))
	if err != nil {
		logger.Warn("Invalid need ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	view, err := h.getNeedDetailsUC.Execute(r.Context(), needID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetNeedDetails", "need_id": needID.String()})
		WriteDomainError(w, err)
		return
	}

	matching := make([]OfferListItemResponse, len(view.MatchingOffers))
	for i, item := range view.MatchingOffers {
		matching[i] = toOfferListItemResponse(item)
	}

	RespondWithJSON(w, http.StatusOK, NeedDetailsResponse{
		Need:           toNeedResponse(view.Need),
		Client:         toClientResponsePtr(view.Client),
		Realtor:        toRealtorResponsePtr(view.Realtor),
		MatchingOffers: matching,
		Deletable:      view.Deletable,
	})
}

// Create обрабатывает POST /api/v1/needs
func (h *NeedsHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateNeedRequest
	if err := DecodeValidatedBody(r, "create-need", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	need, err := h.createNeedUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateNeed"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toNeedResponse(*need))
}

// Delete обрабатывает DELETE /api/v1/needs/{needID}
func (h *NeedsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	needID, err := uuid.Parse(chi.URLParam(r, "needID"))
	if err != nil {
		logger.Warn("Invalid need ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	if err := h.deleteNeedUC.Execute(r.Context(), needID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteNeed", "need_id": needID.String()})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
