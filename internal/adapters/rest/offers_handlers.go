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

type OffersHandler struct {
	listOffersUC      usecases_port.ListOffersUseCase
	getOfferDetailsUC usecases_port.GetOfferDetailsUseCase
	createOfferUC     usecases_port.CreateOfferUseCase
	deleteOfferUC     usecases_port.DeleteOfferUseCase
}

func NewOffersHandler(
	listOffersUC usecases_port.ListOffersUseCase,
	getOfferDetailsUC usecases_port.GetOfferDetailsUseCase,
	createOfferUC usecases_port.CreateOfferUseCase,
	deleteOfferUC usecases_port.DeleteOfferUseCase) *OffersHandler {
	return &OffersHandler{
		listOffersUC:      listOffersUC,
		getOfferDetailsUC: getOfferDetailsUC,
		createOfferUC:     createOfferUC,
		deleteOfferUC:     deleteOfferUC,
	}
}

// List обрабатывает GET /api/v1/offers?status=<фильтр по статусу>
func (h *OffersHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var status *domain.OfferStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.OfferStatus(statusStr)
		status = &s
	}

	items, err := h.listOffersUC.Execute(r.Context(), status)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListOffers"})
		WriteDomainError(w, err)
		return
	}

	response := make([]OfferListItemResponse, len(items))
	for i, item := range items {
		response[i] = toOfferListItemResponse(item)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetDetails обрабатывает GET /api/v1/offers/{offerID}
func (h *OffersHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		logger.Warn("Invalid offer ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	view, err := h.getOfferDetailsUC.Execute(r.Context(), offerID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetOfferDetails", "offer_id": offerID.String()})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, OfferDetailsResponse{
		Offer:         toOfferResponse(view.Offer),
		Client:        toClientResponsePtr(view.Client),
		Realtor:       toRealtorResponsePtr(view.Realtor),
		Property:      toPropertyResponsePtr(view.Property),
		MatchingNeeds: toNeedResponses(view.MatchingNeeds),
		Deletable:     view.Deletable,
	})
}

// Create обрабатывает POST /api/v1/offers
func (h *OffersHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateOfferRequest
	if err := DecodeValidatedBody(r, "create-offer", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	offer, err := h.createOfferUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateOffer"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toOfferResponse(*offer))
}

// Delete обрабатывает DELETE /api/v1/offers/{offerID}
func (h *OffersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		logger.Warn("Invalid offer ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid offer ID format")
		return
	}

	if err := h.deleteOfferUC.Execute(r.Context(), offerID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteOffer", "offer_id": offerID.String()})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
