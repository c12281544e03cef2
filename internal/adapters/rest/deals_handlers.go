package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DealsHandler struct {
	listDealsUC      usecases_port.ListDealsUseCase
	getDealDetailsUC usecases_port.GetDealDetailsUseCase
	createDealUC     usecases_port.CreateDealUseCase
}

func NewDealsHandler(
	listDealsUC usecases_port.ListDealsUseCase,
	getDealDetailsUC usecases_port.GetDealDetailsUseCase,
	createDealUC usecases_port.CreateDealUseCase) *DealsHandler {
	return &DealsHandler{
		listDealsUC:      listDealsUC,
		getDealDetailsUC: getDealDetailsUC,
		createDealUC:     createDealUC,
	}
}

// List обрабатывает GET /api/v1/deals
func (h *DealsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	items, err := h.listDealsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListDeals"})
		WriteDomainError(w, err)
		return
	}

	response := make([]DealListItemResponse, len(items))
	for i, item := range items {
		response[i] = DealListItemResponse{
			Deal:        toDealResponse(item.Deal),
			Need:        toNeedResponsePtr(item.Need),
			Offer:       toOfferResponsePtr(item.Offer),
			Commissions: toCommissionsResponse(item.Commissions),
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetDetails обрабатывает GET /api/v1/deals/{dealID}
func (h *DealsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	dealID, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		logger.Warn("Invalid deal ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid deal ID format")
		return
	}

	view, err := h.getDealDetailsUC.Execute(r.Context(), dealID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetDealDetails", "deal_id": dealID.String()})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, DealDetailsResponse{
		Deal:          toDealResponse(view.Deal),
		Need:          toNeedResponsePtr(view.Need),
		Offer:         toOfferResponsePtr(view.Offer),
		Property:      toPropertyResponsePtr(view.Property),
		SellerClient:  toClientResponsePtr(view.SellerClient),
		BuyerClient:   toClientResponsePtr(view.BuyerClient),
		SellerRealtor: toRealtorResponsePtr(view.SellerRealtor),
		BuyerRealtor:  toRealtorResponsePtr(view.BuyerRealtor),
		Commissions:   toCommissionsResponse(view.Commissions),
	})
}

// Create обрабатывает POST /api/v1/deals
func (h *DealsHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateDealRequest
	if err := DecodeValidatedBody(r, "create-deal", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	deal, err := h.createDealUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateDeal"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toDealResponse(*deal))
}
