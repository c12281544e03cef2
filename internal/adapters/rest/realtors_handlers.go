package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RealtorsHandler struct {
	listRealtorsUC      usecases_port.ListRealtorsUseCase
	getRealtorDetailsUC usecases_port.GetRealtorDetailsUseCase
	createRealtorUC     usecases_port.CreateRealtorUseCase
	deleteRealtorUC     usecases_port.DeleteRealtorUseCase
}

func NewRealtorsHandler(
	listRealtorsUC usecases_port.ListRealtorsUseCase,
	getRealtorDetailsUC usecases_port.GetRealtorDetailsUseCase,
	createRealtorUC usecases_port.CreateRealtorUseCase,
	deleteRealtorUC usecases_port.DeleteRealtorUseCase) *RealtorsHandler {
	return &RealtorsHandler{
		listRealtorsUC:      listRealtorsUC,
		getRealtorDetailsUC: getRealtorDetailsUC,
		createRealtorUC:     createRealtorUC,
		deleteRealtorUC:     deleteRealtorUC,
	}
}

// List обрабатывает GET /api/v1/realtors?q=<нечеткий поиск по ФИО>
func (h *RealtorsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	realtors, err := h.listRealtorsUC.Execute(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListRealtors"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toRealtorResponses(realtors))
}

// GetDetails обрабатывает GET /api/v1/realtors/{realtorID}
func (h *RealtorsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	realtorID, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		logger.Warn("Invalid realtor ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid realtor ID format")
		return
	}

	view, err := h.getRealtorDetailsUC.Execute(r.Context(), realtorID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetRealtorDetails", "realtor_id": realtorID.String()})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, RealtorDetailsResponse{
		Realtor:   toRealtorResponse(view.Realtor),
		Offers:    toOfferResponses(view.Offers),
		Needs:     toNeedResponses(view.Needs),
		Events:    toEventResponses(view.Events),
		Deletable: view.Deletable,
	})
}

// Create обрабатывает POST /api/v1/realtors
func (h *RealtorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateRealtorRequest
	if err := DecodeValidatedBody(r, "create-realtor", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	realtor, err := h.createRealtorUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateRealtor"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toRealtorResponse(*realtor))
}

// Delete обрабатывает DELETE /api/v1/realtors/{realtorID}
func (h *RealtorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	realtorID, err := uuid.Parse(chi.URLParam(r, "realtorID"))
	if err != nil {
		logger.Warn("Invalid realtor ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid realtor ID format")
		return
	}

	if err := h.deleteRealtorUC.Execute(r.Context(), realtorID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteRealtor", "realtor_id": realtorID.String()})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
