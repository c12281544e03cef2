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

type PropertiesHandler struct {
	findPropertiesUC     usecases_port.FindPropertiesUseCase
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase
	createPropertyUC     usecases_port.CreatePropertyUseCase
	deletePropertyUC     usecases_port.DeletePropertyUseCase
}

func NewPropertiesHandler(
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	getPropertyDetailsUC usecases_port.GetPropertyDetailsUseCase,
	createPropertyUC usecases_port.CreatePropertyUseCase,
	deletePropertyUC usecases_port.DeletePropertyUseCase) *PropertiesHandler {
	return &PropertiesHandler{
		findPropertiesUC:     findPropertiesUC,
		getPropertyDetailsUC: getPropertyDetailsUC,
		createPropertyUC:     createPropertyUC,
		deletePropertyUC:     deletePropertyUC,
	}
}

// Find обрабатывает GET /api/v1/properties?type=<тип>&q=<нечеткий поиск по адресу>
func (h *PropertiesHandler) Find(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()
	filters := domain.PropertyFilters{
		AddressQuery: query.Get("q"),
	}
	if typeStr := query.Get("type"); typeStr != "" {
		propertyType := domain.PropertyType(typeStr)
		filters.Type = &propertyType
	}

	properties, err := h.findPropertiesUC.Execute(r.Context(), filters)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "FindProperties"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// GetDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertiesHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		logger.Warn("Invalid property ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	view, err := h.getPropertyDetailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetPropertyDetails", "property_id": propertyID.String()})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Property:  toPropertyResponse(view.Property),
		Geohash:   view.Geohash,
		Offers:    toOfferResponses(view.Offers),
		Deletable: view.Deletable,
	})
}

// Create обрабатывает POST /api/v1/properties
func (h *PropertiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreatePropertyRequest
	if err := DecodeValidatedBody(r, "create-property", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createPropertyUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateProperty"})
		WriteDomainError(w, err)
		return
	}

	response := PropertyCreatedResponse{
		Property: toPropertyResponse(created.Property),
	}
	if created.PossibleDuplicateID != nil {
		id := created.PossibleDuplicateID.String()
		response.PossibleDuplicateID = &id
	}

	RespondWithJSON(w, http.StatusCreated, response)
}

// Delete обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		logger.Warn("Invalid property ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	if err := h.deletePropertyUC.Execute(r.Context(), propertyID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteProperty", "property_id": propertyID.String()})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
