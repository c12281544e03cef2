package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ClientsHandler struct {
	listClientsUC      usecases_port.ListClientsUseCase
	getClientDetailsUC usecases_port.GetClientDetailsUseCase
	createClientUC     usecases_port.CreateClientUseCase
	deleteClientUC     usecases_port.DeleteClientUseCase
}

func NewClientsHandler(
	listClientsUC usecases_port.ListClientsUseCase,
	getClientDetailsUC usecases_port.GetClientDetailsUseCase,
	createClientUC usecases_port.CreateClientUseCase,
	deleteClientUC usecases_port.DeleteClientUseCase) *ClientsHandler {
	return &ClientsHandler{
		listClientsUC:      listClientsUC,
		getClientDetailsUC: getClientDetailsUC,
		createClientUC:     createClientUC,
		deleteClientUC:     deleteClientUC,
	}
}

// List обрабатывает GET /api/v1/clients?q=<нечеткий поиск по ФИО>
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	nameQuery := r.URL.Query().Get("q")

	clients, err := h.listClientsUC.Execute(r.Context(), nameQuery)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListClients"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClientResponses(clients))
}

// GetDetails обрабатывает GET /api/v1/clients/{clientID}
func (h *ClientsHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Warn("Invalid client ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	view, err := h.getClientDetailsUC.Execute(r.Context(), clientID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "GetClientDetails", "client_id": clientID.String()})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, ClientDetailsResponse{
		Client:    toClientResponse(view.Client),
		Needs:     toNeedResponses(view.Needs),
		Offers:    toOfferResponses(view.Offers),
		Deletable: view.Deletable,
	})
}

// Create обрабатывает POST /api/v1/clients
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateClientRequest
	if err := DecodeValidatedBody(r, "create-client", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.createClientUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateClient"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toClientResponse(*client))
}

// Delete обрабатывает DELETE /api/v1/clients/{clientID}
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		logger.Warn("Invalid client ID format", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if err := h.deleteClientUC.Execute(r.Context(), clientID); err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "DeleteClient", "client_id": clientID.String()})
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
