package rest

import (
	"net/http"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

type EventsHandler struct {
	listEventsUC  usecases_port.ListEventsUseCase
	createEventUC usecases_port.CreateEventUseCase
}

func NewEventsHandler(
	listEventsUC usecases_port.ListEventsUseCase,
	createEventUC usecases_port.CreateEventUseCase) *EventsHandler {
	return &EventsHandler{
		listEventsUC:  listEventsUC,
		createEventUC: createEventUC,
	}
}

// List обрабатывает GET /api/v1/events?realtorId=<фильтр по риэлтору>
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var realtorID *uuid.UUID
	if idStr := r.URL.Query().Get("realtorId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			logger.Warn("Invalid realtor ID format", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, "Invalid realtor ID format")
			return
		}
		realtorID = &id
	}

	events, err := h.listEventsUC.Execute(r.Context(), realtorID)
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "ListEvents"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toEventResponses(events))
}

// Create обрабатывает POST /api/v1/events
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req CreateEventRequest
	if err := DecodeValidatedBody(r, "create-event", &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.createEventUC.Execute(r.Context(), req.toParams())
	if err != nil {
		logger.Error("Use case failed", err, port.Fields{"handler": "CreateEvent"})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toEventResponse(*event))
}
