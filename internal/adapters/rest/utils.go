package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"brokerage-service/internal/contracts"
	"brokerage-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// DecodeValidatedBody читает тело запроса, проверяет его по JSON-схеме
// и декодирует в dst. Семантические проверки остаются за use case.
func DecodeValidatedBody(r *http.Request, schemaName string, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := contracts.Validate(schemaName, body); err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// WriteDomainError переводит ошибки ядра в HTTP-статусы.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Entity not found")
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrHasDependents):
		WriteJSONError(w, http.StatusConflict, "Entity has dependent records and cannot be deleted")
	case errors.Is(err, domain.ErrNotAvailable):
		WriteJSONError(w, http.StatusConflict, "Need or offer is not available for a new deal")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
