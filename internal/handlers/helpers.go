package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/opennotebook/toolbridge/internal/dispatch"
)

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) error {
	return WriteJSON(w, statusCode, errorBody{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// WriteDispatchError maps a dispatch failure onto its HTTP status and error
// body. Unclassified errors surface as execution errors rather than being
// swallowed.
func WriteDispatchError(w http.ResponseWriter, err error) error {
	if de, ok := dispatch.AsError(err); ok {
		return WriteJSON(w, dispatch.HTTPStatus(de.Code), errorBody{
			Status:  "error",
			Code:    string(de.Code),
			Message: de.Message,
			Field:   de.Field,
		})
	}
	return WriteError(w, http.StatusInternalServerError, string(dispatch.CodeExecutionError), err.Error())
}
