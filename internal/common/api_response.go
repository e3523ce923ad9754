package common

import (
	"encoding/json"
	"net/http"

	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/models/dtos/responses"
)

// RespondJSON writes data as the bare JSON body.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, data)
}

// RespondError writes the standard error body.
func RespondError(w http.ResponseWriter, statusCode int, message string, fieldErrors ...responses.FieldError) {
	writeJSON(w, statusCode, responses.ErrorResponse{
		Message: message,
		Errors:  fieldErrors,
	})
}

// RespondNoContent writes 204 with no body.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}
