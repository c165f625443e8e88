package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sonard/internal/catalog"
	"sonard/internal/manager"
	"sonard/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps well-known service errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he.StatusCode()
	case manager.IsEventNotFound(err):
		return http.StatusNotFound
	case manager.IsUnknownIntent(err):
		return http.StatusBadRequest
	case manager.IsUnsupportedIntent(err):
		return http.StatusNotImplemented
	case manager.IsRecognitionFailed(err):
		return http.StatusUnprocessableEntity
	case manager.IsRecognitionUnavailable(err), errors.Is(err, manager.ErrClosed):
		return http.StatusServiceUnavailable
	case catalog.IsUnavailable(err):
		return http.StatusBadGateway
	case errors.Is(err, catalog.ErrDuplicateID), errors.Is(err, catalog.ErrEmptyID):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
