package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"cashper-api/internal/middleware"
	"cashper-api/pkg/errors"
	"cashper-api/pkg/logger"
)

// writeJSON encodes a response body with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError translates a service error into an HTTP response. AppError kinds
// map to their status codes; anything else becomes a generic 500 so internal
// detail never leaks to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.NewInternalError("Internal server error", err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		// Hide the internal taxonomy from clients
		appErr = &errors.AppError{
			Type:       errors.ErrorTypeInternal,
			Message:    "Internal server error",
			StatusCode: http.StatusInternalServerError,
		}
	} else {
		log.WithError(err).Debug("Request rejected")
	}

	response := &errors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)
	if requestID, ok := r.Context().Value(middleware.RequestIDContextKey).(string); ok {
		response.Error.RequestID = requestID
	}

	writeJSON(w, appErr.StatusCode, response, log)
}
