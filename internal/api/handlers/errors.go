package handlers

import (
	"net/http"
	"time"

	"github.com/hweilin/memberhub/internal/middleware"
	"github.com/hweilin/memberhub/internal/services"
)

// errorResponse normalizes every error into the shared envelope and logs it
// once: warn for client errors, error for server errors.
func (h *Handlers) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if apiErr, ok := err.(*services.APIError); ok {
		status = apiErr.Status
		message = apiErr.Message
	} else if h.config.IsDev {
		// Surface the underlying detail only outside production.
		message = err.Error()
	}

	requestID := middleware.GetRequestID(r.Context())

	logEvent := h.factory.Logger.Error()
	if status < 500 {
		logEvent = h.factory.Logger.Warn()
	}
	logEvent.
		Str("request_id", requestID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Err(err).
		Msg("request_failed")

	writeErr := h.writeJSON(w, status, envelope{
		"statusCode": status,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"path":       r.URL.Path,
		"method":     r.Method,
		"message":    message,
		"requestId":  requestID,
	}, nil)
	if writeErr != nil {
		h.factory.Logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}
