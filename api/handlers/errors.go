// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	coreerrors "zhihu-rss-api/core/errors"
)

// errorResponse is the JSON body for failed requests
type errorResponse struct {
	Error string `json:"error"`
}

// writeError converts domain errors to appropriate HTTP responses. Feeds are
// all-or-nothing: any upstream failure yields an error status, never a partial
// document.
func (h *StreamHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case coreerrors.IsNotFound(err):
		status = http.StatusNotFound
		message = "not found"
	case coreerrors.IsTransport(err), coreerrors.IsDecode(err):
		status = http.StatusBadGateway
		message = "upstream error"
	}

	if h.logger != nil && status >= 500 {
		h.logger.Error("request failed", map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}

	writeJSONError(w, status, message)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}
