package api

import "net/http"

// notFoundResponse includes the fixed route list to help lost callers.
type notFoundResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"available_routes"`
}

// NotFoundHandler answers every unmatched path.
type NotFoundHandler struct{}

// NewNotFoundHandler creates a new fallback handler.
func NewNotFoundHandler() *NotFoundHandler {
	return &NotFoundHandler{}
}

// HandleNotFound responds 404 with the available route list.
func (h *NotFoundHandler) HandleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Success:         false,
		Message:         "route not found",
		AvailableRoutes: availableRoutes,
	})
}
