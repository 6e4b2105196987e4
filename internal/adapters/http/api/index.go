package api

import "net/http"

// indexResponse describes the API to a first-time caller.
type indexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// IndexHandler handles the API root.
type IndexHandler struct {
	version string
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(version string) *IndexHandler {
	return &IndexHandler{version: version}
}

// HandleIndex handles GET /api requests.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:   "welcome to the showcase API",
		Version:   h.version,
		Endpoints: availableRoutes,
	})
}
