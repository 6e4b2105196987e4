package api

import (
	"context"
	"net/http"

	"showcase/internal/domain/model"
)

// ProjectsDependencies defines the read operation the handler needs.
type ProjectsDependencies interface {
	Projects(ctx context.Context) ([]model.Project, error)
}

// ProjectsHandler handles project listing requests.
type ProjectsHandler struct {
	deps ProjectsDependencies
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(deps ProjectsDependencies) *ProjectsHandler {
	return &ProjectsHandler{deps: deps}
}

// HandleList handles GET /api/projects requests.
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Projects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load projects")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(projects),
		Data:    projects,
	})
}
