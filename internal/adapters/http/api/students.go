package api

import (
	"context"
	"net/http"

	"showcase/internal/domain/model"
)

// StudentsDependencies defines the read operation the handler needs.
type StudentsDependencies interface {
	Students(ctx context.Context) ([]model.Student, error)
}

// StudentsHandler handles student listing requests.
type StudentsHandler struct {
	deps StudentsDependencies
}

// NewStudentsHandler creates a new students handler.
func NewStudentsHandler(deps StudentsDependencies) *StudentsHandler {
	return &StudentsHandler{deps: deps}
}

// HandleList handles GET /api/students requests.
func (h *StudentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	students, err := h.deps.Students(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load students")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(students),
		Data:    students,
	})
}
