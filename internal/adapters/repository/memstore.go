package repository

import (
	"context"
	"slices"

	"showcase/internal/domain/model"
)

// MemStore is an immutable in-memory Store seeded at construction.
type MemStore struct {
	projects []model.Project
	students []model.Student
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithProjects replaces the seeded project records.
func WithProjects(projects []model.Project) Option {
	return func(s *MemStore) {
		if projects != nil {
			s.projects = projects
		}
	}
}

// WithStudents replaces the seeded student records.
func WithStudents(students []model.Student) Option {
	return func(s *MemStore) {
		if students != nil {
			s.students = students
		}
	}
}

// NewMemStore creates a store holding the default seed records unless
// overridden by options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		projects: seedProjects(),
		students: seedStudents(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Projects returns every project, in stable order.
func (s *MemStore) Projects(_ context.Context) ([]model.Project, error) {
	// Clone so callers cannot mutate the seeded records.
	return slices.Clone(s.projects), nil
}

// Students returns every student profile, in stable order.
func (s *MemStore) Students(_ context.Context) ([]model.Student, error) {
	return slices.Clone(s.students), nil
}
