// Package repository defines the showcase data store interface and errors.
package repository

import (
	"context"

	"showcase/internal/domain/model"
)

// Store provides read access to the showcase records. The current backing
// data is static, but handlers only ever talk to this interface so a real
// persistence layer can be substituted without touching their contracts.
type Store interface {
	// Projects returns every project, in stable order.
	Projects(ctx context.Context) ([]model.Project, error)

	// Students returns every student profile, in stable order.
	Students(ctx context.Context) ([]model.Student, error)
}
