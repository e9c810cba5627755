package repository

import (
	"context"
	"errors"

	"interior-planner/internal/planner/models"
)

var ErrNotFound = errors.New("project not found")

// ============================================================
// Project Store
// ============================================================

// ProjectStore гарантирует только поиск по id. Изменения вносятся
// в полученный проект и фиксируются через Save.
type ProjectStore interface {
	Create(ctx context.Context, name string) (*models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Save(ctx context.Context, project *models.Project) error
}
