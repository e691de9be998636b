package repository

import (
	"context"

	"github.com/taskwell/backend/domain"
)

// TaskRepository is the authoritative holder of task entities. Implementations
// own the stored values outright: reads hand out copies, and callers can only
// observe changes made through Update. Lookups signal absence with
// domain.ErrTaskNotFound; Delete tolerates ids that no longer exist.
type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Insert(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (total, done int)
}
