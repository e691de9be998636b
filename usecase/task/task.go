package task

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/taskwell/backend/domain"
	"github.com/taskwell/backend/repository"
)

// UseCase governs the task lifecycle: identity assignment at creation, the
// single pending→done transition, detail edits and removal. It is the only
// path through which tasks are created or mutated.
type UseCase struct {
	tasks  repository.TaskRepository
	nextID atomic.Int64
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Create assigns a fresh id, stores the task as pending and returns it. Ids
// come from an in-process counter, so rapid successive calls still get
// distinct ids.
func (uc *UseCase) Create(ctx context.Context, title, description string, dueDate *time.Time) (domain.Task, error) {
	now := time.Now().UTC()
	t := domain.Task{
		ID:          uc.nextID.Add(1),
		Title:       title,
		Description: description,
		Status:      domain.StatusPending,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tasks.Insert(ctx, t); err != nil {
		return domain.Task{}, err
	}
	uc.logger.Debug("task created", zap.Int64("task_id", t.ID))
	return t, nil
}

// MarkDone moves a task to done. Done is terminal, so repeating the call
// changes nothing. A stale id is silently ignored; UI handlers rely on
// completion being safe to fire at ids that were removed underneath them.
func (uc *UseCase) MarkDone(ctx context.Context, id int64) error {
	t, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		return err
	}
	if t.Status == domain.StatusDone {
		return nil
	}
	t.Status = domain.StatusDone
	t.UpdatedAt = time.Now().UTC()
	if err := uc.tasks.Update(ctx, t); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		return err
	}
	uc.logger.Debug("task completed", zap.Int64("task_id", id))
	return nil
}

// UpdateDetails rewrites the mutable fields of a task. Title and status are
// not touched here; status only moves through MarkDone.
func (uc *UseCase) UpdateDetails(ctx context.Context, id int64, description string, dueDate *time.Time) (domain.Task, error) {
	t, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	t.Description = description
	t.DueDate = dueDate
	t.UpdatedAt = time.Now().UTC()
	if err := uc.tasks.Update(ctx, t); err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// Remove deletes the task outright. Removal is orthogonal to status and, like
// MarkDone, tolerates ids that no longer exist.
func (uc *UseCase) Remove(ctx context.Context, id int64) error {
	return uc.tasks.Delete(ctx, id)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// List returns every task in insertion order.
func (uc *UseCase) List(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.List(ctx)
}
