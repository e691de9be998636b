package memory

import (
	"context"
	"sync"

	"github.com/taskwell/backend/domain"
)

// TaskRepository keeps tasks in an ordered in-process slice. List always
// reflects insertion order. The store is the sole owner of its values;
// everything it returns is a copy, so mutating a returned task has no effect
// until it is written back with Update.
//
// The lock exists for the HTTP surface, which may call in from concurrent
// request goroutines. The store itself has no suspension points.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// Insert appends the task. Id uniqueness is the caller's contract; no
// duplicate check happens here, and GetByID resolves duplicates first-match.
func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return r.tasks[i], nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// Update replaces the stored task carrying the same id.
func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			r.tasks[i] = task
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Delete removes every task with the given id. Missing ids are not an error.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.tasks = kept
	return nil
}

// Count reports how many tasks the store holds and how many are done.
func (r *TaskRepository) Count(ctx context.Context) (total, done int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tasks {
		if r.tasks[i].Status == domain.StatusDone {
			done++
		}
	}
	return len(r.tasks), done
}
