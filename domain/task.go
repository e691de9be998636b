package domain

import "time"

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	// StatusPending is the state every task starts in.
	StatusPending TaskStatus = "pending"
	// StatusDone is terminal; no operation transitions out of it.
	StatusDone TaskStatus = "done"
)

// Task represents one to-do item.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Status == StatusDone
}
