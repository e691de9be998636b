package transport

// TaskCreateRequest carries the fields a client supplies for a new task.
// due_date accepts RFC3339 or a plain YYYY-MM-DD date.
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// TaskUpdateRequest carries the mutable fields of an existing task. Title is
// fixed at creation and status moves only through the done endpoint.
type TaskUpdateRequest struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}
