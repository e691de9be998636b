package monitor

import "time"

// Status is a point-in-time snapshot of the task store.
type Status struct {
	Tasks     int           `json:"tasks"`
	Pending   int           `json:"pending"`
	Done      int           `json:"done"`
	Uptime    time.Duration `json:"uptime"`
	LastCheck time.Time     `json:"last_check"`
}
