package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskwell/backend/repository"
)

// Monitor periodically samples the task store so the health endpoint can
// answer from a cached snapshot instead of touching the store on every probe.
type Monitor struct {
	tasks repository.TaskRepository

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	started  time.Time
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		tasks:    tasks,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	m.started = time.Now()
	m.sample()
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

// GetStatus returns the most recent snapshot.
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	status := m.status
	status.Uptime = time.Since(m.started).Round(time.Second)
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sample()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) sample() {
	total, done := m.tasks.Count(context.Background())

	m.mu.Lock()
	m.status = Status{
		Tasks:     total,
		Pending:   total - done,
		Done:      done,
		LastCheck: time.Now().UTC(),
	}
	m.mu.Unlock()

	m.logger.Debug("store sampled", zap.Int("tasks", total), zap.Int("done", done))
}
