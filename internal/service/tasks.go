package service

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"pitschi/pkg/metrics"

	"go.uber.org/zap"
)

const (
	TaskProjects = "projects"
	TaskBookings = "bookings"
	TaskIngest   = "ingest"
)

var (
	ErrTaskRunning = errors.New("task already running")
	ErrTaskUnknown = errors.New("unknown task")
)

type task struct {
	run     func(ctx context.Context) error
	running atomic.Bool
}

// Tasks is the set of background reconciliations, shared by the scheduler and
// the admin trigger endpoint. A task never overlaps itself within a process.
type Tasks struct {
	*Service
	tasks map[string]*task
}

func NewTasks(service *Service, projectSync ProjectSyncService, bookingSync BookingSyncService, ingest IngestService) *Tasks {
	return &Tasks{
		Service: service,
		tasks: map[string]*task{
			TaskProjects: {run: projectSync.SyncAll},
			TaskBookings: {run: bookingSync.SyncToday},
			TaskIngest:   {run: ingest.Sweep},
		},
	}
}

func (t *Tasks) Names() []string {
	names := make([]string, 0, len(t.tasks))
	for name := range t.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Tasks) Has(name string) bool {
	_, ok := t.tasks[name]
	return ok
}

func (t *Tasks) Running(name string) bool {
	tk, ok := t.tasks[name]
	return ok && tk.running.Load()
}

// Run executes the named task and records its outcome.
func (t *Tasks) Run(ctx context.Context, name string) error {
	tk, ok := t.tasks[name]
	if !ok {
		return ErrTaskUnknown
	}
	if !tk.running.CompareAndSwap(false, true) {
		metrics.SyncRunsTotal.WithLabelValues(name, "skipped").Inc()
		return ErrTaskRunning
	}
	defer tk.running.Store(false)

	start := time.Now()
	err := tk.run(ctx)
	metrics.SyncDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(name, "error").Inc()
		t.logger.WithContext(ctx).Error("task failed", zap.String("task", name), zap.Duration("took", time.Since(start)), zap.Error(err))
		return err
	}
	metrics.SyncRunsTotal.WithLabelValues(name, "success").Inc()
	t.logger.WithContext(ctx).Info("task finished", zap.String("task", name), zap.Duration("took", time.Since(start)))
	return nil
}
