package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pitschi/internal/service"
	"pitschi/pkg/log"

	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Runner executes named reconciliation tasks.
type Runner interface {
	Names() []string
	Run(ctx context.Context, name string) error
}

// Schedule is when one task fires. Cron wins over Every when both are set.
type Schedule struct {
	Cron       string        `mapstructure:"cron"`
	Every      time.Duration `mapstructure:"every"`
	RunOnStart bool          `mapstructure:"run_on_start"`
}

func (s Schedule) enabled() bool {
	return s.Cron != "" || s.Every > 0
}

var defaultSchedules = map[string]Schedule{
	service.TaskProjects: {Cron: "0 1 */2 * *"},
	service.TaskBookings: {Every: 5 * time.Minute, RunOnStart: true},
	service.TaskIngest:   {Every: 10 * time.Minute},
}

// NewSchedules reads the schedule section, falling back to the defaults per task.
func NewSchedules(conf *viper.Viper) (map[string]Schedule, error) {
	schedules := make(map[string]Schedule, len(defaultSchedules))
	for name, def := range defaultSchedules {
		s := def
		key := "schedule." + name
		if conf.IsSet(key) {
			s = Schedule{}
			if err := conf.UnmarshalKey(key, &s); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
		schedules[name] = s
	}
	return schedules, nil
}

// SyncController fires the reconcilers on their schedules.
type SyncController struct {
	runner    Runner
	schedules map[string]Schedule
	loc       *time.Location
	logger    *log.Logger

	lock      sync.Mutex
	scheduler *gocron.Scheduler
	cancel    context.CancelFunc
}

func NewSyncController(runner *service.Tasks, schedules map[string]Schedule, opts *service.Options, logger *log.Logger) *SyncController {
	return newSyncController(runner, schedules, opts.Location, logger)
}

func newSyncController(runner Runner, schedules map[string]Schedule, loc *time.Location, logger *log.Logger) *SyncController {
	if loc == nil {
		loc = time.Local
	}
	return &SyncController{
		runner:    runner,
		schedules: schedules,
		loc:       loc,
		logger:    logger,
	}
}

// Start registers every scheduled task and blocks until ctx is done.
func (c *SyncController) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	scheduler, err := c.build(runCtx)
	if err != nil {
		cancel()
		return err
	}

	c.lock.Lock()
	c.scheduler = scheduler
	c.cancel = cancel
	c.lock.Unlock()

	c.logger.Info("starting sync controller", zap.Int("jobs", len(scheduler.Jobs())))
	scheduler.StartAsync()
	<-runCtx.Done()
	return nil
}

func (c *SyncController) build(ctx context.Context) (*gocron.Scheduler, error) {
	scheduler := gocron.NewScheduler(c.loc)
	scheduler.SingletonModeAll()
	for _, name := range c.runner.Names() {
		sched, ok := c.schedules[name]
		if !ok || !sched.enabled() {
			c.logger.Info("task not scheduled", zap.String("task", name))
			continue
		}
		if sched.Cron != "" {
			scheduler.Cron(sched.Cron)
		} else {
			scheduler.Every(sched.Every)
		}
		if !sched.RunOnStart {
			scheduler.WaitForSchedule()
		}
		if _, err := scheduler.Tag(name).Do(c.fire, ctx, name); err != nil {
			return nil, fmt.Errorf("schedule %s: %w", name, err)
		}
		c.logger.Info("task scheduled", zap.String("task", name), zap.String("cron", sched.Cron), zap.Duration("every", sched.Every))
	}
	return scheduler, nil
}

func (c *SyncController) fire(ctx context.Context, name string) {
	ctx = c.logger.WithValue(ctx, zap.String("task", name))
	if err := c.runner.Run(ctx, name); errors.Is(err, service.ErrTaskRunning) {
		c.logger.WithContext(ctx).Info("previous run still active, skipping")
	}
}

func (c *SyncController) Stop(ctx context.Context) error {
	c.logger.Info("stopping sync controller")
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.scheduler != nil {
		c.scheduler.Stop()
		c.scheduler = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	return nil
}
