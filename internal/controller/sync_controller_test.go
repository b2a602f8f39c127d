package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"pitschi/internal/service"
	"pitschi/pkg/log"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu   sync.Mutex
	runs map[string]int
}

func (f *fakeRunner) Names() []string {
	return []string{service.TaskBookings, service.TaskIngest, service.TaskProjects}
}

func (f *fakeRunner) Run(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[name]++
	return nil
}

func (f *fakeRunner) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs[name]
}

func TestNewSchedules(t *testing.T) {
	conf := viper.New()
	conf.Set("schedule.ingest", map[string]interface{}{"every": "2m", "run_on_start": true})
	conf.Set("schedule.projects", map[string]interface{}{"cron": "30 3 * * 1"})

	schedules, err := NewSchedules(conf)
	require.NoError(t, err)
	assert.Equal(t, Schedule{Every: 2 * time.Minute, RunOnStart: true}, schedules[service.TaskIngest])
	assert.Equal(t, Schedule{Cron: "30 3 * * 1"}, schedules[service.TaskProjects])
	assert.Equal(t, defaultSchedules[service.TaskBookings], schedules[service.TaskBookings])
}

func TestSyncController_RunsOnStartOnly(t *testing.T) {
	runner := &fakeRunner{runs: map[string]int{}}
	c := newSyncController(runner, map[string]Schedule{
		service.TaskBookings: {Every: time.Hour, RunOnStart: true},
		service.TaskIngest:   {Every: time.Hour},
	}, time.UTC, log.NewNop())

	done := make(chan error)
	go func() { done <- c.Start(context.Background()) }()

	require.Eventually(t, func() bool { return runner.count(service.TaskBookings) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, runner.count(service.TaskIngest))
	assert.Equal(t, 0, runner.count(service.TaskProjects))

	require.NoError(t, c.Stop(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not stop")
	}
}

func TestSyncController_RejectsBadCron(t *testing.T) {
	runner := &fakeRunner{runs: map[string]int{}}
	c := newSyncController(runner, map[string]Schedule{
		service.TaskProjects: {Cron: "not a cron"},
	}, time.UTC, log.NewNop())
	assert.Error(t, c.Start(context.Background()))
}
