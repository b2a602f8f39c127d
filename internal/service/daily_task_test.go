package service

import (
	"testing"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTaskService(t *testing.T) {
	env := newTestEnv(t)
	s := NewDailyTaskService(env.svc, env.dailyTasks, env.systems)

	_, err := s.CreateDailyTask(env.ctx, &v1.CreateDailyTaskRequest{SystemId: 17})
	assert.ErrorIs(t, err, v1.ErrSystemNotFound)

	_, err = env.systems.Upsert(env.ctx, &model.System{Id: 17, CoreId: 2, Name: "LSM 880"})
	require.NoError(t, err)
	task, err := s.CreateDailyTask(env.ctx, &v1.CreateDailyTaskRequest{SystemId: 17})
	require.NoError(t, err)
	assert.Equal(t, "ongoing", task.Status)

	done, err := s.CompleteDailyTask(env.ctx, task.Id, &v1.CompleteDailyTaskRequest{Status: "success"})
	require.NoError(t, err)
	assert.Equal(t, "success", done.Status)
	assert.NotNil(t, done.Finished)

	_, err = s.CompleteDailyTask(env.ctx, task.Id, &v1.CompleteDailyTaskRequest{Status: "failed"})
	assert.ErrorIs(t, err, v1.ErrInvalidTransition)
	_, err = s.CompleteDailyTask(env.ctx, 999, &v1.CompleteDailyTaskRequest{Status: "failed"})
	assert.ErrorIs(t, err, v1.ErrDailyTaskNotFound)

	list, err := s.ListDailyTasks(env.ctx, &v1.ListDailyTasksRequest{SystemId: 17})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "success", list[0].Status)
}
