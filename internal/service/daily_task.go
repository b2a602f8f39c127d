package service

import (
	"context"
	"time"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"

	"go.uber.org/zap"
)

// DailyTaskService records per-instrument housekeeping runs reported by acquisition clients.
type DailyTaskService interface {
	CreateDailyTask(ctx context.Context, req *v1.CreateDailyTaskRequest) (*v1.DailyTaskItem, error)
	CompleteDailyTask(ctx context.Context, id int64, req *v1.CompleteDailyTaskRequest) (*v1.DailyTaskItem, error)
	ListDailyTasks(ctx context.Context, req *v1.ListDailyTasksRequest) ([]v1.DailyTaskItem, error)
}

func NewDailyTaskService(
	service *Service,
	dailyTaskRepo repository.DailyTaskRepository,
	systemRepo repository.SystemRepository,
) DailyTaskService {
	return &dailyTaskService{
		Service:       service,
		dailyTaskRepo: dailyTaskRepo,
		systemRepo:    systemRepo,
	}
}

type dailyTaskService struct {
	*Service
	dailyTaskRepo repository.DailyTaskRepository
	systemRepo    repository.SystemRepository
}

func (s *dailyTaskService) CreateDailyTask(ctx context.Context, req *v1.CreateDailyTaskRequest) (*v1.DailyTaskItem, error) {
	system, err := s.systemRepo.GetByID(ctx, req.SystemId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get system", zap.Int64("system_id", req.SystemId), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if system == nil {
		return nil, v1.ErrSystemNotFound
	}
	task := &model.DailyTask{
		SystemId: req.SystemId,
		Start:    time.Now(),
		Status:   model.StatusOngoing,
	}
	if err := s.dailyTaskRepo.Create(ctx, task); err != nil {
		s.logger.WithContext(ctx).Error("failed to create daily task", zap.Int64("system_id", req.SystemId), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	item := dailyTaskItem(task)
	return &item, nil
}

func (s *dailyTaskService) CompleteDailyTask(ctx context.Context, id int64, req *v1.CompleteDailyTaskRequest) (*v1.DailyTaskItem, error) {
	task, err := s.dailyTaskRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get daily task", zap.Int64("task_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if task == nil {
		return nil, v1.ErrDailyTaskNotFound
	}
	status := model.Status(req.Status)
	if task.Status != model.StatusOngoing {
		if task.Status == status {
			item := dailyTaskItem(task)
			return &item, nil
		}
		return nil, v1.ErrInvalidTransition
	}
	finished := time.Now()
	if err := s.dailyTaskRepo.Complete(ctx, id, status, finished); err != nil {
		s.logger.WithContext(ctx).Error("failed to complete daily task", zap.Int64("task_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	task.Status = status
	task.Finished = &finished
	item := dailyTaskItem(task)
	return &item, nil
}

func (s *dailyTaskService) ListDailyTasks(ctx context.Context, req *v1.ListDailyTasksRequest) ([]v1.DailyTaskItem, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	tasks, err := s.dailyTaskRepo.ListBySystem(ctx, req.SystemId, limit)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list daily tasks", zap.Int64("system_id", req.SystemId), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	items := make([]v1.DailyTaskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, dailyTaskItem(t))
	}
	return items, nil
}

func dailyTaskItem(t *model.DailyTask) v1.DailyTaskItem {
	return v1.DailyTaskItem{
		Id:       t.Id,
		SystemId: t.SystemId,
		Start:    t.Start,
		Finished: t.Finished,
		Status:   string(t.Status),
	}
}
