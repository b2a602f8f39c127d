package repository

import (
	"context"
	"errors"
	"time"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type DailyTaskRepository interface {
	Create(ctx context.Context, task *model.DailyTask) error
	GetByID(ctx context.Context, id int64) (*model.DailyTask, error)
	ListBySystem(ctx context.Context, systemID int64, limit int) ([]*model.DailyTask, error)
	Complete(ctx context.Context, id int64, status model.Status, finished time.Time) error
}

func NewDailyTaskRepository(
	repository *Repository,
) DailyTaskRepository {
	return &dailyTaskRepository{
		Repository: repository,
	}
}

type dailyTaskRepository struct {
	*Repository
}

func (r *dailyTaskRepository) Create(ctx context.Context, task *model.DailyTask) error {
	return r.DB(ctx).Create(task).Error
}

func (r *dailyTaskRepository) GetByID(ctx context.Context, id int64) (*model.DailyTask, error) {
	var task model.DailyTask
	if err := r.DB(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *dailyTaskRepository) ListBySystem(ctx context.Context, systemID int64, limit int) ([]*model.DailyTask, error) {
	var tasks []*model.DailyTask
	query := r.DB(ctx).Where("systemid = ?", systemID).Order("start DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *dailyTaskRepository) Complete(ctx context.Context, id int64, status model.Status, finished time.Time) error {
	return r.DB(ctx).Model(&model.DailyTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   status,
			"finished": finished,
		}).Error
}
