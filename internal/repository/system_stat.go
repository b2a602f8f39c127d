package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SystemStatRepository interface {
	Get(ctx context.Context, name string) (*model.SystemStat, error)
	// Set creates the stat or overwrites its value.
	Set(ctx context.Context, name, value string) error
	List(ctx context.Context) ([]*model.SystemStat, error)
}

func NewSystemStatRepository(
	repository *Repository,
) SystemStatRepository {
	return &systemStatRepository{
		Repository: repository,
	}
}

type systemStatRepository struct {
	*Repository
}

func (r *systemStatRepository) Get(ctx context.Context, name string) (*model.SystemStat, error) {
	var stat model.SystemStat
	if err := r.DB(ctx).Where("name = ?", name).First(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}

func (r *systemStatRepository) Set(ctx context.Context, name, value string) error {
	stat := &model.SystemStat{Name: name, Value: value, IsString: true}
	return r.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(stat).Error
}

func (r *systemStatRepository) List(ctx context.Context) ([]*model.SystemStat, error) {
	var stats []*model.SystemStat
	if err := r.DB(ctx).Order("name ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
