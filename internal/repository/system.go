package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type SystemRepository interface {
	GetByID(ctx context.Context, id int64) (*model.System, error)
	GetByName(ctx context.Context, name string) (*model.System, error)
	List(ctx context.Context, coreID *int64) ([]*model.System, error)
	Upsert(ctx context.Context, system *model.System) (bool, error)
	UpdatePid(ctx context.Context, id int64, pid string) error
}

func NewSystemRepository(
	repository *Repository,
) SystemRepository {
	return &systemRepository{
		Repository: repository,
	}
}

type systemRepository struct {
	*Repository
}

func (r *systemRepository) GetByID(ctx context.Context, id int64) (*model.System, error) {
	var system model.System
	if err := r.DB(ctx).Where("id = ?", id).First(&system).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &system, nil
}

func (r *systemRepository) GetByName(ctx context.Context, name string) (*model.System, error) {
	var system model.System
	if err := r.DB(ctx).Where("name = ?", name).First(&system).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &system, nil
}

func (r *systemRepository) List(ctx context.Context, coreID *int64) ([]*model.System, error) {
	var systems []*model.System
	query := r.DB(ctx).Model(&model.System{})
	if coreID != nil {
		query = query.Where("coreid = ?", *coreID)
	}
	if err := query.Order("id ASC").Find(&systems).Error; err != nil {
		return nil, err
	}
	return systems, nil
}

// Upsert keeps an already known pid or core when the incoming record lacks them.
func (r *systemRepository) Upsert(ctx context.Context, system *model.System) (bool, error) {
	current, err := r.GetByID(ctx, system.Id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return true, r.DB(ctx).Create(system).Error
	}
	var exclude []string
	if system.Pid == "" {
		exclude = append(exclude, "pid")
	}
	if system.CoreId == 0 {
		exclude = append(exclude, "coreid")
	}
	return patch(r.DB(ctx), current, system, exclude...)
}

func (r *systemRepository) UpdatePid(ctx context.Context, id int64, pid string) error {
	return r.DB(ctx).Model(&model.System{}).
		Where("id = ?", id).
		Update("pid", pid).Error
}
