package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type CoreRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Core, error)
	List(ctx context.Context) ([]*model.Core, error)
	Upsert(ctx context.Context, core *model.Core) (bool, error)
}

func NewCoreRepository(
	repository *Repository,
) CoreRepository {
	return &coreRepository{
		Repository: repository,
	}
}

type coreRepository struct {
	*Repository
}

func (r *coreRepository) GetByID(ctx context.Context, id int64) (*model.Core, error) {
	var core model.Core
	if err := r.DB(ctx).Where("id = ?", id).First(&core).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &core, nil
}

func (r *coreRepository) List(ctx context.Context) ([]*model.Core, error) {
	var cores []*model.Core
	if err := r.DB(ctx).Order("id ASC").Find(&cores).Error; err != nil {
		return nil, err
	}
	return cores, nil
}

// Upsert inserts the core or writes its changed columns. It reports whether a write happened.
func (r *coreRepository) Upsert(ctx context.Context, core *model.Core) (bool, error) {
	current, err := r.GetByID(ctx, core.Id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return true, r.DB(ctx).Create(core).Error
	}
	return patch(r.DB(ctx), current, core)
}
