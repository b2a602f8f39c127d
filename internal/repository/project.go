package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*model.Project, error)
	ListWithPagination(ctx context.Context, page, pageSize int, coreID *int64, active *bool) ([]*model.Project, int64, error)
	Upsert(ctx context.Context, project *model.Project) (bool, error)
	UpdateCollection(ctx context.Context, id int64, collection *string) error
	Count(ctx context.Context) (int64, error)
}

func NewProjectRepository(
	repository *Repository,
) ProjectRepository {
	return &projectRepository{
		Repository: repository,
	}
}

type projectRepository struct {
	*Repository
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	if err := r.DB(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Project, error) {
	var projects []*model.Project
	if len(ids) == 0 {
		return projects, nil
	}
	if err := r.DB(ctx).Where("id IN ?", ids).Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListWithPagination(ctx context.Context, page, pageSize int, coreID *int64, active *bool) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	query := r.DB(ctx).Model(&model.Project{})
	if coreID != nil && *coreID > 0 {
		query = query.Where("coreid = ?", *coreID)
	}
	if active != nil {
		query = query.Where("active = ?", *active)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Upsert inserts the project or writes the columns that changed. The collection
// link is owned by UpdateCollection and never touched here.
func (r *projectRepository) Upsert(ctx context.Context, project *model.Project) (bool, error) {
	current, err := r.GetByID(ctx, project.Id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return true, r.DB(ctx).Omit("collection").Create(project).Error
	}
	return patch(r.DB(ctx), current, project, "collection")
}

func (r *projectRepository) UpdateCollection(ctx context.Context, id int64, collection *string) error {
	return r.DB(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("collection", collection).Error
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB(ctx).Model(&model.Project{}).Count(&total).Error
	return total, err
}
