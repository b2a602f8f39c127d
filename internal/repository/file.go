package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type FileRepository interface {
	GetByPath(ctx context.Context, datasetID int64, path string) (*model.File, error)
	ListByDataset(ctx context.Context, datasetID int64) ([]*model.File, error)
	Create(ctx context.Context, file *model.File) error
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
}

func NewFileRepository(
	repository *Repository,
) FileRepository {
	return &fileRepository{
		Repository: repository,
	}
}

type fileRepository struct {
	*Repository
}

func (r *fileRepository) GetByPath(ctx context.Context, datasetID int64, path string) (*model.File, error) {
	var file model.File
	err := r.DB(ctx).
		Where("dataset_id = ? AND path = ?", datasetID, path).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) ListByDataset(ctx context.Context, datasetID int64) ([]*model.File, error) {
	var files []*model.File
	if err := r.DB(ctx).Where("dataset_id = ?", datasetID).Order("id ASC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) Create(ctx context.Context, file *model.File) error {
	return r.DB(ctx).Create(file).Error
}

func (r *fileRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.DB(ctx).Model(&model.File{}).
		Where("id = ?", id).
		Updates(fields).Error
}
