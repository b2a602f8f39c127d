package repository

import (
	"context"
	"errors"
	"time"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

// ModeStatusCount is one bucket of CountByModeStatus.
type ModeStatusCount struct {
	Mode   model.Mode
	Status model.Status
	Count  int64
}

type DatasetRepository interface {
	// Create inserts the dataset and its files.
	Create(ctx context.Context, dataset *model.Dataset) error
	GetByID(ctx context.Context, id int64) (*model.Dataset, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	// UpdateModeStatus stamps finished whenever status leaves ongoing.
	UpdateModeStatus(ctx context.Context, id int64, mode model.Mode, status model.Status) error
	UpdateRepositoryIDs(ctx context.Context, id int64, space, datasetID string) error
	ListByModeStatus(ctx context.Context, mode model.Mode, status model.Status) ([]*model.Dataset, error)
	ListFailedSince(ctx context.Context, since time.Time) ([]*model.Dataset, error)
	ListWithPagination(ctx context.Context, page, pageSize int, mode model.Mode, status model.Status) ([]*model.Dataset, int64, error)
	CountByModeStatus(ctx context.Context) ([]ModeStatusCount, error)
}

func NewDatasetRepository(
	repository *Repository,
) DatasetRepository {
	return &datasetRepository{
		Repository: repository,
	}
}

type datasetRepository struct {
	*Repository
}

func (r *datasetRepository) Create(ctx context.Context, dataset *model.Dataset) error {
	return r.Transaction(ctx, func(ctx context.Context) error {
		return r.DB(ctx).Create(dataset).Error
	})
}

func (r *datasetRepository) GetByID(ctx context.Context, id int64) (*model.Dataset, error) {
	var dataset model.Dataset
	err := r.DB(ctx).
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ?", id).
		First(&dataset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dataset, nil
}

func (r *datasetRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.DB(ctx).Model(&model.Dataset{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *datasetRepository) UpdateModeStatus(ctx context.Context, id int64, mode model.Mode, status model.Status) error {
	fields := map[string]interface{}{
		"mode":   mode,
		"status": status,
	}
	if status != model.StatusOngoing {
		fields["finished"] = time.Now()
	}
	return r.Update(ctx, id, fields)
}

func (r *datasetRepository) UpdateRepositoryIDs(ctx context.Context, id int64, space, datasetID string) error {
	fields := map[string]interface{}{}
	if space != "" {
		fields["space"] = space
	}
	if datasetID != "" {
		fields["datasetid"] = datasetID
	}
	return r.Update(ctx, id, fields)
}

func (r *datasetRepository) ListByModeStatus(ctx context.Context, mode model.Mode, status model.Status) ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := r.DB(ctx).
		Where("mode = ? AND status = ?", mode, status).
		Order("id ASC").
		Find(&datasets).Error
	if err != nil {
		return nil, err
	}
	return datasets, nil
}

// ListFailedSince returns failed datasets received or modified at or after since.
func (r *datasetRepository) ListFailedSince(ctx context.Context, since time.Time) ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := r.DB(ctx).
		Where("status = ?", model.StatusFailed).
		Where("modified >= ? OR received >= ?", since, since).
		Order("id DESC").
		Find(&datasets).Error
	if err != nil {
		return nil, err
	}
	return datasets, nil
}

func (r *datasetRepository) ListWithPagination(ctx context.Context, page, pageSize int, mode model.Mode, status model.Status) ([]*model.Dataset, int64, error) {
	var datasets []*model.Dataset
	var total int64

	query := r.DB(ctx).Model(&model.Dataset{})
	if mode != "" {
		query = query.Where("mode = ?", mode)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&datasets).Error; err != nil {
		return nil, 0, err
	}
	return datasets, total, nil
}

func (r *datasetRepository) CountByModeStatus(ctx context.Context) ([]ModeStatusCount, error) {
	var counts []ModeStatusCount
	err := r.DB(ctx).Model(&model.Dataset{}).
		Select("mode, status, COUNT(*) AS count").
		Group("mode, status").
		Order("mode, status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
