package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	GetByName(ctx context.Context, name string) (*model.Collection, error)
	Exists(ctx context.Context, name string) (bool, error)
	// Create inserts the collection together with its caches.
	Create(ctx context.Context, collection *model.Collection) error
}

func NewCollectionRepository(
	repository *Repository,
) CollectionRepository {
	return &collectionRepository{
		Repository: repository,
	}
}

type collectionRepository struct {
	*Repository
}

func (r *collectionRepository) GetByName(ctx context.Context, name string) (*model.Collection, error) {
	var collection model.Collection
	err := r.DB(ctx).
		Preload("Caches", func(db *gorm.DB) *gorm.DB {
			return db.Order("priority DESC")
		}).
		Where("name = ?", name).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.DB(ctx).Model(&model.Collection{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) Create(ctx context.Context, collection *model.Collection) error {
	return r.Transaction(ctx, func(ctx context.Context) error {
		return r.DB(ctx).Create(collection).Error
	})
}
