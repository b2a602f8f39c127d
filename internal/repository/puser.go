package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type PUserRepository interface {
	Create(ctx context.Context, user *model.PUser) error
	Update(ctx context.Context, user *model.PUser) error
	GetByUserId(ctx context.Context, userID string) (*model.PUser, error)
	GetByUsername(ctx context.Context, username string) (*model.PUser, error)
}

func NewPUserRepository(
	repository *Repository,
) PUserRepository {
	return &pUserRepository{
		Repository: repository,
	}
}

type pUserRepository struct {
	*Repository
}

func (r *pUserRepository) Create(ctx context.Context, user *model.PUser) error {
	return r.DB(ctx).Create(user).Error
}

func (r *pUserRepository) Update(ctx context.Context, user *model.PUser) error {
	return r.DB(ctx).Save(user).Error
}

func (r *pUserRepository) GetByUserId(ctx context.Context, userID string) (*model.PUser, error) {
	var user model.PUser
	if err := r.DB(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *pUserRepository) GetByUsername(ctx context.Context, username string) (*model.PUser, error) {
	var user model.PUser
	if err := r.DB(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
