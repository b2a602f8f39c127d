package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListByUserId(ctx context.Context, userID int64) ([]*model.User, error)
	ListByUsernames(ctx context.Context, usernames []string) ([]*model.User, error)
	Upsert(ctx context.Context, user *model.User) (bool, error)
	UpdateUserId(ctx context.Context, username string, userID int64) error
	Count(ctx context.Context) (int64, error)
}

func NewUserRepository(
	repository *Repository,
) UserRepository {
	return &userRepository{
		Repository: repository,
	}
}

type userRepository struct {
	*Repository
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.DB(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListByUserId(ctx context.Context, userID int64) ([]*model.User, error) {
	var users []*model.User
	if err := r.DB(ctx).Where("userid = ?", userID).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListByUsernames(ctx context.Context, usernames []string) ([]*model.User, error) {
	var users []*model.User
	if len(usernames) == 0 {
		return users, nil
	}
	if err := r.DB(ctx).Where("username IN ?", usernames).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Upsert keeps stored name and email when the incoming record leaves them empty.
func (r *userRepository) Upsert(ctx context.Context, user *model.User) (bool, error) {
	current, err := r.GetByUsername(ctx, user.Username)
	if err != nil {
		return false, err
	}
	if current == nil {
		return true, r.DB(ctx).Create(user).Error
	}
	var exclude []string
	if user.Name == "" {
		exclude = append(exclude, "name")
	}
	if user.Email == "" {
		exclude = append(exclude, "email")
	}
	if user.UserId == 0 {
		exclude = append(exclude, "userid")
	}
	return patch(r.DB(ctx), current, user, exclude...)
}

func (r *userRepository) UpdateUserId(ctx context.Context, username string, userID int64) error {
	return r.DB(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("userid", userID).Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB(ctx).Model(&model.User{}).Count(&total).Error
	return total, err
}
