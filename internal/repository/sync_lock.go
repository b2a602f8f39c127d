package repository

import (
	"context"
	"errors"
	"time"

	"pitschi/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SyncLockRepository interface {
	// Acquire takes the named lock for holder until now+ttl. A lock whose
	// expiry has passed is taken over. It reports whether holder owns the lock.
	Acquire(ctx context.Context, name, holder string, now time.Time, ttl time.Duration) (bool, error)
	// Release clears the lock only when holder still owns it.
	Release(ctx context.Context, name, holder string) error
	// Clear drops any holder.
	Clear(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*model.SyncLock, error)
}

func NewSyncLockRepository(
	repository *Repository,
) SyncLockRepository {
	return &syncLockRepository{
		Repository: repository,
	}
}

type syncLockRepository struct {
	*Repository
}

func (r *syncLockRepository) Acquire(ctx context.Context, name, holder string, now time.Time, ttl time.Duration) (bool, error) {
	acquired := false
	err := r.Transaction(ctx, func(ctx context.Context) error {
		if err := r.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.SyncLock{Name: name}).Error; err != nil {
			return err
		}

		var lock model.SyncLock
		if err := r.DB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&lock).Error; err != nil {
			return err
		}
		if lock.Held(now) && lock.Holder != holder {
			return nil
		}

		expires := now.Add(ttl)
		if err := r.DB(ctx).Model(&model.SyncLock{}).
			Where("name = ?", name).
			Updates(map[string]interface{}{
				"holder":      holder,
				"acquired_at": now,
				"expires_at":  expires,
			}).Error; err != nil {
			return err
		}
		acquired = true
		return nil
	})
	return acquired, err
}

func (r *syncLockRepository) Release(ctx context.Context, name, holder string) error {
	return r.DB(ctx).Model(&model.SyncLock{}).
		Where("name = ? AND holder = ?", name, holder).
		Updates(map[string]interface{}{
			"holder":     "",
			"expires_at": nil,
		}).Error
}

func (r *syncLockRepository) Clear(ctx context.Context, name string) error {
	return r.DB(ctx).Model(&model.SyncLock{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"holder":     "",
			"expires_at": nil,
		}).Error
}

func (r *syncLockRepository) Get(ctx context.Context, name string) (*model.SyncLock, error) {
	var lock model.SyncLock
	if err := r.DB(ctx).Where("name = ?", name).First(&lock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lock, nil
}
