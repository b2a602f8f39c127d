package repository

import (
	"context"
	"testing"

	"pitschi/internal/model"
	"pitschi/pkg/log"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Core{},
		&model.System{},
		&model.Project{},
		&model.Collection{},
		&model.CollectionCache{},
		&model.User{},
		&model.UserProject{},
		&model.Booking{},
		&model.Dataset{},
		&model.File{},
		&model.DailyTask{},
		&model.SystemStat{},
		&model.SyncLock{},
		&model.PUser{},
	))
	return NewRepository(log.NewNop(), db, nil)
}

func TestTransaction_RollsBack(t *testing.T) {
	r := newTestRepository(t)
	users := NewUserRepository(r)
	ctx := context.Background()

	err := r.Transaction(ctx, func(ctx context.Context) error {
		_, err := users.Upsert(ctx, &model.User{Username: "alice", UserId: 1})
		require.NoError(t, err)
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	got, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTransaction_Nested(t *testing.T) {
	r := newTestRepository(t)
	users := NewUserRepository(r)
	ctx := context.Background()

	err := r.Transaction(ctx, func(ctx context.Context) error {
		return r.Transaction(ctx, func(ctx context.Context) error {
			_, err := users.Upsert(ctx, &model.User{Username: "bob", UserId: 2})
			return err
		})
	})
	require.NoError(t, err)

	got, err := users.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func ptr[T any](v T) *T {
	return &v
}
