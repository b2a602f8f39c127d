package repository

import (
	"context"
	"testing"
	"time"

	"pitschi/internal/model"
	"pitschi/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSyncLockRepository_AcquireRelease(t *testing.T) {
	repo := NewSyncLockRepository(newTestRepository(t))
	ctx := context.Background()
	now := time.Now()

	ok, err := repo.Acquire(ctx, "projects", "h1", now, time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Acquire(ctx, "projects", "h2", now.Add(time.Minute), time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	// releasing someone else's lock is a no-op
	require.NoError(t, repo.Release(ctx, "projects", "h2"))
	lock, err := repo.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, "h1", lock.Holder)

	require.NoError(t, repo.Release(ctx, "projects", "h1"))
	ok, err = repo.Acquire(ctx, "projects", "h2", now.Add(time.Minute), time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSyncLockRepository_TakesOverExpired(t *testing.T) {
	repo := NewSyncLockRepository(newTestRepository(t))
	ctx := context.Background()
	now := time.Now()

	ok, err := repo.Acquire(ctx, "projects", "crashed", now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Acquire(ctx, "projects", "fresh", now, time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Clear(ctx, "projects"))
	lock, err := repo.Get(ctx, "projects")
	require.NoError(t, err)
	assert.False(t, lock.Held(now))
}

func TestSyncLockRepository_AcquireLocksRow(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	repo := NewSyncLockRepository(NewRepository(log.NewNop(), db, nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_lock`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `sync_lock` WHERE name = \\?.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"name", "holder", "acquired_at", "expires_at"}).
			AddRow("projects", "", nil, nil))
	mock.ExpectExec("UPDATE `sync_lock` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.Acquire(context.Background(), "projects", "h1", time.Now(), time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncLockRepository_AcquireHeldWritesNothing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	repo := NewSyncLockRepository(NewRepository(log.NewNop(), db, nil))

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_lock`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `sync_lock` WHERE name = \\?.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"name", "holder", "acquired_at", "expires_at"}).
			AddRow("projects", "other", now, now.Add(time.Hour)))
	mock.ExpectCommit()

	ok, err := repo.Acquire(context.Background(), "projects", "h1", now, time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSystemStatRepository_Set(t *testing.T) {
	repo := NewSystemStatRepository(newTestRepository(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, model.StatSyncingProjects, model.StatTrue))
	require.NoError(t, repo.Set(ctx, model.StatSyncingProjects, model.StatFalse))

	stat, err := repo.Get(ctx, model.StatSyncingProjects)
	require.NoError(t, err)
	assert.Equal(t, model.StatFalse, stat.Value)

	stats, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 1)
}
