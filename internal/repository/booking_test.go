package repository

import (
	"context"
	"testing"

	"pitschi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_UpsertAndCancel(t *testing.T) {
	repo := NewBookingRepository(newTestRepository(t))
	ctx := context.Background()
	user := "alice"
	system := int64(3)

	for _, id := range []int64{1, 2, 3} {
		wrote, err := repo.Upsert(ctx, &model.Booking{
			Id:          id,
			BookingDate: "2026-10-16",
			StartTime:   "09:00:00",
			Duration:    60,
			SystemId:    &system,
			Username:    &user,
		})
		require.NoError(t, err)
		assert.True(t, wrote)
	}
	_, err := repo.Upsert(ctx, &model.Booking{Id: 4, BookingDate: "2026-10-15"})
	require.NoError(t, err)

	wrote, err := repo.Upsert(ctx, &model.Booking{
		Id: 1, BookingDate: "2026-10-16", StartTime: "09:00:00", Duration: 60, SystemId: &system, Username: &user,
	})
	require.NoError(t, err)
	assert.False(t, wrote)

	ids, err := repo.ListActiveIDsByDate(ctx, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	n, err := repo.CancelByIDs(ctx, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ids, err = repo.ListActiveIDsByDate(ctx, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)

	list, err := repo.ListByDate(ctx, "2026-10-16", &system)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	count, err := repo.CountByDate(ctx, "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBookingRepository_UpsertKeepsResolvedUsers(t *testing.T) {
	repo := NewBookingRepository(newTestRepository(t))
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &model.Booking{
		Id: 7, BookingDate: "2026-10-16", StartTime: "09:00:00", Duration: 60,
		Username: ptr("alice"), Assistant: ptr("staff"),
	})
	require.NoError(t, err)

	wrote, err := repo.Upsert(ctx, &model.Booking{Id: 7, BookingDate: "2026-10-16", StartTime: "09:00:00", Duration: 90})
	require.NoError(t, err)
	assert.True(t, wrote)

	b, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 90, b.Duration)
	assert.Equal(t, ptr("alice"), b.Username)
	assert.Equal(t, ptr("staff"), b.Assistant)
}
