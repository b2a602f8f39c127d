package service

import (
	"testing"
	"time"

	"pitschi/internal/model"
	"pitschi/pkg/ppms"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingDay = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func TestSyncDay_WritesReferencedRowsFirst(t *testing.T) {
	env := newTestEnv(t)
	env.facility.EXPECT().ListBookings(gomock.Any(), bookingDay).Return([]ppms.Booking{
		{SessionID: 100, Date: "2024-03-05", StartTime: "9:00", Duration: 90, System: "LSM 880", CoreID: 2},
	}, nil)
	env.facility.EXPECT().ListTrainingSessions(gomock.Any(), bookingDay).Return(nil, nil)
	env.facility.EXPECT().GetBookingDetail(gomock.Any(), int64(2), int64(100)).Return(&ppms.BookingDetail{
		SessionID: 100, SystemID: 17, SystemName: "LSM 880", SystemType: "Confocal",
		UserID: 1, ProjectID: 10, AssistantID: 2, Status: "Approved",
	}, nil)
	// alice books but is not a listed member of the project
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{cellImaging}, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{
		{ID: 1, Login: "alice", Email: "alice@example.org"},
		{ID: 2, Login: "staff", Email: "staff@example.org"},
	}, nil)
	env.facility.EXPECT().GetProjectCollection(gomock.Any(), int64(2), int64(10)).Return("", nil)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return(nil, nil)

	require.NoError(t, env.bookingSync().SyncDay(env.ctx, bookingDay))

	booking, err := env.bookings.GetByID(env.ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, "2024-03-05", booking.BookingDate)
	assert.Equal(t, "09:00:00", booking.StartTime)
	assert.Equal(t, 90, booking.Duration)
	assert.Equal(t, "Approved", booking.Status)
	assert.Equal(t, ptr(int64(17)), booking.SystemId)
	assert.Equal(t, ptr(int64(10)), booking.ProjectId)
	assert.Equal(t, ptr("alice"), booking.Username)
	assert.Equal(t, ptr("staff"), booking.Assistant)

	system, err := env.systems.GetByID(env.ctx, 17)
	require.NoError(t, err)
	assert.Equal(t, "LSM 880", system.Name)
	assert.Equal(t, int64(2), system.CoreId)

	assert.Equal(t, map[string]bool{"alice": true, "staff": true}, env.memberState(t, 10))
}

func TestSyncDay_TrainingOverridesBooker(t *testing.T) {
	env := newTestEnv(t)
	env.facility.EXPECT().ListBookings(gomock.Any(), bookingDay).Return([]ppms.Booking{
		{SessionID: 100, StartTime: "14:30:00", Duration: 60, CoreID: 2},
	}, nil)
	env.facility.EXPECT().ListTrainingSessions(gomock.Any(), bookingDay).Return([]ppms.TrainingSession{
		{SessionID: 100, UserID: 3, ProjectID: 11, Organiser: "Trainer T", Attendee: "Trainer T"},
		{SessionID: 100, UserID: 4, ProjectID: 12, Organiser: "Trainer T", Attendee: "Student S"},
	}, nil)
	env.facility.EXPECT().GetBookingDetail(gomock.Any(), int64(2), int64(100)).Return(&ppms.BookingDetail{
		SessionID: 100, UserID: 1, ProjectID: 10, Status: "Approved",
	}, nil)
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{
		{ID: 11, CoreID: 2, Name: "Training"},
	}, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{{ID: 3, Login: "trainer"}}, nil)
	env.facility.EXPECT().GetProjectCollection(gomock.Any(), int64(2), int64(11)).Return("", nil)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(11)).Return(nil, nil)

	require.NoError(t, env.bookingSync().SyncDay(env.ctx, bookingDay))

	booking, err := env.bookings.GetByID(env.ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, ptr(int64(11)), booking.ProjectId)
	assert.Equal(t, ptr("trainer"), booking.Username)
	assert.Nil(t, booking.SystemId)
}

func TestSyncDay_CancelsOnlyTheSyncedDay(t *testing.T) {
	env := newTestEnv(t)
	for _, b := range []*model.Booking{
		{Id: 200, BookingDate: "2024-03-05", StartTime: "10:00:00", Duration: 30},
		{Id: 300, BookingDate: "2024-03-04", StartTime: "10:00:00", Duration: 30},
		{Id: 100, BookingDate: "2024-03-05", StartTime: "08:00:00", Duration: 30},
	} {
		_, err := env.bookings.Upsert(env.ctx, b)
		require.NoError(t, err)
	}

	env.facility.EXPECT().ListBookings(gomock.Any(), bookingDay).Return([]ppms.Booking{
		{SessionID: 100, StartTime: "08:00", Duration: 30, CoreID: 2},
	}, nil)
	env.facility.EXPECT().ListTrainingSessions(gomock.Any(), bookingDay).Return(nil, assert.AnError)
	// a session whose detail cannot be read still counts as active
	env.facility.EXPECT().GetBookingDetail(gomock.Any(), int64(2), int64(100)).Return(nil, nil)

	require.NoError(t, env.bookingSync().SyncDay(env.ctx, bookingDay))

	for id, cancelled := range map[int64]bool{100: false, 200: true, 300: false} {
		b, err := env.bookings.GetByID(env.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, cancelled, b.Cancelled, "booking %d", id)
	}
}

func TestSyncToday_UsesFacilityLocalDate(t *testing.T) {
	env := newTestEnv(t)
	brisbane, err := time.LoadLocation("Australia/Brisbane")
	require.NoError(t, err)
	env.svc.opts.Location = brisbane

	s := env.bookingSync()
	// 2024-03-05 20:00 UTC is already 2024-03-06 in Brisbane
	s.now = func() time.Time { return time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC) }
	env.facility.EXPECT().ListBookings(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, day time.Time) ([]ppms.Booking, error) {
		assert.Equal(t, "2024-03-06", day.Format(model.BookingDateLayout))
		return nil, nil
	})
	env.facility.EXPECT().ListTrainingSessions(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, s.SyncToday(env.ctx))
}

func TestNormalizeStartTime(t *testing.T) {
	for in, want := range map[string]string{
		"9:00":     "09:00:00",
		"09:05:30": "09:05:30",
		" 14:30 ":  "14:30:00",
		"2:15 PM":  "14:15:00",
		"garbage":  "garbage",
	} {
		assert.Equal(t, want, normalizeStartTime(in), in)
	}
}
