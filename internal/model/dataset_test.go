package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name       string
		fromMode   Mode
		fromStatus Status
		toMode     Mode
		toStatus   Status
		want       bool
	}{
		{"intransit to imported", ModeInTransit, StatusOngoing, ModeImported, StatusOngoing, true},
		{"import finishes", ModeImported, StatusOngoing, ModeImported, StatusSuccess, true},
		{"import fails", ModeImported, StatusOngoing, ModeImported, StatusFailed, true},
		{"imported success to ingested", ModeImported, StatusSuccess, ModeIngested, StatusOngoing, true},
		{"same state", ModeIngested, StatusSuccess, ModeIngested, StatusSuccess, true},
		{"skip imported", ModeInTransit, StatusOngoing, ModeIngested, StatusOngoing, false},
		{"ingest from failed import", ModeImported, StatusFailed, ModeIngested, StatusOngoing, false},
		{"ingest from ongoing import", ModeImported, StatusOngoing, ModeIngested, StatusOngoing, false},
		{"backwards", ModeIngested, StatusSuccess, ModeImported, StatusSuccess, false},
		{"failed is terminal", ModeImported, StatusFailed, ModeImported, StatusSuccess, false},
		{"success is terminal", ModeIngested, StatusSuccess, ModeIngested, StatusFailed, false},
		{"unknown mode", ModeImported, StatusSuccess, Mode("archived"), StatusOngoing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.fromMode, tt.fromStatus, tt.toMode, tt.toStatus))
		})
	}
}

func TestResetTarget(t *testing.T) {
	mode, status, ok := ResetTarget(ModeImported, StatusFailed)
	assert.True(t, ok)
	assert.Equal(t, ModeImported, mode)
	assert.Equal(t, StatusOngoing, status)

	mode, status, ok = ResetTarget(ModeIngested, StatusFailed)
	assert.True(t, ok)
	assert.Equal(t, ModeImported, mode)
	assert.Equal(t, StatusSuccess, status)

	_, _, ok = ResetTarget(ModeIngested, StatusSuccess)
	assert.False(t, ok)
	_, _, ok = ResetTarget(ModeInTransit, StatusFailed)
	assert.False(t, ok)
}

func TestFileIngestable(t *testing.T) {
	assert.False(t, (&File{Mode: ModeIngested, Status: StatusSuccess}).Ingestable())
	assert.False(t, (&File{Mode: ModeInTransit, Status: StatusSuccess}).Ingestable())
	assert.False(t, (&File{Mode: ModeImported, Status: StatusOngoing}).Ingestable())
	assert.True(t, (&File{Mode: ModeImported, Status: StatusSuccess}).Ingestable())
	assert.True(t, (&File{Mode: ModeIngested, Status: StatusFailed}).Ingestable())
}

func TestBookingEnd(t *testing.T) {
	loc := time.FixedZone("AEST", 10*60*60)

	b := &Booking{Id: 1, BookingDate: "2024-03-05", StartTime: "09:30:00", Duration: 90}
	end, err := b.End(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 11, 0, 0, 0, loc), end)

	_, err = (&Booking{Id: 2, BookingDate: "05/03/2024"}).End(loc)
	assert.Error(t, err)
}

func TestSyncLockHeld(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.True(t, (&SyncLock{Holder: "a", ExpiresAt: &future}).Held(now))
	assert.False(t, (&SyncLock{Holder: "a", ExpiresAt: &past}).Held(now))
	assert.False(t, (&SyncLock{ExpiresAt: &future}).Held(now))
	var l *SyncLock
	assert.False(t, l.Held(now))
}
