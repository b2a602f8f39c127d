package service

import (
	"testing"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetService_CreateRequiresBooking(t *testing.T) {
	f := newIngestFixture(t)
	s := f.datasetService(duringBooking)

	_, err := s.Create(f.ctx, &v1.CreateDatasetRequest{OriginalMachine: "pc", RelPathFromRootCollection: "x", Name: "x", BookingId: 999})
	assert.ErrorIs(t, err, v1.ErrBookingNotFound)

	_, err = s.Create(f.ctx, &v1.CreateDatasetRequest{OriginalMachine: "pc", RelPathFromRootCollection: "x", Name: "x", BookingId: 100, Mode: "archived"})
	assert.ErrorIs(t, err, v1.ErrInvalidMode)
}

func TestDatasetService_CreateDefaultsToInTransit(t *testing.T) {
	f := newIngestFixture(t)
	s := f.datasetService(duringBooking)

	detail, err := s.Create(f.ctx, &v1.CreateDatasetRequest{
		OriginalMachine:           "LSM880-PC",
		RelPathFromRootCollection: `LSM880\alice\run2`,
		Name:                      "run2",
		BookingId:                 100,
		Files: []v1.FileRequest{
			{Path: `raw\one.tif`, SizeKb: 10},
			{Path: `RAW\ONE.TIF`, SizeKb: 10},
			{Path: `raw\two.tif`, Mode: "imported", Status: "success"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "intransit", detail.Mode)
	assert.Equal(t, "ongoing", detail.Status)
	assert.NotNil(t, detail.Received)
	require.Len(t, detail.Files, 2)
	assert.Equal(t, "intransit", detail.Files[0].Mode)
	assert.Equal(t, "imported", detail.Files[1].Mode)
}

func TestDatasetService_CreateImportedSendsImportEmail(t *testing.T) {
	f := newIngestFixture(t)
	f.notifier.EXPECT().SendEmail(gomock.Any(), "alice@example.org", subjectImported, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _, body string) error {
			assert.Contains(t, body, "smb://rdm.example.org/Q0001/LSM880/alice/run2")
			assert.Contains(t, body, "cells")
			return nil
		})

	_, err := f.datasetService(duringBooking).Create(f.ctx, &v1.CreateDatasetRequest{
		OriginalMachine:           "LSM880-PC",
		NetworkPath:               `\\rdm.example.org\Q0001\LSM880\alice\run2`,
		RelPathFromRootCollection: `LSM880\alice\run2`,
		Name:                      "run2",
		BookingId:                 100,
		Mode:                      "imported",
		Status:                    "success",
	})
	require.NoError(t, err)
}

func TestDatasetService_UpdateFollowsLifecycle(t *testing.T) {
	f := newIngestFixture(t)
	s := f.datasetService(duringBooking)
	detail, err := s.Create(f.ctx, &v1.CreateDatasetRequest{
		OriginalMachine:           "LSM880-PC",
		RelPathFromRootCollection: `LSM880\alice\run2`,
		Name:                      "run2",
		BookingId:                 100,
		Files:                     []v1.FileRequest{{Path: `raw\one.tif`}},
	})
	require.NoError(t, err)

	// in transit -> imported/ongoing, matching the file case-insensitively
	detail, err = s.Update(f.ctx, detail.Id, &v1.UpdateDatasetRequest{
		Mode:   ptr("imported"),
		Status: ptr("ongoing"),
		Files: []v1.FileRequest{
			{Path: `RAW\ONE.TIF`, Mode: "imported", Status: "success", HashValue: "abc"},
			{Path: `raw\two.tif`, Mode: "imported", Status: "success"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "imported", detail.Mode)
	assert.Nil(t, detail.Finished)
	require.Len(t, detail.Files, 2)
	assert.Equal(t, `raw\one.tif`, detail.Files[0].Path)
	assert.Equal(t, "abc", detail.Files[0].HashValue)
	assert.Equal(t, "success", detail.Files[0].Status)

	f.notifier.EXPECT().SendEmail(gomock.Any(), "alice@example.org", subjectImported, gomock.Any()).Return(nil)
	detail, err = s.Update(f.ctx, detail.Id, &v1.UpdateDatasetRequest{Status: ptr("success")})
	require.NoError(t, err)
	assert.Equal(t, "success", detail.Status)
	assert.NotNil(t, detail.Finished)

	// stages never go backwards
	_, err = s.Update(f.ctx, detail.Id, &v1.UpdateDatasetRequest{Mode: ptr("intransit")})
	assert.ErrorIs(t, err, v1.ErrInvalidTransition)
	_, err = s.Update(f.ctx, detail.Id, &v1.UpdateDatasetRequest{Status: ptr("failed")})
	assert.ErrorIs(t, err, v1.ErrInvalidTransition)

	// a rejected file transition rolls the whole update back
	_, err = s.Update(f.ctx, detail.Id, &v1.UpdateDatasetRequest{
		Name:  ptr("renamed"),
		Files: []v1.FileRequest{{Path: `raw\one.tif`, Mode: "intransit"}},
	})
	assert.ErrorIs(t, err, v1.ErrInvalidTransition)
	got, err := s.Get(f.ctx, detail.Id)
	require.NoError(t, err)
	assert.Equal(t, "run2", got.Name)

	_, err = s.Update(f.ctx, 999, &v1.UpdateDatasetRequest{})
	assert.ErrorIs(t, err, v1.ErrDatasetNotFound)
}

func TestDatasetService_Reset(t *testing.T) {
	f := newIngestFixture(t)
	s := f.datasetService(duringBooking)

	_, err := s.Reset(f.ctx, f.dataset.Id)
	assert.ErrorIs(t, err, v1.ErrResetNotAllowed)

	require.NoError(t, f.datasets.UpdateModeStatus(f.ctx, f.dataset.Id, model.ModeIngested, model.StatusFailed))
	detail, err := s.Reset(f.ctx, f.dataset.Id)
	require.NoError(t, err)
	assert.Equal(t, "imported", detail.Mode)
	assert.Equal(t, "success", detail.Status)

	require.NoError(t, f.datasets.UpdateModeStatus(f.ctx, f.dataset.Id, model.ModeImported, model.StatusFailed))
	detail, err = s.Reset(f.ctx, f.dataset.Id)
	require.NoError(t, err)
	assert.Equal(t, "imported", detail.Mode)
	assert.Equal(t, "ongoing", detail.Status)
}

func TestDatasetService_CheckAndListFailed(t *testing.T) {
	f := newIngestFixture(t)
	s := f.datasetService(duringBooking)
	f.write(t, "a.tif")

	check, err := s.Check(f.ctx, f.dataset.Id)
	require.NoError(t, err)
	assert.False(t, check.Ready)
	assert.Equal(t, []string{`sub\b.tif`}, check.Missing)

	_, err = s.Check(f.ctx, 999)
	assert.ErrorIs(t, err, v1.ErrDatasetNotFound)

	require.NoError(t, f.datasets.UpdateModeStatus(f.ctx, f.dataset.Id, model.ModeIngested, model.StatusFailed))
	require.NoError(t, f.datasets.Update(f.ctx, f.dataset.Id, map[string]interface{}{"modified": duringBooking}))
	failed, err := s.ListFailed(f.ctx, 36500)
	require.NoError(t, err)
	require.Len(t, failed.List, 1)
	assert.Equal(t, "run1", failed.List[0].Name)

	page, err := s.List(f.ctx, &v1.ListDatasetsRequest{Mode: "ingested"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
