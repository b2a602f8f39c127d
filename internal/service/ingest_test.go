package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pitschi/internal/model"
	"pitschi/pkg/clowder"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ingestFixture seeds one imported dataset of booking 100 (2024-03-05 09:00, 60 min)
// whose files live under <prefix>/cells/LSM880/alice/run1.
type ingestFixture struct {
	*testEnv
	root    string
	dataset *model.Dataset
}

func newIngestFixture(t *testing.T) *ingestFixture {
	env := newTestEnv(t)
	collection := "Q0001-cells"
	_, err := env.projects.Upsert(env.ctx, &model.Project{Id: 10, CoreId: 2, Name: "Cell imaging", Active: true})
	require.NoError(t, err)
	require.NoError(t, env.projects.UpdateCollection(env.ctx, 10, &collection))
	_, err = env.users.Upsert(env.ctx, &model.User{Username: "alice", UserId: 1, Name: "Alice Smith", Email: "alice@example.org"})
	require.NoError(t, err)
	_, err = env.bookings.Upsert(env.ctx, &model.Booking{
		Id: 100, BookingDate: "2024-03-05", StartTime: "09:00:00", Duration: 60,
		Username: ptr("alice"), ProjectId: ptr(int64(10)),
	})
	require.NoError(t, err)

	dataset := &model.Dataset{
		OriginalMachine:           "LSM880-PC",
		OriginalPath:              `D:\Data\alice\run1`,
		NetworkPath:               `\\rdm.example.org\Q0001\LSM880\alice\run1`,
		RelPathFromRootCollection: `LSM880\alice\run1`,
		Name:                      "run1",
		Mode:                      model.ModeImported,
		Status:                    model.StatusSuccess,
		BookingId:                 100,
		Files: []model.File{
			{Path: "a.tif", Mode: model.ModeImported, Status: model.StatusSuccess, SizeKb: 1},
			{Path: `SUB\B.TIF`, Mode: model.ModeImported, Status: model.StatusSuccess, SizeKb: 1},
		},
	}
	require.NoError(t, env.datasets.Create(env.ctx, dataset))
	return &ingestFixture{
		testEnv: env,
		root:    filepath.Join(env.svc.opts.RDM.Prefix, "cells", "LSM880", "alice", "run1"),
		dataset: dataset,
	}
}

func (f *ingestFixture) write(t *testing.T, rel string) string {
	t.Helper()
	p := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("data"), 0o644))
	return p
}

func (f *ingestFixture) reload(t *testing.T) *model.Dataset {
	t.Helper()
	d, err := f.datasets.GetByID(f.ctx, f.dataset.Id)
	require.NoError(t, err)
	return d
}

var (
	duringBooking = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	daysLater     = time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
)

func TestCheckDataset_ReadinessIsMonotonic(t *testing.T) {
	f := newIngestFixture(t)
	s := f.ingest(duringBooking)
	project, err := f.projects.GetByID(f.ctx, 10)
	require.NoError(t, err)

	r, err := s.CheckDataset(f.ctx, f.dataset, project)
	require.NoError(t, err)
	assert.False(t, r.Ready)
	assert.Equal(t, []string{"a.tif", `sub\b.tif`}, r.Missing)
	assert.Equal(t, f.root, r.Root)

	f.write(t, "a.tif")
	f.write(t, ".hidden/sub/b.tif")
	r, err = s.CheckDataset(f.ctx, f.dataset, project)
	require.NoError(t, err)
	assert.Equal(t, []string{`sub\b.tif`}, r.Missing)

	f.write(t, "sub/b.tif")
	r, err = s.CheckDataset(f.ctx, f.dataset, project)
	require.NoError(t, err)
	assert.True(t, r.Ready)
	assert.Empty(t, r.Missing)
}

func TestSweep_IngestsCompleteDataset(t *testing.T) {
	f := newIngestFixture(t)
	a := f.write(t, "a.tif")
	b := f.write(t, "sub/b.tif")
	c := f.write(t, "c.tif")
	f.write(t, ".DS_Store")

	f.clowder.EXPECT().FindSpace(gomock.Any(), "Cell imaging").Return(nil, nil)
	f.clowder.EXPECT().CreateSpace(gomock.Any(), "Cell imaging", gomock.Any()).Return(&clowder.Space{ID: "s1"}, nil)
	f.clowder.EXPECT().ListDatasets(gomock.Any(), "s1").Return([]clowder.Dataset{{ID: "other", Name: "run0"}}, nil)
	f.clowder.EXPECT().CreateDataset(gomock.Any(), "s1", "run1").Return(&clowder.Dataset{ID: "d1", Name: "run1"}, nil)
	f.clowder.EXPECT().AddMetadata(gomock.Any(), "d1", gomock.Any()).Return(nil)
	f.clowder.EXPECT().AddTags(gomock.Any(), "d1", []string{"LSM880-PC", "alice", "10"}).Return(nil)
	f.clowder.EXPECT().ListFolders(gomock.Any(), "d1").Return(nil, nil)
	f.clowder.EXPECT().CreateFolder(gomock.Any(), "d1", "sub", "").Return(&clowder.Folder{ID: "f1", Name: "/sub"}, nil)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", a, "").Return(&clowder.File{ID: "x1"}, nil)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", c, "").Return(&clowder.File{ID: "x3"}, nil)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", b, "f1").Return(&clowder.File{ID: "x2"}, nil)
	f.clowder.EXPECT().DatasetURL("d1", "s1").Return("https://repo.example.org/datasets/d1")
	f.notifier.EXPECT().SendEmail(gomock.Any(), "alice@example.org", subjectIngested, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _, body string) error {
			assert.Contains(t, body, "https://repo.example.org/datasets/d1")
			assert.Contains(t, body, "Alice Smith")
			return nil
		})

	s := f.ingest(duringBooking)
	require.NoError(t, s.Sweep(f.ctx))

	d := f.reload(t)
	assert.Equal(t, model.ModeIngested, d.Mode)
	assert.Equal(t, model.StatusSuccess, d.Status)
	assert.NotNil(t, d.Finished)
	assert.Equal(t, "s1", d.Space)
	assert.Equal(t, "d1", d.DatasetId)
	require.Len(t, d.Files, 3)
	ids := map[string]string{}
	for _, file := range d.Files {
		assert.Equal(t, model.ModeIngested, file.Mode, file.Path)
		assert.Equal(t, model.StatusSuccess, file.Status, file.Path)
		ids[file.Path] = file.FileId
	}
	assert.Equal(t, map[string]string{"a.tif": "x1", `SUB\B.TIF`: "x2", "c.tif": "x3"}, ids)

	// nothing is left in imported/success, so a second sweep makes no calls
	require.NoError(t, s.Sweep(f.ctx))
}

func TestSweep_WaitsForMissingFiles(t *testing.T) {
	f := newIngestFixture(t)
	f.write(t, "a.tif")

	require.NoError(t, f.ingest(duringBooking).Sweep(f.ctx))

	d := f.reload(t)
	assert.Equal(t, model.ModeImported, d.Mode)
	assert.Equal(t, model.StatusSuccess, d.Status)
}

func TestSweep_IngestsIncompleteDatasetAfterTimeout(t *testing.T) {
	f := newIngestFixture(t)
	a := f.write(t, "a.tif")
	f.dataset.Space = "s1"
	require.NoError(t, f.datasets.UpdateRepositoryIDs(f.ctx, f.dataset.Id, "s1", "d1"))

	f.clowder.EXPECT().ListFolders(gomock.Any(), "d1").Return(nil, nil)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", a, "").Return(&clowder.File{ID: "x1"}, nil)
	f.notifier.EXPECT().SendEmail(gomock.Any(), adminEmail, subjectIngestFailed, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _, body string) error {
			assert.Contains(t, body, "Not all files were ingested. Missing: sub\\b.tif")
			return nil
		})

	require.NoError(t, f.ingest(daysLater).Sweep(f.ctx))

	d := f.reload(t)
	assert.Equal(t, model.ModeIngested, d.Mode)
	assert.Equal(t, model.StatusFailed, d.Status)
	for _, file := range d.Files {
		if file.Path == "a.tif" {
			assert.Equal(t, model.StatusSuccess, file.Status)
		} else {
			assert.Equal(t, model.ModeImported, file.Mode)
		}
	}
}

func TestSweep_RetriesWhenRepositoryUnavailable(t *testing.T) {
	f := newIngestFixture(t)
	f.write(t, "a.tif")
	f.write(t, "sub/b.tif")
	f.clowder.EXPECT().FindSpace(gomock.Any(), "Cell imaging").Return(nil, assert.AnError)

	require.NoError(t, f.ingest(duringBooking).Sweep(f.ctx))

	d := f.reload(t)
	assert.Equal(t, model.ModeImported, d.Mode)
	assert.Equal(t, model.StatusSuccess, d.Status)
}

func TestSweep_SkipsWhenMountMissing(t *testing.T) {
	f := newIngestFixture(t)
	f.svc.opts.RDM.Prefix = filepath.Join(f.svc.opts.RDM.Prefix, "not-mounted")

	require.NoError(t, f.ingest(daysLater).Sweep(f.ctx))
	assert.Equal(t, model.ModeImported, f.reload(t).Mode)
}

func TestSweep_RetriesOnlyFailedFiles(t *testing.T) {
	f := newIngestFixture(t)
	a := f.write(t, "a.tif")
	b := f.write(t, "sub/b.tif")
	require.NoError(t, f.datasets.UpdateRepositoryIDs(f.ctx, f.dataset.Id, "s1", "d1"))
	for _, file := range f.dataset.Files {
		if file.Path == "a.tif" {
			require.NoError(t, f.files.Update(f.ctx, file.Id, map[string]interface{}{
				"mode": model.ModeIngested, "status": model.StatusSuccess, "fileid": "x1",
			}))
		}
	}

	gomock.InOrder(
		f.clowder.EXPECT().ListFolders(gomock.Any(), "d1").Return([]clowder.Folder{{ID: "f1", Name: "/sub"}}, nil),
		f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", b, "f1").Return(&clowder.File{ID: "x2"}, nil),
	)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", a, gomock.Any()).Times(0)
	f.clowder.EXPECT().DatasetURL("d1", "s1").Return("https://repo.example.org/datasets/d1")
	f.notifier.EXPECT().SendEmail(gomock.Any(), "alice@example.org", subjectIngested, gomock.Any()).Return(nil)

	require.NoError(t, f.ingest(duringBooking).Sweep(f.ctx))
	assert.Equal(t, model.StatusSuccess, f.reload(t).Status)
}

func TestSweep_FileFailureDoesNotStopSiblings(t *testing.T) {
	f := newIngestFixture(t)
	a := f.write(t, "a.tif")
	b := f.write(t, "sub/b.tif")
	c := f.write(t, "c.tif")
	require.NoError(t, f.datasets.UpdateRepositoryIDs(f.ctx, f.dataset.Id, "s1", "d1"))

	f.clowder.EXPECT().ListFolders(gomock.Any(), "d1").Return([]clowder.Folder{{ID: "f1", Name: "/sub"}}, nil)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", a, "").Return(nil, assert.AnError)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", b, "f1").Return(&clowder.File{ID: "x2"}, nil)
	f.clowder.EXPECT().AddServerFile(gomock.Any(), "d1", c, "").Return(nil, assert.AnError)
	f.notifier.EXPECT().SendEmail(gomock.Any(), adminEmail, subjectIngestFailed, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _, body string) error {
			assert.Contains(t, body, "Exception when ingesting file a.tif")
			assert.Contains(t, body, "Exception when ingesting file c.tif")
			assert.NotContains(t, body, "Missing:")
			return nil
		})

	require.NoError(t, f.ingest(duringBooking).Sweep(f.ctx))

	d := f.reload(t)
	assert.Equal(t, model.ModeIngested, d.Mode)
	assert.Equal(t, model.StatusFailed, d.Status)
	require.Len(t, d.Files, 3)
	got := map[string]model.Status{}
	for _, file := range d.Files {
		assert.Equal(t, model.ModeIngested, file.Mode, file.Path)
		got[file.Path] = file.Status
		if file.Path == `SUB\B.TIF` {
			assert.Equal(t, "x2", file.FileId)
		}
	}
	assert.Equal(t, map[string]model.Status{
		"a.tif":     model.StatusFailed,
		`SUB\B.TIF`: model.StatusSuccess,
		"c.tif":     model.StatusFailed,
	}, got)
}
