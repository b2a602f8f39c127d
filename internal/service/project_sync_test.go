package service

import (
	"testing"
	"time"

	"pitschi/internal/model"
	"pitschi/pkg/notify"
	"pitschi/pkg/ppms"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cellImaging = ppms.Project{ID: 10, CoreID: 2, Name: "Cell imaging", Active: true, Type: "Research", Phase: 1}

func TestSyncProjects_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{cellImaging}, nil).Times(2)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{
		{ID: 1, Login: "alice", Name: "Alice Smith", Email: "alice@example.org"},
		{ID: 2, Login: "bob", FirstName: "Bob", LastName: "Jones", Email: "bob@example.org"},
	}, nil).Times(2)
	env.facility.EXPECT().ListProjectCollections(gomock.Any()).Return([]ppms.ProjectCollection{
		{CoreID: 2, ProjectID: 10, Collection: " Q0001-cells "},
	}, nil).Times(2)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return([]ppms.Member{
		{ID: 1, Login: "alice"},
		{ID: 2, Login: "bob"},
	}, nil).Times(2)

	sync := env.projectSync()
	require.NoError(t, sync.SyncProjects(env.ctx, nil, true))
	first, err := env.projects.GetByID(env.ctx, 10)
	require.NoError(t, err)
	require.NoError(t, sync.SyncProjects(env.ctx, nil, true))
	second, err := env.projects.GetByID(env.ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Cell imaging", second.Name)
	assert.Equal(t, "Q0001-cells", second.CollectionName())

	collection, err := env.collections.GetByName(env.ctx, "Q0001-cells")
	require.NoError(t, err)
	require.NotNil(t, collection)
	require.Len(t, collection.Caches, 1)
	assert.Equal(t, "fast", collection.Caches[0].CacheName)
	assert.Equal(t, 10, collection.Caches[0].Priority)

	assert.Equal(t, map[string]bool{"alice": true, "bob": true}, env.memberState(t, 10))
	bob, err := env.users.GetByUsername(env.ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Jones Bob", bob.Name)
	assert.Equal(t, int64(2), bob.UserId)
}

func TestSyncProjects_DisablesDepartedMembers(t *testing.T) {
	env := newTestEnv(t)
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{cellImaging}, nil).Times(2)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{
		{ID: 1, Login: "a"}, {ID: 2, Login: "b"}, {ID: 3, Login: "c"}, {ID: 4, Login: "d"},
	}, nil).Times(2)
	env.facility.EXPECT().ListProjectCollections(gomock.Any()).Return(nil, nil).Times(2)
	env.facility.EXPECT().GetProjectCollection(gomock.Any(), int64(2), int64(10)).Return("", nil).Times(2)
	gomock.InOrder(
		env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return([]ppms.Member{
			{ID: 1, Login: "a"}, {ID: 2, Login: "b"}, {ID: 3, Login: "c"},
		}, nil),
		env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return([]ppms.Member{
			{ID: 2, Login: "b"}, {ID: 3, Login: "c"}, {ID: 4, Login: "d"},
		}, nil),
	)

	sync := env.projectSync()
	require.NoError(t, sync.SyncProjects(env.ctx, nil, true))
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, env.memberState(t, 10))

	require.NoError(t, sync.SyncProjects(env.ctx, nil, true))
	assert.Equal(t, map[string]bool{"a": false, "b": true, "c": true, "d": true}, env.memberState(t, 10))

	project, err := env.projects.GetByID(env.ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, project.Collection)
}

func TestSyncProjects_SkipsProjectsBelowStartingRef(t *testing.T) {
	env := newTestEnv(t)
	env.svc.opts.Sync.ProjectStartingRef = 100
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{
		{ID: 50, CoreID: 2, Name: "old"},
		{ID: 150, CoreID: 2, Name: "new"},
	}, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
	env.facility.EXPECT().ListProjectCollections(gomock.Any()).Return([]ppms.ProjectCollection{
		{ProjectID: 150, Collection: "not provisioned"},
	}, nil)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(150)).Return(nil, nil)

	require.NoError(t, env.projectSync().SyncProjects(env.ctx, nil, true))

	old, err := env.projects.GetByID(env.ctx, 50)
	require.NoError(t, err)
	assert.Nil(t, old)
	fresh, err := env.projects.GetByID(env.ctx, 150)
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.Nil(t, fresh.Collection)
}

func TestSyncProjects_PartialRunHonoursStartingRef(t *testing.T) {
	env := newTestEnv(t)
	env.svc.opts.Sync.ProjectStartingRef = 100
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{{ID: 50, CoreID: 2, Name: "old"}}, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	require.NoError(t, env.projectSync().SyncProjects(env.ctx, map[int64][]int64{50: {9}}, false))

	old, err := env.projects.GetByID(env.ctx, 50)
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestSyncProjects_PartialRunAddsBookedUsers(t *testing.T) {
	env := newTestEnv(t)
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{cellImaging}, nil).Times(2)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{{ID: 1, Login: "alice"}}, nil).Times(2)
	env.facility.EXPECT().GetProjectCollection(gomock.Any(), int64(2), int64(10)).Return("Q0002-new", nil)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return([]ppms.Member{{ID: 1, Login: "alice"}}, nil).Times(2)
	// the second run is answered from the user cache
	env.facility.EXPECT().GetUserByID(gomock.Any(), int64(9), int64(2)).
		Return(&ppms.User{ID: 9, Login: "carol", Email: "carol@example.org"}, nil)

	sync := env.projectSync()
	extra := map[int64][]int64{10: {9}}
	require.NoError(t, sync.SyncProjects(env.ctx, extra, false))
	require.NoError(t, sync.SyncProjects(env.ctx, extra, false))

	assert.Equal(t, map[string]bool{"alice": true, "carol": true}, env.memberState(t, 10))
	carol, err := env.users.GetByUsername(env.ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, int64(9), carol.UserId)

	project, err := env.projects.GetByID(env.ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Q0002-new", project.CollectionName())
	exists, err := env.collections.Exists(env.ctx, "Q0002-new")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSyncProjects_CorrectsStaleUserId(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.Upsert(env.ctx, &model.User{Username: "old", UserId: 5})
	require.NoError(t, err)

	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{cellImaging}, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{
		{ID: 5, Login: "new"},
		{ID: 7, Login: "old"},
	}, nil)
	env.facility.EXPECT().ListProjectCollections(gomock.Any()).Return(nil, nil)
	env.facility.EXPECT().GetProjectCollection(gomock.Any(), int64(2), int64(10)).Return("", nil)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return([]ppms.Member{{ID: 5, Login: "new"}}, nil)
	env.notifier.EXPECT().SendEmail(gomock.Any(), adminEmail, subjectDuplicateWarn, gomock.Any()).Return(nil)
	env.notifier.EXPECT().SendAlert(gomock.Any(), notify.SeverityWarning, "RIMS sync duplicate userid", gomock.Any()).Return(nil)

	require.NoError(t, env.projectSync().SyncProjects(env.ctx, nil, true))

	old, err := env.users.GetByUsername(env.ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, int64(7), old.UserId)
	holders, err := env.users.ListByUserId(env.ctx, 5)
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, "new", holders[0].Username)
}

func TestSyncProjects_EscalatesUnresolvableDuplicate(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.Upsert(env.ctx, &model.User{Username: "old", UserId: 5})
	require.NoError(t, err)

	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return([]ppms.Project{cellImaging}, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return([]ppms.User{{ID: 5, Login: "new"}}, nil)
	env.facility.EXPECT().ListProjectCollections(gomock.Any()).Return(nil, nil)
	env.facility.EXPECT().GetProjectCollection(gomock.Any(), int64(2), int64(10)).Return("", nil)
	env.facility.EXPECT().ListProjectMembers(gomock.Any(), int64(10)).Return([]ppms.Member{{ID: 5, Login: "new"}}, nil)
	env.facility.EXPECT().GetUser(gomock.Any(), "old").Return(nil, ppms.ErrNotFound)
	env.notifier.EXPECT().SendEmail(gomock.Any(), adminEmail, subjectDuplicateError, gomock.Any()).Return(nil)
	env.notifier.EXPECT().SendAlert(gomock.Any(), notify.SeverityError, "RIMS sync duplicate userid", gomock.Any()).Return(nil)

	require.NoError(t, env.projectSync().SyncProjects(env.ctx, nil, true))

	holders, err := env.users.ListByUserId(env.ctx, 5)
	require.NoError(t, err)
	assert.Len(t, holders, 2)
}

func TestSyncAll_SkipsWhileGuardHeld(t *testing.T) {
	env := newTestEnv(t)
	ok, err := env.locks.Acquire(env.ctx, model.StatSyncingProjects, "other-process", time.Now(), time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	sync := env.projectSync()
	// no facility expectations: a held guard means no calls at all
	require.NoError(t, sync.SyncAll(env.ctx))

	require.NoError(t, env.locks.Release(env.ctx, model.StatSyncingProjects, "other-process"))
	env.facility.EXPECT().ListCores(gomock.Any()).Return([]ppms.Core{{ID: 2, ShortName: "CMM", LongName: "Microscopy"}}, nil)
	env.facility.EXPECT().ListSystems(gomock.Any()).Return([]ppms.System{{CoreID: 2, ID: 17, Type: "Confocal", Name: "LSM 880"}}, nil)
	env.facility.EXPECT().ListSystemPIDs(gomock.Any()).Return([]ppms.SystemPID{{SystemID: 17, PID: "pid:17"}}, nil)
	env.facility.EXPECT().ListProjects(gomock.Any(), false).Return(nil, nil)
	env.facility.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
	env.facility.EXPECT().ListProjectCollections(gomock.Any()).Return(nil, nil)

	require.NoError(t, sync.SyncAll(env.ctx))

	core, err := env.cores.GetByID(env.ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "CMM", core.ShortName)
	system, err := env.systems.GetByID(env.ctx, 17)
	require.NoError(t, err)
	assert.Equal(t, "pid:17", system.Pid)

	status, err := env.guard().Status(env.ctx, model.StatSyncingProjects)
	require.NoError(t, err)
	assert.False(t, status.Held)
	assert.Equal(t, model.StatFalse, status.Flag)
}

func TestNotifyFailedDatasets(t *testing.T) {
	env := newTestEnv(t)
	recent := time.Now().Add(-time.Hour)
	require.NoError(t, env.datasets.Create(env.ctx, &model.Dataset{
		Name: "run1", OriginalMachine: "LSM880-PC", Mode: model.ModeIngested, Status: model.StatusFailed, Received: &recent, BookingId: 1,
	}))
	env.notifier.EXPECT().SendEmail(gomock.Any(), adminEmail, subjectFailedDatasets, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _, body string) error {
			assert.Contains(t, body, "run1")
			return nil
		})
	env.notifier.EXPECT().SendAlert(gomock.Any(), notify.SeverityWarning, gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, env.projectSync().NotifyFailedDatasets(env.ctx))
}
