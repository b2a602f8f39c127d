package service

import (
	"context"
	"testing"
	"time"

	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"
	"pitschi/pkg/sid"
	mock_clowder "pitschi/test/mocks/clowder"
	mock_notify "pitschi/test/mocks/notify"
	mock_ppms "pitschi/test/mocks/ppms"

	"github.com/glebarez/sqlite"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const adminEmail = "admin@example.org"

// testEnv wires services against an in-memory database and mocked remote systems.
type testEnv struct {
	ctx      context.Context
	svc      *Service
	facility *mock_ppms.MockFacility
	clowder  *mock_clowder.MockRepository
	notifier *mock_notify.MockNotifier

	projects    repository.ProjectRepository
	collections repository.CollectionRepository
	users       repository.UserRepository
	members     repository.UserProjectRepository
	cores       repository.CoreRepository
	systems     repository.SystemRepository
	bookings    repository.BookingRepository
	datasets    repository.DatasetRepository
	files       repository.FileRepository
	dailyTasks  repository.DailyTaskRepository
	stats       repository.SystemStatRepository
	locks       repository.SyncLockRepository
	pusers      repository.PUserRepository
}

func newTestEnv(t *testing.T) *testEnv {
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

	conf := viper.New()
	conf.Set("security.jwt.key", "test-signing-key")
	opts := &Options{
		Sync: SyncOptions{
			ProjectSyncDays: 7,
			UserCacheSize:   16,
			UserCacheTTL:    time.Hour,
		},
		RDM: RDMOptions{
			Prefix:              t.TempDir(),
			CollectionSeparator: "-",
			CacheDefaults:       []CacheDefault{{Name: "fast", Priority: 10}},
			CloudURL:            "https://cloud.example.org/apps/files/",
		},
		Ingest:     IngestOptions{WaitTimeToSync: 24 * time.Hour},
		Lock:       LockOptions{Backend: "db", StaleAfter: time.Hour},
		AdminEmail: adminEmail,
		Location:   time.UTC,
	}

	r := repository.NewRepository(log.NewNop(), db, nil)
	ctrl := gomock.NewController(t)
	return &testEnv{
		ctx:         context.Background(),
		svc:         NewService(repository.NewTransaction(r), log.NewNop(), sid.NewSid(), jwt.NewJwt(conf), opts),
		facility:    mock_ppms.NewMockFacility(ctrl),
		clowder:     mock_clowder.NewMockRepository(ctrl),
		notifier:    mock_notify.NewMockNotifier(ctrl),
		projects:    repository.NewProjectRepository(r),
		collections: repository.NewCollectionRepository(r),
		users:       repository.NewUserRepository(r),
		members:     repository.NewUserProjectRepository(r),
		cores:       repository.NewCoreRepository(r),
		systems:     repository.NewSystemRepository(r),
		bookings:    repository.NewBookingRepository(r),
		datasets:    repository.NewDatasetRepository(r),
		files:       repository.NewFileRepository(r),
		dailyTasks:  repository.NewDailyTaskRepository(r),
		stats:       repository.NewSystemStatRepository(r),
		locks:       repository.NewSyncLockRepository(r),
		pusers:      repository.NewPUserRepository(r),
	}
}

func (e *testEnv) guard() SyncGuard {
	return NewSyncGuard(e.svc, e.locks, e.stats, nil)
}

func (e *testEnv) projectSync() ProjectSyncService {
	return NewProjectSyncService(e.svc, e.facility, e.projects, e.collections, e.users, e.members,
		e.cores, e.systems, e.datasets, e.guard(), e.notifier)
}

func (e *testEnv) bookingSync() *bookingSyncService {
	return NewBookingSyncService(e.svc, e.facility, e.projectSync(), e.bookings, e.systems, e.users, e.members).(*bookingSyncService)
}

func (e *testEnv) ingest(now time.Time) *ingestService {
	s := NewIngestService(e.svc, e.datasets, e.files, e.bookings, e.users, e.systems, e.projects, e.clowder, e.notifier).(*ingestService)
	s.now = func() time.Time { return now }
	return s
}

func (e *testEnv) datasetService(now time.Time) DatasetService {
	return NewDatasetService(e.svc, e.datasets, e.files, e.bookings, e.users, e.systems, e.projects, e.ingest(now), e.notifier)
}

func ptr[T any](v T) *T {
	return &v
}

func (e *testEnv) memberState(t *testing.T, projectID int64) map[string]bool {
	t.Helper()
	rows, err := e.members.ListByProject(e.ctx, projectID)
	require.NoError(t, err)
	state := map[string]bool{}
	for _, r := range rows {
		state[r.Username] = r.Enabled
	}
	return state
}
