package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "pitschi/api/v1"
	"pitschi/internal/handler"
	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/internal/router"
	"pitschi/internal/service"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"
	"pitschi/pkg/sid"
	mock_clowder "pitschi/test/mocks/clowder"
	mock_notify "pitschi/test/mocks/notify"
	mock_ppms "pitschi/test/mocks/ppms"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	clientUser = "lsm880"
	clientPass = "acquisition1"
)

func newTestAPI(t *testing.T) *httpexpect.Expect {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	conf := viper.New()
	conf.Set("env", "test")
	conf.Set("security.jwt.key", "test-signing-key")
	conf.Set("admin.username", "admin")
	conf.Set("admin.password", "adminpass1")

	logger := log.NewNop()
	r := repository.NewRepository(logger, db, nil)
	pUsers := repository.NewPUserRepository(r)
	m := NewMigrateServer(db, logger, conf, pUsers, sid.NewSid())
	require.NoError(t, m.migrate(context.Background()))

	opts := &service.Options{
		Sync:     service.SyncOptions{ProjectSyncDays: 7, UserCacheSize: 16, UserCacheTTL: time.Hour},
		RDM:      service.RDMOptions{Prefix: t.TempDir(), CollectionSeparator: "-"},
		Ingest:   service.IngestOptions{WaitTimeToSync: 24 * time.Hour},
		Lock:     service.LockOptions{Backend: "db", StaleAfter: time.Hour},
		Location: time.UTC,
	}
	j := jwt.NewJwt(conf)
	svc := service.NewService(repository.NewTransaction(r), logger, sid.NewSid(), j, opts)

	ctrl := gomock.NewController(t)
	facility := mock_ppms.NewMockFacility(ctrl)
	repo := mock_clowder.NewMockRepository(ctrl)
	notifier := mock_notify.NewMockNotifier(ctrl)

	projects := repository.NewProjectRepository(r)
	collections := repository.NewCollectionRepository(r)
	users := repository.NewUserRepository(r)
	members := repository.NewUserProjectRepository(r)
	cores := repository.NewCoreRepository(r)
	systems := repository.NewSystemRepository(r)
	bookings := repository.NewBookingRepository(r)
	datasets := repository.NewDatasetRepository(r)
	files := repository.NewFileRepository(r)
	stats := repository.NewSystemStatRepository(r)
	locks := repository.NewSyncLockRepository(r)

	guard := service.NewSyncGuard(svc, locks, stats, nil)
	projectSync := service.NewProjectSyncService(svc, facility, projects, collections, users, members, cores, systems, datasets, guard, notifier)
	bookingSync := service.NewBookingSyncService(svc, facility, projectSync, bookings, systems, users, members)
	ingest := service.NewIngestService(svc, datasets, files, bookings, users, systems, projects, repo, notifier)
	tasks := service.NewTasks(svc, projectSync, bookingSync, ingest)
	admin := service.NewAdminService(svc, guard, tasks, stats)
	accounts := service.NewAccountService(svc, pUsers)

	ctx := context.Background()
	require.NoError(t, accounts.CreateAccount(ctx, &v1.CreateAccountRequest{Username: clientUser, Password: clientPass}))
	systemID := int64(17)
	_, err = systems.Upsert(ctx, &model.System{Id: systemID, CoreId: 2, Name: "LSM 880"})
	require.NoError(t, err)
	_, err = bookings.Upsert(ctx, &model.Booking{Id: 100, BookingDate: "2024-03-05", StartTime: "09:00:00", Duration: 60, SystemId: &systemID})
	require.NoError(t, err)

	h := handler.NewHandler(logger)
	s := NewHTTPServer(router.RouterDeps{
		Logger:           logger,
		Config:           conf,
		JWT:              j,
		AccountService:   accounts,
		AccountHandler:   handler.NewAccountHandler(h, accounts),
		DatasetHandler:   handler.NewDatasetHandler(h, service.NewDatasetService(svc, datasets, files, bookings, users, systems, projects, ingest, notifier)),
		BookingHandler:   handler.NewBookingHandler(h, service.NewBookingService(svc, bookings)),
		ProjectHandler:   handler.NewProjectHandler(h, service.NewProjectService(svc, projects, members, users, collections)),
		DailyTaskHandler: handler.NewDailyTaskHandler(h, service.NewDailyTaskService(svc, repository.NewDailyTaskRepository(r), systems)),
		AdminHandler:     handler.NewAdminHandler(h, admin),
		DashboardHandler: handler.NewDashboardHandler(h, service.NewDashboardService(svc, projects, users, cores, systems, bookings, datasets, admin)),
	})

	srv := httptest.NewServer(s.Engine)
	t.Cleanup(srv.Close)
	return httpexpect.Default(t, srv.URL)
}

func login(e *httpexpect.Expect, username, password string) string {
	return e.POST("/api/v1/login").
		WithJSON(v1.LoginRequest{Username: username, Password: password}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("accessToken").String().Raw()
}

func TestAPI_Login(t *testing.T) {
	e := newTestAPI(t)

	e.POST("/api/v1/login").
		WithJSON(v1.LoginRequest{Username: "admin", Password: "wrong"}).
		Expect().
		Status(http.StatusUnauthorized).
		JSON().Object().Value("code").Number().IsEqual(401)

	token := login(e, "admin", "adminpass1")
	e.GET("/api/v1/account").
		WithHeader("Authorization", "Bearer "+token).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("username").String().IsEqual("admin")
}

func TestAPI_DatasetIntake(t *testing.T) {
	e := newTestAPI(t)
	body := v1.CreateDatasetRequest{
		OriginalMachine:           "LSM880-PC",
		RelPathFromRootCollection: `LSM880\alice\run1`,
		Name:                      "run1",
		BookingId:                 100,
		Files:                     []v1.FileRequest{{Path: "a.tif", SizeKb: 10}},
	}

	e.POST("/api/v1/datasets").WithJSON(body).
		Expect().
		Status(http.StatusUnauthorized)

	created := e.POST("/api/v1/datasets").
		WithBasicAuth(clientUser, clientPass).
		WithJSON(body).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object()
	created.Value("mode").String().IsEqual("intransit")
	created.Value("status").String().IsEqual("ongoing")
	created.Value("files").Array().Length().IsEqual(1)
	id := int64(created.Value("id").Number().Raw())

	e.PUT("/api/v1/datasets/{id}", id).
		WithBasicAuth(clientUser, clientPass).
		WithJSON(map[string]interface{}{"mode": "ingested", "status": "success"}).
		Expect().
		Status(http.StatusConflict).
		JSON().Object().Value("code").Number().IsEqual(2002)

	e.PUT("/api/v1/datasets/{id}", id).
		WithBasicAuth(clientUser, clientPass).
		WithJSON(map[string]interface{}{"desc": "timelapse"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("desc").String().IsEqual("timelapse")

	body.BookingId = 999
	e.POST("/api/v1/datasets").
		WithBasicAuth(clientUser, clientPass).
		WithJSON(body).
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().Value("code").Number().IsEqual(2004)

	// operator endpoints do not accept Basic credentials
	e.GET("/api/v1/datasets/failed").
		WithBasicAuth(clientUser, clientPass).
		Expect().
		Status(http.StatusUnauthorized)

	token := login(e, "admin", "adminpass1")
	e.GET("/api/v1/datasets").
		WithHeader("Authorization", "Bearer "+token).
		WithQuery("mode", "intransit").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("total").Number().IsEqual(1)
	e.PUT("/api/v1/datasets/{id}/reset", id).
		WithHeader("Authorization", "Bearer "+token).
		Expect().
		Status(http.StatusConflict)
}

func TestAPI_BookingsAndDailyTasks(t *testing.T) {
	e := newTestAPI(t)

	e.GET("/api/v1/bookings").
		WithBasicAuth(clientUser, clientPass).
		WithQuery("date", "2024-03-05").
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("list").Array().Length().IsEqual(1)
	e.GET("/api/v1/bookings").
		WithBasicAuth(clientUser, clientPass).
		WithQuery("date", "05/03/2024").
		Expect().
		Status(http.StatusBadRequest)
	e.GET("/api/v1/bookings/{id}", 100).
		WithBasicAuth(clientUser, clientPass).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("duration").Number().IsEqual(60)
	e.GET("/api/v1/bookings/{id}", 404).
		WithBasicAuth(clientUser, clientPass).
		Expect().
		Status(http.StatusNotFound)

	task := e.POST("/api/v1/dailytasks").
		WithBasicAuth(clientUser, clientPass).
		WithJSON(v1.CreateDailyTaskRequest{SystemId: 17}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object()
	e.PUT("/api/v1/dailytasks/{id}", int64(task.Value("id").Number().Raw())).
		WithBasicAuth(clientUser, clientPass).
		WithJSON(v1.CompleteDailyTaskRequest{Status: "success"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("status").String().IsEqual("success")
}

func TestAPI_Admin(t *testing.T) {
	e := newTestAPI(t)
	token := login(e, "admin", "adminpass1")

	e.GET("/api/v1/admin/sync").
		WithHeader("Authorization", "Bearer "+token).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("held").Boolean().IsFalse()
	e.PUT("/api/v1/admin/sync/reset").
		WithHeader("Authorization", "Bearer "+token).
		Expect().
		Status(http.StatusOK)
	e.POST("/api/v1/admin/sync/trigger").
		WithHeader("Authorization", "Bearer "+token).
		WithJSON(map[string]string{"task": "reindex"}).
		Expect().
		Status(http.StatusBadRequest)
	e.GET("/api/v1/dashboard/overview").
		WithHeader("Authorization", "Bearer "+token).
		Expect().
		Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("summary").Object().Value("system_count").Number().IsEqual(1)
	e.GET("/metrics").
		Expect().
		Status(http.StatusOK)
}
