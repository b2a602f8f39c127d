//go:build wireinject
// +build wireinject

package wire

import (
	"pitschi/internal/handler"
	"pitschi/internal/repository"
	"pitschi/internal/router"
	"pitschi/internal/server"
	"pitschi/internal/service"
	"pitschi/pkg/app"
	"pitschi/pkg/clowder"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"
	"pitschi/pkg/notify"
	"pitschi/pkg/ppms"
	"pitschi/pkg/server/http"
	"pitschi/pkg/sid"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var repositorySet = wire.NewSet(
	repository.NewDB,
	repository.NewRedis,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewCoreRepository,
	repository.NewSystemRepository,
	repository.NewProjectRepository,
	repository.NewCollectionRepository,
	repository.NewUserRepository,
	repository.NewUserProjectRepository,
	repository.NewBookingRepository,
	repository.NewDatasetRepository,
	repository.NewFileRepository,
	repository.NewDailyTaskRepository,
	repository.NewSystemStatRepository,
	repository.NewSyncLockRepository,
	repository.NewPUserRepository,
)

var clientSet = wire.NewSet(
	ppms.NewClient,
	wire.Bind(new(ppms.Facility), new(*ppms.Client)),
	clowder.NewClient,
	wire.Bind(new(clowder.Repository), new(*clowder.Client)),
	notify.NewNotifier,
)

var serviceSet = wire.NewSet(
	service.NewOptions,
	service.NewService,
	service.NewSyncGuard,
	service.NewProjectSyncService,
	service.NewBookingSyncService,
	service.NewIngestService,
	service.NewTasks,
	service.NewAdminService,
	service.NewAccountService,
	service.NewDatasetService,
	service.NewBookingService,
	service.NewProjectService,
	service.NewDailyTaskService,
	service.NewDashboardService,
)

var handlerSet = wire.NewSet(
	handler.NewHandler,
	handler.NewAccountHandler,
	handler.NewDatasetHandler,
	handler.NewBookingHandler,
	handler.NewProjectHandler,
	handler.NewDailyTaskHandler,
	handler.NewAdminHandler,
	handler.NewDashboardHandler,
)

var serverSet = wire.NewSet(
	server.NewHTTPServer,
)

// build App
func newApp(
	httpServer *http.Server,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer),
		app.WithName("pitschi-server"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		clientSet,
		serviceSet,
		handlerSet,
		serverSet,
		sid.NewSid,
		jwt.NewJwt,
		wire.Struct(new(router.RouterDeps), "*"),
		newApp,
	))
}
