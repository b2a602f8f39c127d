//go:build wireinject
// +build wireinject

package wire

import (
	"pitschi/internal/controller"
	"pitschi/internal/repository"
	"pitschi/internal/server"
	"pitschi/internal/service"
	"pitschi/pkg/app"
	"pitschi/pkg/clowder"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"
	"pitschi/pkg/notify"
	"pitschi/pkg/ppms"
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
	repository.NewSystemStatRepository,
	repository.NewSyncLockRepository,
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
)

var controllerSet = wire.NewSet(
	controller.NewSchedules,
	controller.NewSyncController,
)

var serverSet = wire.NewSet(
	server.NewControllerServer,
	server.NewMetricsServer,
)

func newApp(
	controllerServer *server.ControllerServer,
	metricsServer *server.MetricsServer,
) *app.App {
	return app.NewApp(
		app.WithServer(controllerServer, metricsServer),
		app.WithName("pitschi-controller"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		clientSet,
		serviceSet,
		controllerSet,
		serverSet,
		sid.NewSid,
		jwt.NewJwt,
		newApp,
	))
}
