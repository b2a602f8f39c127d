package router

import (
	"pitschi/internal/handler"
	"pitschi/internal/service"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"

	"github.com/spf13/viper"
)

type RouterDeps struct {
	Logger           *log.Logger
	Config           *viper.Viper
	JWT              *jwt.JWT
	AccountService   service.AccountService
	AccountHandler   *handler.AccountHandler
	DatasetHandler   *handler.DatasetHandler
	BookingHandler   *handler.BookingHandler
	ProjectHandler   *handler.ProjectHandler
	DailyTaskHandler *handler.DailyTaskHandler
	AdminHandler     *handler.AdminHandler
	DashboardHandler *handler.DashboardHandler
}
