package router

import (
	"pitschi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitAdminRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	auth := middleware.StrictAuth(deps.JWT, deps.Logger)

	adminRouter := r.Group("/admin").Use(auth)
	{
		adminRouter.GET("/sync", deps.AdminHandler.SyncStatus)
		adminRouter.PUT("/sync/reset", deps.AdminHandler.ResetSync)
		adminRouter.POST("/sync/trigger", deps.AdminHandler.TriggerSync)
		adminRouter.GET("/stats", deps.AdminHandler.ListStats)
	}

	dashboardRouter := r.Group("/dashboard").Use(auth)
	{
		dashboardRouter.GET("/overview", deps.DashboardHandler.GetOverview)
		dashboardRouter.GET("/systems", deps.DashboardHandler.GetSystems)
	}
}
