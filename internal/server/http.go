package server

import (
	apiV1 "pitschi/api/v1"
	"pitschi/docs"
	"pitschi/internal/middleware"
	"pitschi/internal/router"
	"pitschi/pkg/server/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewHTTPServer(
	deps router.RouterDeps,
) *http.Server {
	if deps.Config.GetString("env") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	s := http.NewServer(
		gin.Default(),
		deps.Logger,
		http.WithServerHost(deps.Config.GetString("http.host")),
		http.WithServerPort(deps.Config.GetInt("http.port")),
	)

	// swagger doc
	docs.SwaggerInfo.BasePath = "/"
	s.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerfiles.Handler,
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))
	s.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.Use(
		middleware.CORSMiddleware(),
		middleware.ResponseLogMiddleware(deps.Logger),
		middleware.RequestLogMiddleware(deps.Logger),
	)
	s.GET("/", func(ctx *gin.Context) {
		apiV1.HandleSuccess(ctx, map[string]interface{}{
			"service": "pitschi",
		})
	})

	apiV1 := s.Group("/api/v1")
	router.InitAccountRouter(deps, apiV1)
	router.InitDatasetRouter(deps, apiV1)
	router.InitBookingRouter(deps, apiV1)
	router.InitProjectRouter(deps, apiV1)
	router.InitAdminRouter(deps, apiV1)

	return s
}
