package server

import (
	"pitschi/pkg/log"
	"pitschi/pkg/server/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

// MetricsServer exposes /metrics for processes without an API.
type MetricsServer struct {
	*http.Server
}

func NewMetricsServer(conf *viper.Viper, logger *log.Logger) *MetricsServer {
	if conf.GetString("env") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(200, "ok")
	})
	return &MetricsServer{
		Server: http.NewServer(
			engine,
			logger,
			http.WithServerHost(conf.GetString("metrics.host")),
			http.WithServerPort(conf.GetInt("metrics.port")),
		),
	}
}
