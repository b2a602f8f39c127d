package main

import (
	"context"
	"flag"
	_ "time/tzdata"

	"pitschi/cmd/controller/wire"
	"pitschi/pkg/config"
	"pitschi/pkg/log"

	"go.uber.org/zap"
)

func main() {
	var envConf = flag.String("conf", "config/local.yml", "config path, eg: -conf ./config/local.yml")
	flag.Parse()
	conf := config.NewConfig(*envConf)

	logger := log.NewLog(conf)

	app, cleanup, err := wire.NewWire(conf, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()
	logger.Info("controller start", zap.Int("metrics_port", conf.GetInt("metrics.port")))
	if err = app.Run(context.Background()); err != nil {
		panic(err)
	}
}
