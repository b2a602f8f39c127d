package server

import (
	"context"

	"pitschi/internal/controller"
	"pitschi/pkg/log"
)

type ControllerServer struct {
	controller *controller.SyncController
	log        *log.Logger
}

func NewControllerServer(
	log *log.Logger,
	syncController *controller.SyncController,
) *ControllerServer {
	return &ControllerServer{
		controller: syncController,
		log:        log,
	}
}

func (s *ControllerServer) Start(ctx context.Context) error {
	s.log.Info("starting controller server")
	return s.controller.Start(ctx)
}

func (s *ControllerServer) Stop(ctx context.Context) error {
	s.log.Info("stopping controller server")
	return s.controller.Stop(ctx)
}
