package service

import (
	"pitschi/internal/repository"
	"pitschi/pkg/jwt"
	"pitschi/pkg/log"
	"pitschi/pkg/sid"
)

type Service struct {
	logger *log.Logger
	sid    *sid.Sid
	jwt    *jwt.JWT
	tm     repository.Transaction
	opts   *Options
}

func NewService(
	tm repository.Transaction,
	logger *log.Logger,
	sid *sid.Sid,
	jwt *jwt.JWT,
	opts *Options,
) *Service {
	return &Service{
		logger: logger,
		sid:    sid,
		jwt:    jwt,
		tm:     tm,
		opts:   opts,
	}
}
