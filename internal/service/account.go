package service

import (
	"context"
	"time"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour * 90

// AccountService manages API accounts used by instrument clients and operators.
type AccountService interface {
	Login(ctx context.Context, req *v1.LoginRequest) (string, error)
	// Authenticate checks basic credentials and returns the account.
	Authenticate(ctx context.Context, username, password string) (*model.PUser, error)
	CreateAccount(ctx context.Context, req *v1.CreateAccountRequest) error
	GetProfile(ctx context.Context, userId string) (*v1.GetProfileResponseData, error)
	UpdatePassword(ctx context.Context, userId string, req *v1.UpdatePasswordRequest) error
}

func NewAccountService(service *Service, pUserRepo repository.PUserRepository) AccountService {
	return &accountService{
		Service:   service,
		pUserRepo: pUserRepo,
	}
}

type accountService struct {
	*Service
	pUserRepo repository.PUserRepository
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*model.PUser, error) {
	user, err := s.pUserRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get account", zap.String("username", username), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if user == nil {
		return nil, v1.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, v1.ErrUnauthorized
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, req *v1.LoginRequest) (string, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return "", err
	}
	token, err := s.jwt.GenToken(user.UserId, user.Username, time.Now().Add(tokenTTL))
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to sign token", zap.Error(err))
		return "", v1.ErrInternalServerError
	}
	return token, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req *v1.CreateAccountRequest) error {
	existing, err := s.pUserRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get account", zap.String("username", req.Username), zap.Error(err))
		return v1.ErrInternalServerError
	}
	if existing != nil {
		return v1.ErrUsernameAlreadyUse
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return v1.ErrInternalServerError
	}
	userId, err := s.sid.GenString()
	if err != nil {
		return v1.ErrInternalServerError
	}
	user := &model.PUser{
		UserId:   userId,
		Username: req.Username,
		Password: string(hashed),
		Desc:     req.Desc,
	}
	if err := s.pUserRepo.Create(ctx, user); err != nil {
		s.logger.WithContext(ctx).Error("failed to create account", zap.String("username", req.Username), zap.Error(err))
		return v1.ErrInternalServerError
	}
	s.logger.WithContext(ctx).Info("account created", zap.String("username", req.Username), zap.String("userId", userId))
	return nil
}

func (s *accountService) GetProfile(ctx context.Context, userId string) (*v1.GetProfileResponseData, error) {
	user, err := s.pUserRepo.GetByUserId(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get account", zap.String("userId", userId), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if user == nil {
		return nil, v1.ErrNotFound
	}
	return &v1.GetProfileResponseData{
		UserId:   user.UserId,
		Username: user.Username,
		Desc:     user.Desc,
	}, nil
}

func (s *accountService) UpdatePassword(ctx context.Context, userId string, req *v1.UpdatePasswordRequest) error {
	user, err := s.pUserRepo.GetByUserId(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get account", zap.String("userId", userId), zap.Error(err))
		return v1.ErrInternalServerError
	}
	if user == nil {
		return v1.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return v1.ErrUnauthorized
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return v1.ErrInternalServerError
	}
	user.Password = string(hashed)
	if err := s.pUserRepo.Update(ctx, user); err != nil {
		s.logger.WithContext(ctx).Error("failed to update password", zap.String("userId", userId), zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}
