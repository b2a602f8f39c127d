package server

import (
	"context"
	"errors"
	"os"

	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/log"
	"pitschi/pkg/sid"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MigrateServer struct {
	db        *gorm.DB
	log       *log.Logger
	conf      *viper.Viper
	pUserRepo repository.PUserRepository
	sid       *sid.Sid
	exit      func(code int)
}

func NewMigrateServer(db *gorm.DB, log *log.Logger, conf *viper.Viper, pUserRepo repository.PUserRepository, sid *sid.Sid) *MigrateServer {
	return &MigrateServer{
		db:        db,
		log:       log,
		conf:      conf,
		pUserRepo: pUserRepo,
		sid:       sid,
		exit:      os.Exit,
	}
}

func (m *MigrateServer) Start(ctx context.Context) error {
	if err := m.migrate(ctx); err != nil {
		m.log.Error("migrate error", zap.Error(err))
		return err
	}
	m.exit(0)
	return nil
}

func (m *MigrateServer) migrate(ctx context.Context) error {
	if err := m.db.AutoMigrate(
		&model.Core{},
		&model.System{},
		&model.Project{},
		&model.Collection{},
		&model.CollectionCache{},
		&model.User{},
		&model.UserProject{},
		&model.Booking{},
		&model.Dataset{},
		&model.File{},
		&model.DailyTask{},
		&model.SystemStat{},
		&model.SyncLock{},
		&model.PUser{},
	); err != nil {
		return err
	}
	m.log.Info("AutoMigrate success")

	if err := m.db.WithContext(ctx).Where("name = ?", model.StatSyncingProjects).
		FirstOrCreate(&model.SystemStat{
			Name:        model.StatSyncingProjects,
			Value:       model.StatFalse,
			Description: "project sync running",
			IsString:    true,
		}).Error; err != nil {
		return err
	}

	return m.createDefaultAccount(ctx)
}

// createDefaultAccount creates the admin API account named in admin.username.
func (m *MigrateServer) createDefaultAccount(ctx context.Context) error {
	username := m.conf.GetString("admin.username")
	password := m.conf.GetString("admin.password")
	if username == "" {
		m.log.Info("admin.username not set, skipping default account")
		return nil
	}
	if password == "" {
		return errors.New("admin.password is required with admin.username")
	}

	existing, err := m.pUserRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		m.log.Info("default account already exists", zap.String("username", username))
		return nil
	}

	userId, err := m.sid.GenString()
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := m.pUserRepo.Create(ctx, &model.PUser{
		UserId:   userId,
		Username: username,
		Password: string(hashed),
		Desc:     "default administrator",
	}); err != nil {
		return err
	}
	m.log.Info("default account created", zap.String("username", username), zap.String("userId", userId))
	return nil
}

func (m *MigrateServer) Stop(ctx context.Context) error {
	m.log.Info("AutoMigrate stop")
	return nil
}
