package service

import (
	"context"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"

	"go.uber.org/zap"
)

type AdminService interface {
	SyncStatus(ctx context.Context) (*v1.SyncStatusData, error)
	// ResetSync clears a stuck project sync guard.
	ResetSync(ctx context.Context) error
	TriggerSync(ctx context.Context, req *v1.TriggerSyncRequest) error
	ListStats(ctx context.Context) ([]v1.SystemStatItem, error)
}

func NewAdminService(
	service *Service,
	guard SyncGuard,
	tasks *Tasks,
	statRepo repository.SystemStatRepository,
) AdminService {
	return &adminService{
		Service:  service,
		guard:    guard,
		tasks:    tasks,
		statRepo: statRepo,
	}
}

type adminService struct {
	*Service
	guard    SyncGuard
	tasks    *Tasks
	statRepo repository.SystemStatRepository
}

func (s *adminService) SyncStatus(ctx context.Context) (*v1.SyncStatusData, error) {
	status, err := s.guard.Status(ctx, model.StatSyncingProjects)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to read sync guard", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.SyncStatusData{
		Name:       status.Name,
		Held:       status.Held,
		Holder:     status.Holder,
		AcquiredAt: status.AcquiredAt,
		ExpiresAt:  status.ExpiresAt,
		Flag:       status.Flag,
	}, nil
}

func (s *adminService) ResetSync(ctx context.Context) error {
	if err := s.guard.Reset(ctx, model.StatSyncingProjects); err != nil {
		s.logger.WithContext(ctx).Error("failed to reset sync guard", zap.Error(err))
		return v1.ErrInternalServerError
	}
	s.logger.WithContext(ctx).Warn("project sync guard reset")
	return nil
}

// TriggerSync starts a task in the background and returns once it has been accepted.
func (s *adminService) TriggerSync(ctx context.Context, req *v1.TriggerSyncRequest) error {
	if !s.tasks.Has(req.Task) {
		return v1.ErrUnknownTask
	}
	if s.tasks.Running(req.Task) {
		return v1.ErrSyncInProgress
	}
	if req.Task == TaskProjects {
		status, err := s.guard.Status(ctx, model.StatSyncingProjects)
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to read sync guard", zap.Error(err))
			return v1.ErrInternalServerError
		}
		if status.Held {
			return v1.ErrSyncInProgress
		}
	}
	go func() {
		_ = s.tasks.Run(context.Background(), req.Task)
	}()
	s.logger.WithContext(ctx).Info("task triggered", zap.String("task", req.Task))
	return nil
}

func (s *adminService) ListStats(ctx context.Context) ([]v1.SystemStatItem, error) {
	stats, err := s.statRepo.List(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list system stats", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	items := make([]v1.SystemStatItem, 0, len(stats))
	for _, st := range stats {
		items = append(items, v1.SystemStatItem{Name: st.Name, Value: st.Value, Description: st.Description})
	}
	return items, nil
}
