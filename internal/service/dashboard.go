package service

import (
	"context"
	"time"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"

	"go.uber.org/zap"
)

type DashboardService interface {
	GetOverview(ctx context.Context) (*v1.DashboardOverviewData, error)
	GetSystems(ctx context.Context, req *v1.DashboardSystemsRequest) (*v1.DashboardSystemsData, error)
}

func NewDashboardService(
	service *Service,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	coreRepo repository.CoreRepository,
	systemRepo repository.SystemRepository,
	bookingRepo repository.BookingRepository,
	datasetRepo repository.DatasetRepository,
	admin AdminService,
) DashboardService {
	return &dashboardService{
		Service:     service,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		coreRepo:    coreRepo,
		systemRepo:  systemRepo,
		bookingRepo: bookingRepo,
		datasetRepo: datasetRepo,
		admin:       admin,
	}
}

type dashboardService struct {
	*Service
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	coreRepo    repository.CoreRepository
	systemRepo  repository.SystemRepository
	bookingRepo repository.BookingRepository
	datasetRepo repository.DatasetRepository
	admin       AdminService
}

// GetOverview summarises the facility mirror and the dataset pipeline.
func (s *dashboardService) GetOverview(ctx context.Context) (*v1.DashboardOverviewData, error) {
	today := time.Now().In(s.opts.Location).Format(model.BookingDateLayout)
	data := &v1.DashboardOverviewData{Date: today, Pipeline: []v1.PipelineStage{}}

	var err error
	if data.Summary.ProjectCount, err = s.projectRepo.Count(ctx); err != nil {
		s.logger.WithContext(ctx).Error("failed to count projects", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if data.Summary.UserCount, err = s.userRepo.Count(ctx); err != nil {
		s.logger.WithContext(ctx).Error("failed to count users", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	systems, err := s.systemRepo.List(ctx, nil)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list systems", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	data.Summary.SystemCount = int64(len(systems))
	if data.Summary.BookingsToday, err = s.bookingRepo.CountByDate(ctx, today); err != nil {
		s.logger.WithContext(ctx).Error("failed to count bookings", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	counts, err := s.datasetRepo.CountByModeStatus(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to count datasets", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	for _, c := range counts {
		data.Pipeline = append(data.Pipeline, v1.PipelineStage{Mode: string(c.Mode), Status: string(c.Status), Count: c.Count})
		switch {
		case c.Status == model.StatusFailed:
			data.Summary.DatasetsFailed += c.Count
		case c.Mode == model.ModeIngested && c.Status == model.StatusSuccess:
			data.Summary.DatasetsIngestedOK += c.Count
		default:
			data.Summary.DatasetsInFlight += c.Count
		}
	}

	// a failed guard read does not fail the overview
	if status, err := s.admin.SyncStatus(ctx); err == nil {
		data.Sync = *status
	}
	return data, nil
}

func (s *dashboardService) GetSystems(ctx context.Context, req *v1.DashboardSystemsRequest) (*v1.DashboardSystemsData, error) {
	cores, err := s.coreRepo.List(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list cores", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	systems, err := s.systemRepo.List(ctx, req.CoreId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list systems", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	byCore := make(map[int64][]v1.SystemItem)
	for _, sys := range systems {
		byCore[sys.CoreId] = append(byCore[sys.CoreId], v1.SystemItem{Id: sys.Id, Type: sys.Type, Name: sys.Name, Pid: sys.Pid})
	}

	data := &v1.DashboardSystemsData{Cores: make([]v1.CoreItem, 0, len(cores))}
	for _, c := range cores {
		if req.CoreId != nil && c.Id != *req.CoreId {
			continue
		}
		items := byCore[c.Id]
		if items == nil {
			items = []v1.SystemItem{}
		}
		data.Cores = append(data.Cores, v1.CoreItem{Id: c.Id, ShortName: c.ShortName, LongName: c.LongName, Systems: items})
	}
	return data, nil
}
