package service

import (
	"context"
	"errors"
	"time"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/notify"
	"pitschi/pkg/pathkey"

	"go.uber.org/zap"
)

type DatasetService interface {
	Create(ctx context.Context, req *v1.CreateDatasetRequest) (*v1.DatasetDetail, error)
	Update(ctx context.Context, id int64, req *v1.UpdateDatasetRequest) (*v1.DatasetDetail, error)
	Get(ctx context.Context, id int64) (*v1.DatasetDetail, error)
	List(ctx context.Context, req *v1.ListDatasetsRequest) (*v1.ListDatasetsResponseData, error)
	ListFailed(ctx context.Context, days int) (*v1.ListDatasetsResponseData, error)
	// Reset moves a failed dataset back one stage so the next sweep retries it.
	Reset(ctx context.Context, id int64) (*v1.DatasetDetail, error)
	Check(ctx context.Context, id int64) (*v1.CheckDatasetResponseData, error)
}

func NewDatasetService(
	service *Service,
	datasetRepo repository.DatasetRepository,
	fileRepo repository.FileRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	systemRepo repository.SystemRepository,
	projectRepo repository.ProjectRepository,
	ingest IngestService,
	notifier notify.Notifier,
) DatasetService {
	return &datasetService{
		Service:     service,
		datasetRepo: datasetRepo,
		fileRepo:    fileRepo,
		ingest:      ingest,
		notifier:    notifier,
		loader: &datasetInfoLoader{
			bookingRepo: bookingRepo,
			userRepo:    userRepo,
			systemRepo:  systemRepo,
			projectRepo: projectRepo,
		},
	}
}

type datasetService struct {
	*Service
	datasetRepo repository.DatasetRepository
	fileRepo    repository.FileRepository
	ingest      IngestService
	notifier    notify.Notifier
	loader      *datasetInfoLoader
}

// parseState validates a mode/status pair, filling blanks from the fallback.
func parseState(mode, status string, fallbackMode model.Mode, fallbackStatus model.Status) (model.Mode, model.Status, error) {
	m, st := fallbackMode, fallbackStatus
	if mode != "" {
		m = model.Mode(mode)
	}
	if status != "" {
		st = model.Status(status)
	}
	if !m.Valid() || !st.Valid() {
		return "", "", v1.ErrInvalidMode
	}
	return m, st, nil
}

func (s *datasetService) Create(ctx context.Context, req *v1.CreateDatasetRequest) (*v1.DatasetDetail, error) {
	mode, status, err := parseState(req.Mode, req.Status, model.ModeInTransit, model.StatusOngoing)
	if err != nil {
		return nil, err
	}
	booking, err := s.loader.bookingRepo.GetByID(ctx, req.BookingId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get booking", zap.Int64("booking_id", req.BookingId), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if booking == nil {
		return nil, v1.ErrBookingNotFound
	}

	now := time.Now()
	received := req.Received
	if received == nil {
		received = &now
	}
	dataset := &model.Dataset{
		OriginalMachine:           req.OriginalMachine,
		OriginalPath:              req.OriginalPath,
		NetworkPath:               req.NetworkPath,
		RelPathFromRootCollection: req.RelPathFromRootCollection,
		Name:                      req.Name,
		Received:                  received,
		Modified:                  req.Modified,
		Finished:                  req.Finished,
		Desc:                      req.Desc,
		Mode:                      mode,
		Status:                    status,
		BookingId:                 req.BookingId,
	}
	seen := map[pathkey.Key]struct{}{}
	for _, f := range req.Files {
		key := pathkey.FromRel(f.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fm, fs, err := parseState(f.Mode, f.Status, mode, status)
		if err != nil {
			return nil, err
		}
		dataset.Files = append(dataset.Files, model.File{
			Path:      f.Path,
			HashValue: f.HashValue,
			SizeKb:    f.SizeKb,
			Mode:      fm,
			Status:    fs,
			Received:  f.Received,
			Modified:  f.Modified,
			Finished:  f.Finished,
		})
	}
	if err := s.datasetRepo.Create(ctx, dataset); err != nil {
		s.logger.WithContext(ctx).Error("failed to create dataset", zap.String("name", req.Name), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	s.logger.WithContext(ctx).Info("dataset created",
		zap.Int64("dataset_id", dataset.Id), zap.Int64("booking_id", dataset.BookingId), zap.Int("files", len(dataset.Files)))

	if mode == model.ModeImported && status == model.StatusSuccess {
		s.sendImported(ctx, dataset)
	}
	return s.Get(ctx, dataset.Id)
}

func (s *datasetService) Update(ctx context.Context, id int64, req *v1.UpdateDatasetRequest) (*v1.DatasetDetail, error) {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if dataset == nil {
		return nil, v1.ErrDatasetNotFound
	}

	var mode, status string
	if req.Mode != nil {
		mode = *req.Mode
	}
	if req.Status != nil {
		status = *req.Status
	}
	newMode, newStatus, err := parseState(mode, status, dataset.Mode, dataset.Status)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(dataset.Mode, dataset.Status, newMode, newStatus) {
		return nil, v1.ErrInvalidTransition
	}

	fields := map[string]interface{}{}
	if req.NetworkPath != nil {
		fields["networkpath"] = *req.NetworkPath
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Desc != nil {
		fields["desc"] = *req.Desc
	}
	if req.Modified != nil {
		fields["modified"] = *req.Modified
	}
	if req.Finished != nil {
		fields["finished"] = *req.Finished
	}
	if newMode != dataset.Mode || newStatus != dataset.Status {
		fields["mode"] = newMode
		fields["status"] = newStatus
		if _, given := fields["finished"]; !given && newStatus != model.StatusOngoing {
			fields["finished"] = time.Now()
		}
	}

	existing := expectedFiles(dataset.Files)
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.datasetRepo.Update(ctx, id, fields); err != nil {
			return err
		}
		for _, f := range req.Files {
			if err := s.upsertFile(ctx, id, existing, f, newMode, newStatus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, v1.ErrInvalidMode) || errors.Is(err, v1.ErrInvalidTransition) {
			return nil, err
		}
		s.logger.WithContext(ctx).Error("failed to update dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	imported := newMode == model.ModeImported && newStatus == model.StatusSuccess
	wasImported := dataset.Mode == model.ModeImported && dataset.Status == model.StatusSuccess
	if imported && !wasImported {
		updated, err := s.datasetRepo.GetByID(ctx, id)
		if err == nil && updated != nil {
			s.sendImported(ctx, updated)
		}
	}
	return s.Get(ctx, id)
}

// upsertFile matches request files to rows by case-insensitive path.
func (s *datasetService) upsertFile(ctx context.Context, datasetID int64, existing pathkey.Set[*model.File], f v1.FileRequest, mode model.Mode, status model.Status) error {
	key := pathkey.FromRel(f.Path)
	row, ok := existing[key]
	if !ok {
		fm, fs, err := parseState(f.Mode, f.Status, mode, status)
		if err != nil {
			return err
		}
		file := &model.File{
			Path:      f.Path,
			HashValue: f.HashValue,
			SizeKb:    f.SizeKb,
			Mode:      fm,
			Status:    fs,
			Received:  f.Received,
			Modified:  f.Modified,
			Finished:  f.Finished,
			DatasetId: datasetID,
		}
		if err := s.fileRepo.Create(ctx, file); err != nil {
			return err
		}
		existing[key] = file
		return nil
	}

	fm, fs, err := parseState(f.Mode, f.Status, row.Mode, row.Status)
	if err != nil {
		return err
	}
	if !model.CanTransition(row.Mode, row.Status, fm, fs) {
		return v1.ErrInvalidTransition
	}
	fields := map[string]interface{}{}
	if fm != row.Mode || fs != row.Status {
		fields["mode"] = fm
		fields["status"] = fs
	}
	if f.HashValue != "" {
		fields["hashvalue"] = f.HashValue
	}
	if f.SizeKb != 0 {
		fields["size_kb"] = f.SizeKb
	}
	if f.Received != nil {
		fields["received"] = *f.Received
	}
	if f.Modified != nil {
		fields["modified"] = *f.Modified
	}
	if f.Finished != nil {
		fields["finished"] = *f.Finished
	}
	return s.fileRepo.Update(ctx, row.Id, fields)
}

func (s *datasetService) Get(ctx context.Context, id int64) (*v1.DatasetDetail, error) {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if dataset == nil {
		return nil, v1.ErrDatasetNotFound
	}
	return datasetDetail(dataset), nil
}

func (s *datasetService) List(ctx context.Context, req *v1.ListDatasetsRequest) (*v1.ListDatasetsResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	datasets, total, err := s.datasetRepo.ListWithPagination(ctx, page, pageSize, model.Mode(req.Mode), model.Status(req.Status))
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list datasets", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return datasetList(datasets, total), nil
}

func (s *datasetService) ListFailed(ctx context.Context, days int) (*v1.ListDatasetsResponseData, error) {
	if days <= 0 {
		days = s.opts.Sync.ProjectSyncDays
	}
	datasets, err := s.datasetRepo.ListFailedSince(ctx, time.Now().AddDate(0, 0, -days))
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list failed datasets", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return datasetList(datasets, int64(len(datasets))), nil
}

func (s *datasetService) Reset(ctx context.Context, id int64) (*v1.DatasetDetail, error) {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if dataset == nil {
		return nil, v1.ErrDatasetNotFound
	}
	mode, status, ok := model.ResetTarget(dataset.Mode, dataset.Status)
	if !ok {
		return nil, v1.ErrResetNotAllowed
	}
	if err := s.datasetRepo.UpdateModeStatus(ctx, id, mode, status); err != nil {
		s.logger.WithContext(ctx).Error("failed to reset dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	s.logger.WithContext(ctx).Info("dataset reset",
		zap.Int64("dataset_id", id),
		zap.String("from", string(dataset.Mode)+"/"+string(dataset.Status)),
		zap.String("to", string(mode)+"/"+string(status)))
	return s.Get(ctx, id)
}

func (s *datasetService) Check(ctx context.Context, id int64) (*v1.CheckDatasetResponseData, error) {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if dataset == nil {
		return nil, v1.ErrDatasetNotFound
	}
	info, err := s.loader.load(ctx, dataset)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to load dataset booking", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if info.Project == nil || info.Project.CollectionName() == "" {
		return nil, v1.ErrCollectionNotFound
	}
	readiness, err := s.ingest.CheckDataset(ctx, dataset, info.Project)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to check dataset", zap.Int64("dataset_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	missing := readiness.Missing
	if missing == nil {
		missing = []string{}
	}
	return &v1.CheckDatasetResponseData{Ready: readiness.Ready, Missing: missing}, nil
}

func (s *datasetService) sendImported(ctx context.Context, dataset *model.Dataset) {
	info, err := s.loader.load(ctx, dataset)
	if err != nil || info.Project == nil {
		s.logger.WithContext(ctx).Warn("cannot send import email", zap.Int64("dataset_id", dataset.Id), zap.Error(err))
		return
	}
	to := info.Recipient()
	if to == "" {
		s.logger.WithContext(ctx).Warn("no recipient for import email", zap.Int64("dataset_id", dataset.Id))
		return
	}
	links := s.accessLinks(info)
	if s.opts.RDM.SmbURL != "" {
		links.SmbPath = s.opts.RDM.SmbURL + "/" + info.Project.CollectionName() + "/" + links.RelPath
	}
	body, err := render(importedTmpl, links)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to render import email", zap.Error(err))
		return
	}
	if err := s.notifier.SendEmail(ctx, to, subjectImported, body); err != nil {
		s.logger.WithContext(ctx).Warn("failed to send import email", zap.Int64("dataset_id", dataset.Id), zap.Error(err))
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

func datasetItem(d *model.Dataset) v1.DatasetItem {
	return v1.DatasetItem{
		Id:                        d.Id,
		OriginalMachine:           d.OriginalMachine,
		OriginalPath:              d.OriginalPath,
		NetworkPath:               d.NetworkPath,
		RelPathFromRootCollection: d.RelPathFromRootCollection,
		Name:                      d.Name,
		Received:                  d.Received,
		Modified:                  d.Modified,
		Finished:                  d.Finished,
		Desc:                      d.Desc,
		Mode:                      string(d.Mode),
		Status:                    string(d.Status),
		Space:                     d.Space,
		DatasetId:                 d.DatasetId,
		BookingId:                 d.BookingId,
	}
}

func datasetDetail(d *model.Dataset) *v1.DatasetDetail {
	detail := &v1.DatasetDetail{DatasetItem: datasetItem(d), Files: make([]v1.FileItem, 0, len(d.Files))}
	for _, f := range d.Files {
		detail.Files = append(detail.Files, v1.FileItem{
			Id:        f.Id,
			Path:      f.Path,
			HashValue: f.HashValue,
			SizeKb:    f.SizeKb,
			Mode:      string(f.Mode),
			Status:    string(f.Status),
			Received:  f.Received,
			Modified:  f.Modified,
			Finished:  f.Finished,
			FileId:    f.FileId,
		})
	}
	return detail
}

func datasetList(datasets []*model.Dataset, total int64) *v1.ListDatasetsResponseData {
	list := make([]v1.DatasetItem, 0, len(datasets))
	for _, d := range datasets {
		list = append(list, datasetItem(d))
	}
	return &v1.ListDatasetsResponseData{Total: total, List: list}
}
