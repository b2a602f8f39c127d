package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/clowder"
	"pitschi/pkg/metrics"
	"pitschi/pkg/notify"
	"pitschi/pkg/pathkey"

	"go.uber.org/zap"
)

// Readiness is the outcome of comparing a dataset's File rows with its directory.
type Readiness struct {
	Root    string
	Ready   bool
	Missing []string
}

type IngestService interface {
	// Sweep ingests every imported/success dataset that is complete on disk
	// or whose booking ended long enough ago.
	Sweep(ctx context.Context) error
	CheckDataset(ctx context.Context, dataset *model.Dataset, project *model.Project) (*Readiness, error)
	// IngestDataset pushes the dataset's files to the repository. A non-nil
	// error means the space or dataset could not be resolved and nothing was uploaded.
	IngestDataset(ctx context.Context, info *DatasetInfo) (bool, []string, error)
}

func NewIngestService(
	service *Service,
	datasetRepo repository.DatasetRepository,
	fileRepo repository.FileRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	systemRepo repository.SystemRepository,
	projectRepo repository.ProjectRepository,
	repo clowder.Repository,
	notifier notify.Notifier,
) IngestService {
	return &ingestService{
		Service:     service,
		datasetRepo: datasetRepo,
		fileRepo:    fileRepo,
		repo:        repo,
		notifier:    notifier,
		loader: &datasetInfoLoader{
			bookingRepo: bookingRepo,
			userRepo:    userRepo,
			systemRepo:  systemRepo,
			projectRepo: projectRepo,
		},
		now: time.Now,
	}
}

type ingestService struct {
	*Service
	datasetRepo repository.DatasetRepository
	fileRepo    repository.FileRepository
	repo        clowder.Repository
	notifier    notify.Notifier
	loader      *datasetInfoLoader
	now         func() time.Time
}

func (s *ingestService) Sweep(ctx context.Context) error {
	if err := s.probeMount(); err != nil {
		s.logger.WithContext(ctx).Debug("mount point is not ready, skipping ingest", zap.Error(err))
		return nil
	}
	datasets, err := s.datasetRepo.ListByModeStatus(ctx, model.ModeImported, model.StatusSuccess)
	if err != nil {
		return fmt.Errorf("list imported datasets: %w", err)
	}
	s.logger.WithContext(ctx).Debug("ingest sweep", zap.Int("datasets", len(datasets)))
	for _, d := range datasets {
		if err := s.processDataset(ctx, d.Id); err != nil {
			s.logger.WithContext(ctx).Error("failed to process dataset", zap.Int64("dataset_id", d.Id), zap.Error(err))
		}
	}
	return nil
}

func (s *ingestService) probeMount() error {
	fi, err := os.Stat(s.opts.RDM.Prefix)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", s.opts.RDM.Prefix)
	}
	f, err := os.Open(s.opts.RDM.Prefix)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *ingestService) processDataset(ctx context.Context, id int64) error {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dataset == nil {
		return nil
	}
	info, err := s.loader.load(ctx, dataset)
	if err != nil {
		return err
	}
	if info.Booking == nil || info.Project == nil {
		return fmt.Errorf("cannot find project for booking %d", dataset.BookingId)
	}
	if info.Project.CollectionName() == "" {
		return fmt.Errorf("project %d has no collection", info.Project.Id)
	}

	readiness, err := s.CheckDataset(ctx, dataset, info.Project)
	if err != nil {
		return err
	}
	if !readiness.Ready {
		timedOut, err := s.timedOut(info.Booking)
		if err != nil {
			return err
		}
		if !timedOut {
			s.logger.WithContext(ctx).Info("dataset does not have all files yet",
				zap.Int64("dataset_id", dataset.Id), zap.Int("missing", len(readiness.Missing)))
			return nil
		}
		s.logger.WithContext(ctx).Warn("booking ended too long ago, ingesting incomplete dataset",
			zap.Int64("dataset_id", dataset.Id), zap.Strings("missing", readiness.Missing))
	}

	if err := s.datasetRepo.UpdateModeStatus(ctx, dataset.Id, model.ModeIngested, model.StatusOngoing); err != nil {
		return err
	}
	ok, reasons, err := s.IngestDataset(ctx, info)
	if err != nil {
		metrics.DatasetsIngested.WithLabelValues("retry").Inc()
		if rerr := s.datasetRepo.UpdateModeStatus(ctx, dataset.Id, model.ModeImported, model.StatusSuccess); rerr != nil {
			s.logger.WithContext(ctx).Error("failed to return dataset to imported", zap.Int64("dataset_id", dataset.Id), zap.Error(rerr))
		}
		return err
	}

	status := model.StatusSuccess
	if !ok {
		status = model.StatusFailed
	}
	metrics.DatasetsIngested.WithLabelValues(string(status)).Inc()
	if err := s.datasetRepo.UpdateModeStatus(ctx, dataset.Id, model.ModeIngested, status); err != nil {
		return err
	}
	s.logger.WithContext(ctx).Info("dataset ingested",
		zap.Int64("dataset_id", dataset.Id), zap.String("status", string(status)), zap.Strings("reasons", reasons))
	s.sendResult(ctx, info, ok, reasons)
	return nil
}

// timedOut reports whether the booking ended more than WaitTimeToSync ago.
func (s *ingestService) timedOut(booking *model.Booking) (bool, error) {
	end, err := booking.End(s.opts.Location)
	if err != nil {
		return false, err
	}
	return s.now().Sub(end) > s.opts.Ingest.WaitTimeToSync, nil
}

// datasetRoot is <prefix>/<collection segment>/<relative path>.
func (s *ingestService) datasetRoot(project *model.Project, dataset *model.Dataset) string {
	return filepath.Join(
		s.opts.RDM.Prefix,
		s.opts.RDM.Segment(project.CollectionName()),
		filepath.FromSlash(pathkey.ToSlash(dataset.RelPathFromRootCollection)),
	)
}

func expectedFiles(files []model.File) pathkey.Set[*model.File] {
	expected := make(pathkey.Set[*model.File], len(files))
	for i := range files {
		expected[pathkey.FromRel(files[i].Path)] = &files[i]
	}
	return expected
}

// walkDataset visits every non-hidden entry under root. Hidden directories
// are not descended into.
func walkDataset(root string, fn func(path string, d fs.DirEntry) error) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		if pathkey.Hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		return fn(p, d)
	})
}

func (s *ingestService) CheckDataset(ctx context.Context, dataset *model.Dataset, project *model.Project) (*Readiness, error) {
	root := s.datasetRoot(project, dataset)
	expected := expectedFiles(dataset.Files)
	err := walkDataset(root, func(p string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		key, err := pathkey.FromDisk(root, p)
		if err != nil {
			return err
		}
		expected.Take(key)
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	missing := expected.Keys()
	sort.Strings(missing)
	s.logger.WithContext(ctx).Debug("checked dataset",
		zap.Int64("dataset_id", dataset.Id), zap.String("root", root), zap.Int("missing", len(missing)))
	return &Readiness{Root: root, Ready: len(missing) == 0, Missing: missing}, nil
}

func (s *ingestService) resolveSpace(ctx context.Context, info *DatasetInfo) (string, error) {
	if info.Dataset.Space != "" {
		return info.Dataset.Space, nil
	}
	name := info.Project.Name
	space, err := s.repo.FindSpace(ctx, name)
	if err != nil {
		return "", fmt.Errorf("find space %q: %w", name, err)
	}
	if space == nil {
		if space, err = s.repo.CreateSpace(ctx, name, fmt.Sprintf("Project %d", info.Project.Id)); err != nil {
			return "", fmt.Errorf("create space %q: %w", name, err)
		}
	}
	if space.ID == "" {
		return "", fmt.Errorf("space %q has no id", name)
	}
	if err := s.datasetRepo.UpdateRepositoryIDs(ctx, info.Dataset.Id, space.ID, ""); err != nil {
		return "", err
	}
	info.Dataset.Space = space.ID
	return space.ID, nil
}

func (s *ingestService) resolveDataset(ctx context.Context, info *DatasetInfo, spaceID string) (string, error) {
	if info.Dataset.DatasetId != "" {
		return info.Dataset.DatasetId, nil
	}
	name := info.Dataset.Name
	datasets, err := s.repo.ListDatasets(ctx, spaceID)
	if err != nil {
		return "", fmt.Errorf("list datasets in space %s: %w", spaceID, err)
	}
	var id string
	for _, d := range datasets {
		if d.Name == name {
			id = d.ID
			break
		}
	}
	if id == "" {
		created, err := s.repo.CreateDataset(ctx, spaceID, name)
		if err != nil {
			return "", fmt.Errorf("create dataset %q: %w", name, err)
		}
		id = created.ID
		s.describe(ctx, info, id)
	}
	if err := s.datasetRepo.UpdateRepositoryIDs(ctx, info.Dataset.Id, "", id); err != nil {
		return "", err
	}
	info.Dataset.DatasetId = id
	return id, nil
}

// describe attaches provenance metadata and tags to a new repository dataset.
func (s *ingestService) describe(ctx context.Context, info *DatasetInfo, datasetID string) {
	username := optionalString(info.Booking.Username)
	projectID := optionalInt(info.Booking.ProjectId)
	metadata := map[string]interface{}{
		"system":    info.Dataset.OriginalMachine,
		"author":    username,
		"projectid": projectID,
		"bookingid": info.Booking.Id,
	}
	if err := s.repo.AddMetadata(ctx, datasetID, metadata); err != nil {
		s.logger.WithContext(ctx).Warn("failed to add dataset metadata", zap.String("repository_dataset", datasetID), zap.Error(err))
	}
	var tags []string
	for _, tag := range []string{info.Dataset.OriginalMachine, username, projectID} {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if err := s.repo.AddTags(ctx, datasetID, tags); err != nil {
		s.logger.WithContext(ctx).Warn("failed to add dataset tags", zap.String("repository_dataset", datasetID), zap.Error(err))
	}
}

func (s *ingestService) IngestDataset(ctx context.Context, info *DatasetInfo) (bool, []string, error) {
	dataset := info.Dataset
	spaceID, err := s.resolveSpace(ctx, info)
	if err != nil {
		return false, nil, err
	}
	datasetID, err := s.resolveDataset(ctx, info, spaceID)
	if err != nil {
		return false, nil, err
	}
	existing, err := s.repo.ListFolders(ctx, datasetID)
	if err != nil {
		return false, nil, fmt.Errorf("list folders: %w", err)
	}
	known := make(map[string]string, len(existing))
	for _, f := range existing {
		known[f.Name] = f.ID
	}

	root := s.datasetRoot(info.Project, dataset)
	expected := expectedFiles(dataset.Files)
	folders := map[string]string{}
	ok := true
	var reasons []string
	fail := func(reason string) {
		ok = false
		reasons = append(reasons, reason)
	}

	err = walkDataset(root, func(p string, d fs.DirEntry) error {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		parent := folders[filepath.ToSlash(filepath.Dir(rel))]

		if d.IsDir() {
			name := "/" + rel
			if id, found := known[name]; found {
				folders[rel] = id
				return nil
			}
			folder, err := s.repo.CreateFolder(ctx, datasetID, d.Name(), parent)
			if err != nil {
				s.logger.WithContext(ctx).Error("failed to create folder", zap.Int64("dataset_id", dataset.Id), zap.String("path", rel), zap.Error(err))
				return nil
			}
			folders[rel] = folder.ID
			known[name] = folder.ID
			return nil
		}

		key := pathkey.FromRel(rel)
		row, registered := expected.Take(key)
		if registered && !row.Ingestable() {
			return nil
		}
		if err := s.ingestFile(ctx, dataset.Id, datasetID, p, parent, key, row); err != nil {
			fail(fmt.Sprintf("Exception when ingesting file %s: %v", rel, err))
		}
		return nil
	})
	if err != nil {
		fail(fmt.Sprintf("Cannot read dataset directory %s: %v", root, err))
	}

	if ok && len(expected) > 0 {
		missing := expected.Keys()
		sort.Strings(missing)
		fail(fmt.Sprintf("Not all files were ingested. Missing: %s", strings.Join(missing, ", ")))
	}
	return ok, reasons, nil
}

// ingestFile uploads one file and records the outcome on its File row,
// creating the row when the client never registered the file.
func (s *ingestService) ingestFile(ctx context.Context, datasetID int64, repoDatasetID, fullPath, folderID string, key pathkey.Key, row *model.File) error {
	uploaded, uploadErr := s.repo.AddServerFile(ctx, repoDatasetID, fullPath, folderID)
	now := s.now()
	status := model.StatusSuccess
	fileID := ""
	if uploadErr != nil {
		status = model.StatusFailed
		s.logger.WithContext(ctx).Error("failed to ingest file", zap.Int64("dataset_id", datasetID), zap.String("path", fullPath), zap.Error(uploadErr))
	} else {
		fileID = uploaded.ID
	}
	metrics.FilesIngested.WithLabelValues(string(status)).Inc()

	var err error
	if row != nil {
		fields := map[string]interface{}{
			"mode":     model.ModeIngested,
			"status":   status,
			"finished": now,
		}
		if fileID != "" {
			fields["fileid"] = fileID
		}
		err = s.fileRepo.Update(ctx, row.Id, fields)
	} else {
		file := &model.File{
			Path:      key.String(),
			Mode:      model.ModeIngested,
			Status:    status,
			Finished:  &now,
			FileId:    fileID,
			DatasetId: datasetID,
		}
		if fi, statErr := os.Stat(fullPath); statErr == nil {
			file.SizeKb = float64(fi.Size()) / 1024.0
		}
		err = s.fileRepo.Create(ctx, file)
	}
	if uploadErr != nil {
		return uploadErr
	}
	return err
}

func (s *ingestService) sendResult(ctx context.Context, info *DatasetInfo, ok bool, reasons []string) {
	var (
		to, subject, body string
		err               error
	)
	if ok {
		to = info.Recipient()
		subject = subjectIngested
		links := s.accessLinks(info)
		links.RepositoryURL = s.repo.DatasetURL(info.Dataset.DatasetId, info.Dataset.Space)
		body, err = render(ingestedTmpl, links)
	} else {
		to = s.opts.AdminEmail
		subject = subjectIngestFailed
		body, err = render(ingestFailedTmpl, ingestFailure{
			DatasetID: info.Dataset.Id,
			Dataset:   info.Dataset.Name,
			Machine:   info.Dataset.OriginalMachine,
			Location:  info.Dataset.OriginalPath,
			BookingID: info.Booking.Id,
			SystemID:  optionalInt(info.Booking.SystemId),
			Username:  optionalString(info.Booking.Username),
			ProjectID: optionalInt(info.Booking.ProjectId),
			Reasons:   reasons,
		})
	}
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to render ingest email", zap.Error(err))
		return
	}
	if to == "" {
		s.logger.WithContext(ctx).Warn("no recipient for ingest email", zap.Int64("dataset_id", info.Dataset.Id))
		return
	}
	if err := s.notifier.SendEmail(ctx, to, subject, body); err != nil {
		s.logger.WithContext(ctx).Warn("failed to send ingest email", zap.Int64("dataset_id", info.Dataset.Id), zap.Error(err))
	}
}
