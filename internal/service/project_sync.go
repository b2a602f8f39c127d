package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/metrics"
	"pitschi/pkg/notify"
	"pitschi/pkg/ppms"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

type ProjectSyncService interface {
	// SyncAll is the scheduled run: failed dataset report, cores, systems and
	// every project. It is a no-op while another run holds the guard.
	SyncAll(ctx context.Context) error
	// SyncProjects reconciles every project above the starting ref when extra
	// is empty, otherwise only the projects in extra, adding the listed
	// facility user ids to their member sets.
	SyncProjects(ctx context.Context, extra map[int64][]int64, alert bool) error
	SyncCores(ctx context.Context) error
	SyncSystems(ctx context.Context) error
	NotifyFailedDatasets(ctx context.Context) error
}

func NewProjectSyncService(
	service *Service,
	facility ppms.Facility,
	projectRepo repository.ProjectRepository,
	collectionRepo repository.CollectionRepository,
	userRepo repository.UserRepository,
	userProjectRepo repository.UserProjectRepository,
	coreRepo repository.CoreRepository,
	systemRepo repository.SystemRepository,
	datasetRepo repository.DatasetRepository,
	guard SyncGuard,
	notifier notify.Notifier,
) ProjectSyncService {
	size := service.opts.Sync.UserCacheSize
	if size <= 0 {
		size = 1024
	}
	return &projectSyncService{
		Service:         service,
		facility:        facility,
		projectRepo:     projectRepo,
		collectionRepo:  collectionRepo,
		userRepo:        userRepo,
		userProjectRepo: userProjectRepo,
		coreRepo:        coreRepo,
		systemRepo:      systemRepo,
		datasetRepo:     datasetRepo,
		guard:           guard,
		notifier:        notifier,
		usersByID:       expirable.NewLRU[int64, ppms.User](size, nil, service.opts.Sync.UserCacheTTL),
	}
}

type projectSyncService struct {
	*Service
	facility        ppms.Facility
	projectRepo     repository.ProjectRepository
	collectionRepo  repository.CollectionRepository
	userRepo        repository.UserRepository
	userProjectRepo repository.UserProjectRepository
	coreRepo        repository.CoreRepository
	systemRepo      repository.SystemRepository
	datasetRepo     repository.DatasetRepository
	guard           SyncGuard
	notifier        notify.Notifier
	usersByID       *expirable.LRU[int64, ppms.User]
}

func (s *projectSyncService) SyncAll(ctx context.Context) error {
	release, acquired, err := s.guard.TryAcquire(ctx, model.StatSyncingProjects)
	if err != nil {
		return fmt.Errorf("acquire sync guard: %w", err)
	}
	if !acquired {
		return nil
	}
	defer release()

	var errs []error
	if err := s.NotifyFailedDatasets(ctx); err != nil {
		errs = append(errs, fmt.Errorf("notify failed datasets: %w", err))
	}
	if err := s.SyncCores(ctx); err != nil {
		errs = append(errs, fmt.Errorf("sync cores: %w", err))
	}
	if err := s.SyncSystems(ctx); err != nil {
		errs = append(errs, fmt.Errorf("sync systems: %w", err))
	}
	if err := s.SyncProjects(ctx, nil, true); err != nil {
		errs = append(errs, fmt.Errorf("sync projects: %w", err))
	}
	return errors.Join(errs...)
}

func (s *projectSyncService) NotifyFailedDatasets(ctx context.Context) error {
	days := s.opts.Sync.ProjectSyncDays
	if days <= 0 {
		return nil
	}
	since := time.Now().AddDate(0, 0, -days)
	datasets, err := s.datasetRepo.ListFailedSince(ctx, since)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		return nil
	}
	body, err := render(failedDatasetsTmpl, failedDatasets{Days: days, Datasets: datasets})
	if err != nil {
		return err
	}
	if s.opts.AdminEmail != "" {
		if err := s.notifier.SendEmail(ctx, s.opts.AdminEmail, subjectFailedDatasets, body); err != nil {
			s.logger.WithContext(ctx).Warn("failed to send failed datasets email", zap.Error(err))
		}
	}
	names := make([]string, 0, len(datasets))
	for _, d := range datasets {
		names = append(names, fmt.Sprintf("%d %s (%s/%s)", d.Id, d.Name, d.Mode, d.Status))
	}
	msg := fmt.Sprintf("%d dataset(s) failed in the last %d day(s): %s", len(datasets), days, strings.Join(names, "; "))
	if err := s.notifier.SendAlert(ctx, notify.SeverityWarning, "Dataset import/ingest fails", msg); err != nil {
		s.logger.WithContext(ctx).Warn("failed to send failed datasets alert", zap.Error(err))
	}
	return nil
}

func (s *projectSyncService) SyncCores(ctx context.Context) error {
	cores, err := s.facility.ListCores(ctx)
	if err != nil {
		return err
	}
	for _, c := range cores {
		if c.ID == 0 {
			continue
		}
		_, err := s.coreRepo.Upsert(ctx, &model.Core{
			Id:          int64(c.ID),
			Institution: c.Institution,
			ShortName:   c.ShortName,
			LongName:    c.LongName,
			RorId:       c.RorID,
		})
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to upsert core", zap.Int64("core_id", int64(c.ID)), zap.Error(err))
		}
	}
	return nil
}

func (s *projectSyncService) SyncSystems(ctx context.Context) error {
	systems, err := s.facility.ListSystems(ctx)
	if err != nil {
		return err
	}
	pids := map[int64]string{}
	list, err := s.facility.ListSystemPIDs(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Warn("failed to list system pids", zap.Error(err))
	}
	for _, p := range list {
		pids[int64(p.SystemID)] = p.PID
	}
	for _, sys := range systems {
		_, err := s.systemRepo.Upsert(ctx, &model.System{
			Id:     sys.ID,
			CoreId: sys.CoreID,
			Type:   sys.Type,
			Name:   sys.Name,
			Pid:    pids[sys.ID],
		})
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to upsert system", zap.Int64("system_id", sys.ID), zap.Error(err))
		}
	}
	return nil
}

// syncRun is the state shared by the projects of one SyncProjects call.
type syncRun struct {
	alert       bool
	byLogin     map[string]ppms.User
	byID        map[int64]string
	collections map[int64]string
	resolved    map[string]bool
}

func (s *projectSyncService) SyncProjects(ctx context.Context, extra map[int64][]int64, alert bool) error {
	projects, err := s.facility.ListProjects(ctx, false)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	byID := make(map[int64]ppms.Project, len(projects))
	for _, p := range projects {
		byID[int64(p.ID)] = p
	}

	var ids []int64
	if len(extra) == 0 {
		for id := range byID {
			if id >= s.opts.Sync.ProjectStartingRef {
				ids = append(ids, id)
			}
		}
	} else {
		for id := range extra {
			if id >= s.opts.Sync.ProjectStartingRef {
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	run := &syncRun{
		alert:    alert,
		byLogin:  map[string]ppms.User{},
		byID:     map[int64]string{},
		resolved: map[string]bool{},
	}
	users, err := s.facility.ListUsers(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Warn("failed to list facility users, falling back to single lookups", zap.Error(err))
	}
	for _, u := range users {
		if u.Login == "" {
			continue
		}
		run.byLogin[u.Login] = u
		if u.ID != 0 {
			run.byID[int64(u.ID)] = u.Login
		}
	}
	if len(extra) == 0 {
		s.prefetchCollections(ctx, run)
	}

	failed := 0
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			s.logger.WithContext(ctx).Warn("project not known to facility", zap.Int64("project_id", id))
			continue
		}
		if err := s.syncProject(ctx, run, p, extra[id]); err != nil {
			failed++
			s.logger.WithContext(ctx).Error("failed to sync project", zap.Int64("project_id", id), zap.Error(err))
		}
	}
	s.logger.WithContext(ctx).Info("projects synced",
		zap.Int("projects", len(ids)), zap.Int("failed", failed), zap.Bool("partial", len(extra) > 0))
	return nil
}

func (s *projectSyncService) prefetchCollections(ctx context.Context, run *syncRun) {
	list, err := s.facility.ListProjectCollections(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Warn("failed to list project collections", zap.Error(err))
		return
	}
	run.collections = make(map[int64]string, len(list))
	for _, c := range list {
		run.collections[c.ProjectID] = strings.TrimSpace(c.Collection)
	}
}

func (s *projectSyncService) syncProject(ctx context.Context, run *syncRun, p ppms.Project, extraUsers []int64) error {
	project := &model.Project{
		Id:          int64(p.ID),
		CoreId:      int64(p.CoreID),
		Name:        p.Name,
		Active:      bool(p.Active),
		Type:        p.Type,
		Phase:       int(p.Phase),
		Description: p.Description,
	}
	wrote, err := s.projectRepo.Upsert(ctx, project)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}
	if wrote {
		metrics.ProjectsWritten.WithLabelValues("upsert").Inc()
	}

	if err := s.syncCollection(ctx, run, project.Id, project.CoreId); err != nil {
		s.logger.WithContext(ctx).Warn("failed to sync project collection", zap.Int64("project_id", project.Id), zap.Error(err))
	}

	members, err := s.facility.ListProjectMembers(ctx, project.Id)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}
	logins := make([]string, 0, len(members)+len(extraUsers))
	for _, m := range members {
		logins = append(logins, m.Login)
		if m.ID != 0 {
			if _, ok := run.byID[m.ID]; !ok {
				run.byID[m.ID] = m.Login
			}
		}
	}
	for _, uid := range extraUsers {
		if login := s.loginForID(ctx, run, uid, project.CoreId); login != "" {
			logins = append(logins, login)
		}
	}

	var usernames []string
	for _, login := range slice.Unique(logins) {
		ok, seen := run.resolved[login]
		if !seen {
			ok = s.resolveUser(ctx, run, login)
			run.resolved[login] = ok
		}
		if ok {
			usernames = append(usernames, login)
		}
	}

	changes, err := s.userProjectRepo.ReplaceMembers(ctx, project.Id, usernames)
	if err != nil {
		return fmt.Errorf("replace members: %w", err)
	}
	metrics.MembershipChanges.WithLabelValues("enabled").Add(float64(changes.Enabled))
	metrics.MembershipChanges.WithLabelValues("disabled").Add(float64(changes.Disabled))
	metrics.MembershipChanges.WithLabelValues("added").Add(float64(changes.Added))
	if wrote || changes.Changed() {
		s.logger.WithContext(ctx).Info("project reconciled",
			zap.Int64("project_id", project.Id),
			zap.Bool("project_written", wrote),
			zap.Int("enabled", changes.Enabled),
			zap.Int("disabled", changes.Disabled),
			zap.Int("added", changes.Added))
	}
	return nil
}

// syncCollection links the project to its storage collection, creating the
// collection with default caches the first time it is seen.
func (s *projectSyncService) syncCollection(ctx context.Context, run *syncRun, projectID, coreID int64) error {
	stored, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil || stored == nil {
		return err
	}
	name, known := run.collections[projectID]
	if !known {
		if stored.CollectionName() != "" {
			return nil
		}
		if name, err = s.facility.GetProjectCollection(ctx, coreID, projectID); err != nil {
			return err
		}
		name = strings.TrimSpace(name)
	}

	switch {
	case name == "":
		if stored.Collection == nil {
			return nil
		}
		return s.projectRepo.UpdateCollection(ctx, projectID, nil)
	case !s.opts.RDM.Provisioned(name):
		return nil
	}

	exists, err := s.collectionRepo.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		collection := &model.Collection{Name: name}
		for _, c := range s.opts.RDM.CacheDefaults {
			collection.Caches = append(collection.Caches, model.CollectionCache{CacheName: c.Name, Priority: c.Priority})
		}
		if err := s.collectionRepo.Create(ctx, collection); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		s.logger.WithContext(ctx).Info("collection created", zap.String("collection", name), zap.Int64("project_id", projectID))
	}
	if stored.CollectionName() == name {
		return nil
	}
	return s.projectRepo.UpdateCollection(ctx, projectID, &name)
}

// loginForID maps a facility user id to a login through the bulk report, then
// a cache of live lookups.
func (s *projectSyncService) loginForID(ctx context.Context, run *syncRun, userID, coreID int64) string {
	if login, ok := run.byID[userID]; ok {
		return login
	}
	user, ok := s.usersByID.Get(userID)
	if !ok {
		found, err := s.facility.GetUserByID(ctx, userID, coreID)
		if err != nil {
			s.logger.WithContext(ctx).Warn("failed to look up facility user", zap.Int64("user_id", userID), zap.Error(err))
			return ""
		}
		if found == nil || found.Login == "" {
			s.logger.WithContext(ctx).Warn("facility user not found", zap.Int64("user_id", userID))
			return ""
		}
		user = *found
		s.usersByID.Add(userID, user)
	}
	run.byID[userID] = user.Login
	if _, ok := run.byLogin[user.Login]; !ok {
		run.byLogin[user.Login] = user
	}
	return user.Login
}

// lookupUser prefers the bulk report and falls back to a live lookup. A nil
// user without error means the facility has no such login.
func (s *projectSyncService) lookupUser(ctx context.Context, run *syncRun, login string) (*ppms.User, error) {
	if u, ok := run.byLogin[login]; ok {
		return &u, nil
	}
	u, err := s.facility.GetUser(ctx, login)
	if errors.Is(err, ppms.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	run.byLogin[login] = *u
	return u, nil
}

// resolveUser upserts the local row for login and reports whether it exists afterwards.
func (s *projectSyncService) resolveUser(ctx context.Context, run *syncRun, login string) bool {
	info, err := s.lookupUser(ctx, run, login)
	if err != nil {
		s.logger.WithContext(ctx).Warn("failed to look up facility user", zap.String("username", login), zap.Error(err))
	}
	if info == nil {
		existing, err := s.userRepo.GetByUsername(ctx, login)
		return err == nil && existing != nil
	}

	user := &model.User{
		Username: login,
		UserId:   int64(info.ID),
		Name:     info.DisplayName(),
		Email:    info.Email,
	}
	if user.UserId != 0 {
		holders, err := s.userRepo.ListByUserId(ctx, user.UserId)
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to list users by id", zap.Int64("user_id", user.UserId), zap.Error(err))
			return false
		}
		for _, h := range holders {
			if h.Username != login {
				s.resolveDuplicate(ctx, run, h, login, user.UserId)
			}
		}
	}
	if _, err := s.userRepo.Upsert(ctx, user); err != nil {
		s.logger.WithContext(ctx).Error("failed to upsert user", zap.String("username", login), zap.Error(err))
		return false
	}
	return true
}

// resolveDuplicate handles stale, a local user holding the id that login now
// owns upstream. When the facility reports a different id for stale the row is
// corrected, otherwise the condition is escalated.
func (s *projectSyncService) resolveDuplicate(ctx context.Context, run *syncRun, stale *model.User, login string, userID int64) {
	logger := s.logger.WithContext(ctx).With(
		zap.Int64("user_id", userID), zap.String("username", login), zap.String("stale_username", stale.Username))

	current, err := s.lookupUser(ctx, run, stale.Username)
	if err != nil {
		logger.Warn("failed to look up stale user", zap.Error(err))
	}
	if current != nil && current.ID != 0 && int64(current.ID) != userID {
		if err := s.userRepo.UpdateUserId(ctx, stale.Username, int64(current.ID)); err != nil {
			logger.Error("failed to correct stale user id", zap.Error(err))
			return
		}
		logger.Warn("corrected stale user id", zap.Int64("corrected_id", int64(current.ID)))
		s.alertDuplicate(ctx, run, notify.SeverityWarning, subjectDuplicateWarn,
			fmt.Sprintf("User id %d moved from %s to %s; %s now has id %d.", userID, stale.Username, login, stale.Username, int64(current.ID)))
		return
	}

	logger.Error("duplicate facility user id")
	s.alertDuplicate(ctx, run, notify.SeverityError, subjectDuplicateError,
		fmt.Sprintf("User id %d is held by both %s and %s. %s may have been deleted in the facility system.", userID, stale.Username, login, stale.Username))
}

func (s *projectSyncService) alertDuplicate(ctx context.Context, run *syncRun, severity notify.Severity, subject, message string) {
	if !run.alert {
		return
	}
	if s.opts.AdminEmail != "" {
		if err := s.notifier.SendEmail(ctx, s.opts.AdminEmail, subject, "<p>"+html.EscapeString(message)+"</p>"); err != nil {
			s.logger.WithContext(ctx).Warn("failed to send duplicate user email", zap.Error(err))
		}
	}
	if err := s.notifier.SendAlert(ctx, severity, "RIMS sync duplicate userid", message); err != nil {
		s.logger.WithContext(ctx).Warn("failed to send duplicate user alert", zap.Error(err))
	}
}
