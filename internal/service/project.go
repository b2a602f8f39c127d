package service

import (
	"context"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"

	"go.uber.org/zap"
)

// ProjectService is the read side of the facility mirror.
type ProjectService interface {
	ListProjects(ctx context.Context, req *v1.ListProjectsRequest) (*v1.ListProjectsResponseData, error)
	GetProject(ctx context.Context, id int64) (*v1.ProjectDetail, error)
	GetCollection(ctx context.Context, name string) (*v1.CollectionItem, error)
}

func NewProjectService(
	service *Service,
	projectRepo repository.ProjectRepository,
	userProjectRepo repository.UserProjectRepository,
	userRepo repository.UserRepository,
	collectionRepo repository.CollectionRepository,
) ProjectService {
	return &projectService{
		Service:         service,
		projectRepo:     projectRepo,
		userProjectRepo: userProjectRepo,
		userRepo:        userRepo,
		collectionRepo:  collectionRepo,
	}
}

type projectService struct {
	*Service
	projectRepo     repository.ProjectRepository
	userProjectRepo repository.UserProjectRepository
	userRepo        repository.UserRepository
	collectionRepo  repository.CollectionRepository
}

func (s *projectService) ListProjects(ctx context.Context, req *v1.ListProjectsRequest) (*v1.ListProjectsResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	var coreID *int64
	if req.CoreId > 0 {
		coreID = &req.CoreId
	}
	projects, total, err := s.projectRepo.ListWithPagination(ctx, page, pageSize, coreID, req.Active)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list projects", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	list := make([]v1.ProjectItem, 0, len(projects))
	for _, p := range projects {
		list = append(list, projectItem(p))
	}
	return &v1.ListProjectsResponseData{Total: total, List: list}, nil
}

func (s *projectService) GetProject(ctx context.Context, id int64) (*v1.ProjectDetail, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get project", zap.Int64("project_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if project == nil {
		return nil, v1.ErrProjectNotFound
	}
	memberships, err := s.userProjectRepo.ListByProject(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list project members", zap.Int64("project_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	usernames := make([]string, 0, len(memberships))
	for _, m := range memberships {
		usernames = append(usernames, m.Username)
	}
	users, err := s.userRepo.ListByUsernames(ctx, usernames)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list users", zap.Int64("project_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	byName := make(map[string]*model.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}

	detail := &v1.ProjectDetail{ProjectItem: projectItem(project), Members: make([]v1.MemberItem, 0, len(memberships))}
	for _, m := range memberships {
		item := v1.MemberItem{Username: m.Username, Enabled: m.Enabled}
		if u, ok := byName[m.Username]; ok {
			item.Name = u.Name
			item.Email = u.Email
		}
		detail.Members = append(detail.Members, item)
	}
	return detail, nil
}

func (s *projectService) GetCollection(ctx context.Context, name string) (*v1.CollectionItem, error) {
	collection, err := s.collectionRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get collection", zap.String("name", name), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if collection == nil {
		return nil, v1.ErrCollectionNotFound
	}
	item := &v1.CollectionItem{
		Name:        collection.Name,
		Quotas:      collection.Quotas,
		CapacityGb:  collection.CapacityGb,
		LastUpdated: collection.LastUpdated,
		Caches:      make([]v1.CollectionCacheItem, 0, len(collection.Caches)),
	}
	for _, c := range collection.Caches {
		item.Caches = append(item.Caches, v1.CollectionCacheItem{
			CacheName:    c.CacheName,
			Priority:     c.Priority,
			InodesLimit:  c.InodesLimit,
			InodesUsed:   c.InodesUsed,
			BlockLimitGb: c.BlockLimitGb,
			BlockUsedGb:  c.BlockUsedGb,
			LastUpdated:  c.LastUpdated,
		})
	}
	return item, nil
}

func projectItem(p *model.Project) v1.ProjectItem {
	return v1.ProjectItem{
		Id:          p.Id,
		CoreId:      p.CoreId,
		Name:        p.Name,
		Active:      p.Active,
		Type:        p.Type,
		Phase:       p.Phase,
		Description: p.Description,
		Collection:  p.Collection,
	}
}
