package repository

import (
	"context"

	"pitschi/internal/model"

	"gorm.io/gorm/clause"
)

// MembershipChanges counts the rows touched by a membership replacement.
type MembershipChanges struct {
	Enabled  int
	Disabled int
	Added    int
}

// Changed reports whether any row was written.
func (c MembershipChanges) Changed() bool {
	return c.Enabled+c.Disabled+c.Added > 0
}

type UserProjectRepository interface {
	// ReplaceMembers makes usernames the enabled member set of the project.
	// Absent members are disabled, never deleted.
	ReplaceMembers(ctx context.Context, projectID int64, usernames []string) (MembershipChanges, error)
	// EnsureMembership creates a disabled row when none exists for the pair.
	EnsureMembership(ctx context.Context, username string, projectID int64) error
	ListByProject(ctx context.Context, projectID int64) ([]*model.UserProject, error)
}

func NewUserProjectRepository(
	repository *Repository,
) UserProjectRepository {
	return &userProjectRepository{
		Repository: repository,
	}
}

type userProjectRepository struct {
	*Repository
}

func (r *userProjectRepository) ReplaceMembers(ctx context.Context, projectID int64, usernames []string) (MembershipChanges, error) {
	var changes MembershipChanges
	err := r.Transaction(ctx, func(ctx context.Context) error {
		rows, err := r.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		wanted := make(map[string]struct{}, len(usernames))
		for _, u := range usernames {
			wanted[u] = struct{}{}
		}
		existing := make(map[string]struct{}, len(rows))
		var enable, disable []string
		for _, row := range rows {
			existing[row.Username] = struct{}{}
			_, ok := wanted[row.Username]
			switch {
			case ok && !row.Enabled:
				enable = append(enable, row.Username)
			case !ok && row.Enabled:
				disable = append(disable, row.Username)
			}
		}
		var add []*model.UserProject
		for _, u := range usernames {
			if _, ok := existing[u]; ok {
				continue
			}
			existing[u] = struct{}{}
			add = append(add, &model.UserProject{Username: u, ProjectId: projectID, Enabled: true})
		}

		if len(enable) > 0 {
			if err := r.setEnabled(ctx, projectID, enable, true); err != nil {
				return err
			}
		}
		if len(disable) > 0 {
			if err := r.setEnabled(ctx, projectID, disable, false); err != nil {
				return err
			}
		}
		if len(add) > 0 {
			if err := r.DB(ctx).Create(add).Error; err != nil {
				return err
			}
		}
		changes = MembershipChanges{Enabled: len(enable), Disabled: len(disable), Added: len(add)}
		return nil
	})
	return changes, err
}

func (r *userProjectRepository) setEnabled(ctx context.Context, projectID int64, usernames []string, enabled bool) error {
	return r.DB(ctx).Model(&model.UserProject{}).
		Where("projectid = ? AND username IN ?", projectID, usernames).
		Update("enabled", enabled).Error
}

func (r *userProjectRepository) EnsureMembership(ctx context.Context, username string, projectID int64) error {
	row := &model.UserProject{Username: username, ProjectId: projectID, Enabled: false}
	return r.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

func (r *userProjectRepository) ListByProject(ctx context.Context, projectID int64) ([]*model.UserProject, error) {
	var rows []*model.UserProject
	if err := r.DB(ctx).Where("projectid = ?", projectID).Order("username ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
