package ppms

import (
	"context"
	"time"
)

// Facility is the query surface the reconcilers consume.
type Facility interface {
	CoreIDs() []int64
	GetUser(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, userID, coreID int64) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListCores(ctx context.Context) ([]Core, error)
	ListSystems(ctx context.Context) ([]System, error)
	ListSystemPIDs(ctx context.Context) ([]SystemPID, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]Project, error)
	ListProjectMembers(ctx context.Context, projectID int64) ([]Member, error)
	GetProjectCollection(ctx context.Context, coreID, projectID int64) (string, error)
	ListProjectCollections(ctx context.Context) ([]ProjectCollection, error)
	ListBookings(ctx context.Context, day time.Time) ([]Booking, error)
	GetBookingDetail(ctx context.Context, coreID, sessionID int64) (*BookingDetail, error)
	ListTrainingSessions(ctx context.Context, day time.Time) ([]TrainingSession, error)
}

var _ Facility = (*Client)(nil)
