package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pitschi/internal/model"
	"pitschi/internal/repository"
	"pitschi/pkg/delta"
	"pitschi/pkg/metrics"
	"pitschi/pkg/ppms"

	"go.uber.org/zap"
)

type BookingSyncService interface {
	// SyncToday reconciles the facility's bookings for the current facility-local day.
	SyncToday(ctx context.Context) error
	SyncDay(ctx context.Context, day time.Time) error
}

func NewBookingSyncService(
	service *Service,
	facility ppms.Facility,
	projectSync ProjectSyncService,
	bookingRepo repository.BookingRepository,
	systemRepo repository.SystemRepository,
	userRepo repository.UserRepository,
	userProjectRepo repository.UserProjectRepository,
) BookingSyncService {
	return &bookingSyncService{
		Service:         service,
		facility:        facility,
		projectSync:     projectSync,
		bookingRepo:     bookingRepo,
		systemRepo:      systemRepo,
		userRepo:        userRepo,
		userProjectRepo: userProjectRepo,
		now:             time.Now,
	}
}

type bookingSyncService struct {
	*Service
	facility        ppms.Facility
	projectSync     ProjectSyncService
	bookingRepo     repository.BookingRepository
	systemRepo      repository.SystemRepository
	userRepo        repository.UserRepository
	userProjectRepo repository.UserProjectRepository
	now             func() time.Time
}

// pendingBooking is a booking whose user ids still need mapping to logins.
type pendingBooking struct {
	booking     *model.Booking
	userID      int64
	assistantID int64
}

func (s *bookingSyncService) SyncToday(ctx context.Context) error {
	return s.SyncDay(ctx, s.now().In(s.opts.Location))
}

func (s *bookingSyncService) SyncDay(ctx context.Context, day time.Time) error {
	date := day.Format(model.BookingDateLayout)
	logger := s.logger.WithContext(ctx).With(zap.String("date", date))

	bookings, err := s.facility.ListBookings(ctx, day)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	trainings, err := s.facility.ListTrainingSessions(ctx, day)
	if err != nil {
		logger.Warn("failed to list training sessions", zap.Error(err))
	}
	training := make(map[int64]ppms.TrainingSession, len(trainings))
	for _, t := range trainings {
		if strings.TrimSpace(t.Organiser) == strings.TrimSpace(t.Attendee) {
			training[int64(t.SessionID)] = t
		}
	}

	active := make([]int64, 0, len(bookings))
	pending := make([]pendingBooking, 0, len(bookings))
	refs := map[int64][]int64{}
	for _, b := range bookings {
		sessionID := int64(b.SessionID)
		if !b.Cancelled {
			active = append(active, sessionID)
		}
		detail, err := s.facility.GetBookingDetail(ctx, b.CoreID, sessionID)
		if err != nil || detail == nil {
			metrics.BookingsReconciled.WithLabelValues("skipped").Inc()
			logger.Warn("no booking detail, skipping", zap.Int64("session_id", sessionID), zap.Error(err))
			continue
		}

		userID, projectID := int64(detail.UserID), int64(detail.ProjectID)
		if t, ok := training[sessionID]; ok {
			if t.UserID != 0 {
				userID = int64(t.UserID)
			}
			if t.ProjectID != 0 {
				projectID = int64(t.ProjectID)
			}
		}
		assistantID := int64(detail.AssistantID)

		row := &model.Booking{
			Id:          sessionID,
			BookingDate: date,
			StartTime:   normalizeStartTime(b.StartTime),
			Duration:    int(b.Duration),
			Cancelled:   bool(b.Cancelled),
			Status:      detail.Status,
			SystemId:    s.upsertSystem(ctx, b, detail),
		}
		if projectID != 0 {
			row.ProjectId = &projectID
			for _, uid := range []int64{userID, assistantID} {
				if uid != 0 {
					refs[projectID] = append(refs[projectID], uid)
				}
			}
			if _, ok := refs[projectID]; !ok {
				refs[projectID] = nil
			}
		}
		pending = append(pending, pendingBooking{booking: row, userID: userID, assistantID: assistantID})
	}

	// Referenced projects and users must exist before any booking is written.
	if len(refs) > 0 {
		if err := s.projectSync.SyncProjects(ctx, refs, false); err != nil {
			logger.Warn("failed to sync booked projects", zap.Error(err))
		}
	}

	for _, p := range pending {
		p.booking.Username = s.usernameFor(ctx, p.userID)
		p.booking.Assistant = s.usernameFor(ctx, p.assistantID)
		if err := s.saveBooking(ctx, p.booking); err != nil {
			metrics.BookingsReconciled.WithLabelValues("failed").Inc()
			logger.Error("failed to save booking", zap.Int64("session_id", p.booking.Id), zap.Error(err))
		}
	}

	cancelled, err := s.cancelMissing(ctx, date, active)
	if err != nil {
		return fmt.Errorf("cancel missing bookings: %w", err)
	}
	logger.Info("bookings synced",
		zap.Int("bookings", len(bookings)), zap.Int("saved", len(pending)), zap.Int64("cancelled", cancelled))
	return nil
}

// saveBooking writes the booking and the membership row it refers to in one transaction.
func (s *bookingSyncService) saveBooking(ctx context.Context, booking *model.Booking) error {
	return s.tm.Transaction(ctx, func(ctx context.Context) error {
		if booking.Username != nil && booking.ProjectId != nil {
			if err := s.userProjectRepo.EnsureMembership(ctx, *booking.Username, *booking.ProjectId); err != nil {
				return err
			}
		}
		wrote, err := s.bookingRepo.Upsert(ctx, booking)
		if err != nil {
			return err
		}
		if wrote {
			metrics.BookingsReconciled.WithLabelValues("upserted").Inc()
		}
		return nil
	})
}

// cancelMissing marks today's stored bookings that the facility no longer
// lists as active. Other days are never touched.
func (s *bookingSyncService) cancelMissing(ctx context.Context, date string, active []int64) (int64, error) {
	stored, err := s.bookingRepo.ListActiveIDsByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	deltas := delta.Replace(delta.Set(stored...), delta.Set(active...), func(a, b struct{}) bool { return true })
	gone := delta.SortedInt64(deltas, delta.Deleted)
	if len(gone) == 0 {
		return 0, nil
	}
	n, err := s.bookingRepo.CancelByIDs(ctx, gone)
	if err != nil {
		return 0, err
	}
	metrics.BookingsReconciled.WithLabelValues("cancelled").Add(float64(n))
	s.logger.WithContext(ctx).Info("bookings cancelled", zap.Int64s("session_ids", gone))
	return n, nil
}

// upsertSystem records the booked system and returns its id. Details without a
// system id fall back to a lookup by the report's system name.
func (s *bookingSyncService) upsertSystem(ctx context.Context, b ppms.Booking, detail *ppms.BookingDetail) *int64 {
	if detail.SystemID != 0 {
		id := int64(detail.SystemID)
		name := detail.SystemName
		if name == "" {
			name = b.System
		}
		_, err := s.systemRepo.Upsert(ctx, &model.System{Id: id, CoreId: b.CoreID, Type: detail.SystemType, Name: name})
		if err != nil {
			s.logger.WithContext(ctx).Warn("failed to upsert system", zap.Int64("system_id", id), zap.Error(err))
		}
		return &id
	}
	if b.System == "" {
		return nil
	}
	system, err := s.systemRepo.GetByName(ctx, b.System)
	if err != nil || system == nil {
		return nil
	}
	return &system.Id
}

func (s *bookingSyncService) usernameFor(ctx context.Context, userID int64) *string {
	if userID == 0 {
		return nil
	}
	users, err := s.userRepo.ListByUserId(ctx, userID)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to resolve user", zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}
	if len(users) == 0 {
		s.logger.WithContext(ctx).Warn("unknown facility user", zap.Int64("user_id", userID))
		return nil
	}
	return &users[0].Username
}

// normalizeStartTime turns the report's "H:MM" or "HH:MM:SS" into HH:MM:SS.
func normalizeStartTime(v string) string {
	v = strings.TrimSpace(v)
	for _, layout := range []string{model.BookingTimeLayout, "15:04", "3:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(model.BookingTimeLayout)
		}
	}
	return v
}
