package repository

import (
	"context"
	"errors"

	"pitschi/internal/model"

	"gorm.io/gorm"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	ListByDate(ctx context.Context, date string, systemID *int64) ([]*model.Booking, error)
	// ListActiveIDsByDate returns the ids of the non-cancelled bookings of date.
	ListActiveIDsByDate(ctx context.Context, date string) ([]int64, error)
	Upsert(ctx context.Context, booking *model.Booking) (bool, error)
	CancelByIDs(ctx context.Context, ids []int64) (int64, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

func NewBookingRepository(
	repository *Repository,
) BookingRepository {
	return &bookingRepository{
		Repository: repository,
	}
}

type bookingRepository struct {
	*Repository
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	var booking model.Booking
	if err := r.DB(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByDate(ctx context.Context, date string, systemID *int64) ([]*model.Booking, error) {
	var bookings []*model.Booking
	query := r.DB(ctx).Where("bookingdate = ?", date)
	if systemID != nil {
		query = query.Where("systemid = ?", *systemID)
	}
	if err := query.Order("starttime ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListActiveIDsByDate(ctx context.Context, date string) ([]int64, error) {
	var ids []int64
	err := r.DB(ctx).Model(&model.Booking{}).
		Where("bookingdate = ? AND cancelled = ?", date, false).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Upsert inserts the booking or writes the columns that changed. A nil username
// or assistant leaves an already resolved value in place.
func (r *bookingRepository) Upsert(ctx context.Context, booking *model.Booking) (bool, error) {
	current, err := r.GetByID(ctx, booking.Id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return true, r.DB(ctx).Create(booking).Error
	}
	var keep []string
	if booking.Username == nil {
		keep = append(keep, "username")
	}
	if booking.Assistant == nil {
		keep = append(keep, "assistant")
	}
	return patch(r.DB(ctx), current, booking, keep...)
}

func (r *bookingRepository) CancelByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB(ctx).Model(&model.Booking{}).
		Where("id IN ?", ids).
		Update("cancelled", true)
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var total int64
	err := r.DB(ctx).Model(&model.Booking{}).
		Where("bookingdate = ? AND cancelled = ?", date, false).
		Count(&total).Error
	return total, err
}
