package service

import (
	"context"
	"time"

	v1 "pitschi/api/v1"
	"pitschi/internal/model"
	"pitschi/internal/repository"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBooking(ctx context.Context, id int64) (*v1.BookingItem, error)
	ListBookings(ctx context.Context, req *v1.ListBookingsRequest) (*v1.ListBookingsResponseData, error)
}

func NewBookingService(service *Service, bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{
		Service:     service,
		bookingRepo: bookingRepo,
	}
}

type bookingService struct {
	*Service
	bookingRepo repository.BookingRepository
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*v1.BookingItem, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get booking", zap.Int64("booking_id", id), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if booking == nil {
		return nil, v1.ErrBookingNotFound
	}
	item := bookingItem(booking)
	return &item, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *v1.ListBookingsRequest) (*v1.ListBookingsResponseData, error) {
	if _, err := time.Parse(model.BookingDateLayout, req.Date); err != nil {
		return nil, v1.ErrBadRequest
	}
	bookings, err := s.bookingRepo.ListByDate(ctx, req.Date, req.SystemId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list bookings", zap.String("date", req.Date), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	list := make([]v1.BookingItem, 0, len(bookings))
	for _, b := range bookings {
		list = append(list, bookingItem(b))
	}
	return &v1.ListBookingsResponseData{List: list}, nil
}

func bookingItem(b *model.Booking) v1.BookingItem {
	return v1.BookingItem{
		Id:          b.Id,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		Duration:    b.Duration,
		Cancelled:   b.Cancelled,
		Status:      b.Status,
		SystemId:    b.SystemId,
		Username:    b.Username,
		Assistant:   b.Assistant,
		ProjectId:   b.ProjectId,
	}
}
