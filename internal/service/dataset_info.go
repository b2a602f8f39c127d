package service

import (
	"context"

	"pitschi/internal/model"
	"pitschi/internal/repository"
)

// DatasetInfo joins a dataset with the booking it came from.
type DatasetInfo struct {
	Dataset   *model.Dataset
	Booking   *model.Booking
	User      *model.User
	Assistant *model.User
	System    *model.System
	Project   *model.Project
}

func (i *DatasetInfo) OwnerName() string {
	if i.User == nil {
		return ""
	}
	if i.User.Name != "" {
		return i.User.Name
	}
	return i.User.Username
}

func (i *DatasetInfo) SystemName() string {
	if i.System != nil && i.System.Name != "" {
		return i.System.Name
	}
	return i.Dataset.OriginalMachine
}

// Recipient is the assistant when the booking had one, else the booking user.
func (i *DatasetInfo) Recipient() string {
	if i.Assistant != nil && i.Assistant.Email != "" {
		return i.Assistant.Email
	}
	if i.User != nil {
		return i.User.Email
	}
	return ""
}

type datasetInfoLoader struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	systemRepo  repository.SystemRepository
	projectRepo repository.ProjectRepository
}

// load never fails on a missing relation; absent rows stay nil.
func (l *datasetInfoLoader) load(ctx context.Context, dataset *model.Dataset) (*DatasetInfo, error) {
	info := &DatasetInfo{Dataset: dataset}
	booking, err := l.bookingRepo.GetByID(ctx, dataset.BookingId)
	if err != nil || booking == nil {
		return info, err
	}
	info.Booking = booking
	if booking.Username != nil {
		if info.User, err = l.userRepo.GetByUsername(ctx, *booking.Username); err != nil {
			return info, err
		}
	}
	if booking.Assistant != nil && *booking.Assistant != "" {
		if info.Assistant, err = l.userRepo.GetByUsername(ctx, *booking.Assistant); err != nil {
			return info, err
		}
	}
	if booking.SystemId != nil {
		if info.System, err = l.systemRepo.GetByID(ctx, *booking.SystemId); err != nil {
			return info, err
		}
	}
	if booking.ProjectId != nil {
		if info.Project, err = l.projectRepo.GetByID(ctx, *booking.ProjectId); err != nil {
			return info, err
		}
	}
	return info, nil
}
