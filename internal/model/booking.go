package model

import (
	"fmt"
	"time"
)

const (
	BookingDateLayout = "2006-01-02"
	BookingTimeLayout = "15:04:05"
)

// Booking is a facility session. Id is the facility session id.
type Booking struct {
	Id          int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	BookingDate string  `json:"bookingdate" gorm:"column:bookingdate;size:10;index"` // YYYY-MM-DD, facility local
	StartTime   string  `json:"starttime" gorm:"column:starttime;size:8"`            // HH:MM:SS, facility local
	Duration    int     `json:"duration" gorm:"column:duration"`                     // minutes
	Cancelled   bool    `json:"cancelled" gorm:"column:cancelled;default:false"`
	Status      string  `json:"status" gorm:"column:status;size:50"`
	SystemId    *int64  `json:"systemid" gorm:"column:systemid;index"`
	Username    *string `json:"username" gorm:"column:username;size:100;index"`
	Assistant   *string `json:"assistant" gorm:"column:assistant;size:100"`
	ProjectId   *int64  `json:"projectid" gorm:"column:projectid;index"`
}

func (Booking) TableName() string {
	return "booking"
}

// Start returns the booking start in loc.
func (b *Booking) Start(loc *time.Location) (time.Time, error) {
	start := b.StartTime
	if start == "" {
		start = "00:00:00"
	}
	t, err := time.ParseInLocation(BookingDateLayout+" "+BookingTimeLayout, b.BookingDate+" "+start, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking %d: %w", b.Id, err)
	}
	return t, nil
}

// End returns the booking end (start + duration) in loc.
func (b *Booking) End(loc *time.Location) (time.Time, error) {
	start, err := b.Start(loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.Duration) * time.Minute), nil
}
