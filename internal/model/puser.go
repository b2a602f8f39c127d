package model

import (
	"time"

	"gorm.io/gorm"
)

// PUser is an API account used by instrument clients and the dashboard.
type PUser struct {
	Id        uint   `gorm:"primarykey"`
	UserId    string `gorm:"unique;not null"`
	Username  string `gorm:"unique;not null;size:100"`
	Password  string `gorm:"not null"`
	Desc      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PUser) TableName() string {
	return "puser"
}
