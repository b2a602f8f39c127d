package model

import "time"

const (
	StatSyncingProjects = "syncing_projects"
	StatTrue            = "True"
	StatFalse           = "False"
)

type SystemStat struct {
	Name        string `json:"name" gorm:"column:name;primaryKey;size:100"`
	Value       string `json:"value" gorm:"column:value;size:255"`
	Description string `json:"description" gorm:"column:description;size:255"`
	IsString    bool   `json:"isstring" gorm:"column:isstring"`
}

func (SystemStat) TableName() string {
	return "systemstats"
}

// SyncLock is an advisory lock row. A lock whose ExpiresAt has passed may be
// taken over by another holder.
type SyncLock struct {
	Name       string     `json:"name" gorm:"column:name;primaryKey;size:100"`
	Holder     string     `json:"holder" gorm:"column:holder;size:64"`
	AcquiredAt *time.Time `json:"acquired_at" gorm:"column:acquired_at"`
	ExpiresAt  *time.Time `json:"expires_at" gorm:"column:expires_at"`
}

func (SyncLock) TableName() string {
	return "sync_lock"
}

// Held reports whether the lock has a live holder at now.
func (l *SyncLock) Held(now time.Time) bool {
	return l != nil && l.Holder != "" && l.ExpiresAt != nil && now.Before(*l.ExpiresAt)
}
