package model

import "time"

// DailyTask is an audit record of a per-system scheduled task.
type DailyTask struct {
	Id       int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	SystemId int64      `json:"systemid" gorm:"column:systemid;index"`
	Start    time.Time  `json:"start" gorm:"column:start"`
	Finished *time.Time `json:"finished" gorm:"column:finished"`
	Status   Status     `json:"status" gorm:"column:status;size:20;default:'ongoing'"`
}

func (DailyTask) TableName() string {
	return "dailytask"
}
