package v1

import "time"

type CreateDailyTaskRequest struct {
	SystemId int64 `json:"systemid" binding:"required" example:"17"`
}

type CompleteDailyTaskRequest struct {
	Status string `json:"status" binding:"required,oneof=success failed" example:"success"`
}

type ListDailyTasksRequest struct {
	SystemId int64 `form:"system_id" binding:"required" example:"17"`
	Limit    int   `form:"limit" binding:"omitempty,max=100" example:"10"`
}

type DailyTaskItem struct {
	Id       int64      `json:"id"`
	SystemId int64      `json:"systemid"`
	Start    time.Time  `json:"start"`
	Finished *time.Time `json:"finished,omitempty"`
	Status   string     `json:"status"`
}

type ListDailyTasksResponse struct {
	Response
	Data []DailyTaskItem `json:"data"`
}
