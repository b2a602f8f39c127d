package v1

import "time"

type SyncStatusData struct {
	Name       string     `json:"name" example:"syncing_projects"`
	Held       bool       `json:"held"`
	Holder     string     `json:"holder,omitempty"`
	AcquiredAt *time.Time `json:"acquired_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Flag       string     `json:"flag" example:"False"`
}

type SyncStatusResponse struct {
	Response
	Data SyncStatusData `json:"data"`
}

// TriggerSyncRequest starts one scheduled task out of band.
type TriggerSyncRequest struct {
	Task string `json:"task" binding:"required,oneof=projects bookings ingest" example:"projects"`
}

type SystemStatItem struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
