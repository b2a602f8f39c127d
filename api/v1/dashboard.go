package v1

// ==================== Overview ====================

type DashboardOverviewResponse struct {
	Response
	Data DashboardOverviewData `json:"data"`
}

type DashboardOverviewData struct {
	Date     string                   `json:"date" example:"2024-03-05"` // facility local date
	Summary  DashboardOverviewSummary `json:"summary"`
	Pipeline []PipelineStage          `json:"pipeline"`
	Sync     SyncStatusData           `json:"sync"`
}

type DashboardOverviewSummary struct {
	ProjectCount       int64 `json:"project_count" example:"812"`
	UserCount          int64 `json:"user_count" example:"2304"`
	SystemCount        int64 `json:"system_count" example:"41"`
	BookingsToday      int64 `json:"bookings_today" example:"57"`
	DatasetsInFlight   int64 `json:"datasets_in_flight" example:"6"`   // intransit or imported, not failed
	DatasetsFailed     int64 `json:"datasets_failed" example:"2"`      // any mode, failed
	DatasetsIngestedOK int64 `json:"datasets_ingested" example:"1290"` // ingested/success
}

// PipelineStage counts datasets in one mode/status cell.
type PipelineStage struct {
	Mode   string `json:"mode" example:"imported"`
	Status string `json:"status" example:"success"`
	Count  int64  `json:"count" example:"4"`
}

// ==================== Systems ====================

type DashboardSystemsRequest struct {
	CoreId *int64 `form:"core_id" example:"2"`
}

type DashboardSystemsResponse struct {
	Response
	Data DashboardSystemsData `json:"data"`
}

type DashboardSystemsData struct {
	Cores []CoreItem `json:"cores"`
}

type CoreItem struct {
	Id        int64        `json:"id" example:"2"`
	ShortName string       `json:"shortname" example:"CMM"`
	LongName  string       `json:"longname" example:"Centre for Microscopy and Microanalysis"`
	Systems   []SystemItem `json:"systems"`
}

type SystemItem struct {
	Id   int64  `json:"id" example:"17"`
	Type string `json:"type" example:"Confocal"`
	Name string `json:"name" example:"LSM 880"`
	Pid  string `json:"pid,omitempty"`
}
