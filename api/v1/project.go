package v1

import "time"

type ListProjectsRequest struct {
	Page     int   `form:"page" example:"1"`
	PageSize int   `form:"page_size" binding:"omitempty,max=100" example:"20"`
	CoreId   int64 `form:"core_id" example:"2"`
	Active   *bool `form:"active" example:"true"`
}

type ProjectItem struct {
	Id          int64   `json:"id" example:"42"`
	CoreId      int64   `json:"coreid" example:"2"`
	Name        string  `json:"name" example:"Cell imaging"`
	Active      bool    `json:"active"`
	Type        string  `json:"type"`
	Phase       int     `json:"phase"`
	Description string  `json:"description"`
	Collection  *string `json:"collection,omitempty" example:"Q0123-cells"`
}

type MemberItem struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
}

type ProjectDetail struct {
	ProjectItem
	Members []MemberItem `json:"members"`
}

type ListProjectsResponseData struct {
	Total int64         `json:"total"`
	List  []ProjectItem `json:"list"`
}

type ListProjectsResponse struct {
	Response
	Data ListProjectsResponseData `json:"data"`
}

type GetProjectResponse struct {
	Response
	Data ProjectDetail `json:"data"`
}

type CollectionCacheItem struct {
	CacheName    string     `json:"cache_name"`
	Priority     int        `json:"priority"`
	InodesLimit  int64      `json:"inodeslimit"`
	InodesUsed   int64      `json:"inodesused"`
	BlockLimitGb float64    `json:"blocklimitgb"`
	BlockUsedGb  float64    `json:"blockusedgb"`
	LastUpdated  *time.Time `json:"lastupdated,omitempty"`
}

type CollectionItem struct {
	Name        string                `json:"name"`
	Quotas      string                `json:"quotas"`
	CapacityGb  int64                 `json:"capacitygb"`
	LastUpdated *time.Time            `json:"lastupdated,omitempty"`
	Caches      []CollectionCacheItem `json:"caches"`
}

type GetCollectionResponse struct {
	Response
	Data CollectionItem `json:"data"`
}
