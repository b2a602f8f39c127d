package model

import "time"

type Collection struct {
	Name        string     `json:"name" gorm:"column:name;primaryKey;size:255"`
	Quotas      string     `json:"quotas" gorm:"column:quotas;type:text"`
	CapacityGb  int64      `json:"capacitygb" gorm:"column:capacitygb"`
	LastUpdated *time.Time `json:"lastupdated" gorm:"column:lastupdated"`

	Caches []CollectionCache `json:"caches,omitempty" gorm:"foreignKey:CollectionName;references:Name"`
}

func (Collection) TableName() string {
	return "collection"
}

// CollectionCache is one storage tier backing a collection. Higher priority is used first.
type CollectionCache struct {
	CollectionName string     `json:"collection_name" gorm:"column:collection_name;primaryKey;size:255"`
	CacheName      string     `json:"cache_name" gorm:"column:cache_name;primaryKey;size:100"`
	Priority       int        `json:"priority" gorm:"column:priority;default:0"`
	InodesLimit    int64      `json:"inodeslimit" gorm:"column:inodeslimit"`
	InodesUsed     int64      `json:"inodesused" gorm:"column:inodesused"`
	BlockLimitGb   float64    `json:"blocklimitgb" gorm:"column:blocklimitgb"`
	BlockUsedGb    float64    `json:"blockusedgb" gorm:"column:blockusedgb"`
	LastUpdated    *time.Time `json:"lastupdated" gorm:"column:lastupdated"`
}

func (CollectionCache) TableName() string {
	return "collection_cache"
}
