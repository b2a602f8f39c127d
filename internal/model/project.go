package model

type Project struct {
	Id          int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	CoreId      int64   `json:"coreid" gorm:"column:coreid"`
	Name        string  `json:"name" gorm:"column:name;size:255;index"`
	Active      bool    `json:"active" gorm:"column:active"`
	Type        string  `json:"type" gorm:"column:type;size:100"`
	Phase       int     `json:"phase" gorm:"column:phase"`
	Description string  `json:"description" gorm:"column:description;type:text"`
	Collection  *string `json:"collection" gorm:"column:collection;size:255"` // storage collection name, nil until provisioned
}

func (Project) TableName() string {
	return "project"
}

// CollectionName returns the collection or "" when none is linked.
func (p *Project) CollectionName() string {
	if p == nil || p.Collection == nil {
		return ""
	}
	return *p.Collection
}
