package model

// System is a bookable instrument.
type System struct {
	Id     int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	CoreId int64  `json:"coreid" gorm:"column:coreid;index"`
	Type   string `json:"type" gorm:"column:type;size:100"`
	Name   string `json:"name" gorm:"column:name;size:255;index"`
	Pid    string `json:"pid" gorm:"column:pid;size:255"`
}

func (System) TableName() string {
	return "system"
}
