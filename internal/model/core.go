package model

// Core is a facility core (institution unit) known to the facility system.
type Core struct {
	Id          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	Institution string `json:"institution" gorm:"column:institution;size:255"`
	ShortName   string `json:"shortname" gorm:"column:shortname;size:100"`
	LongName    string `json:"longname" gorm:"column:longname;size:255"`
	RorId       string `json:"rorid" gorm:"column:rorid;size:100"`
}

func (Core) TableName() string {
	return "core"
}
