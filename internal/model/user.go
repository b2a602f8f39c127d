package model

// User mirrors a facility user. Username is the facility login; UserId is the
// facility numeric id and is authoritative when two logins disagree.
type User struct {
	Username string `json:"username" gorm:"column:username;primaryKey;size:100"`
	UserId   int64  `json:"userid" gorm:"column:userid;index"`
	Name     string `json:"name" gorm:"column:name;size:255"`
	Email    string `json:"email" gorm:"column:email;size:255"`
}

func (User) TableName() string {
	return "user"
}

// UserProject is a membership row. Rows are disabled rather than deleted so
// bookings keep a valid (username, projectid) reference.
type UserProject struct {
	Username  string `json:"username" gorm:"column:username;primaryKey;size:100"`
	ProjectId int64  `json:"projectid" gorm:"column:projectid;primaryKey;autoIncrement:false"`
	Enabled   bool   `json:"enabled" gorm:"column:enabled"`
}

func (UserProject) TableName() string {
	return "userproject"
}
