package ppms

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Int decodes facility numbers that arrive either as JSON numbers or strings.
type Int int64

func (i *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*i = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*i = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*i = Int(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*i = Int(f)
	return nil
}

// Bool decodes facility flags sent as booleans, numbers or strings.
type Bool bool

func (v *Bool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*v = false
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "1", "y":
			*v = true
		default:
			*v = false
		}
	case string(b) == "true":
		*v = true
	case string(b) == "false":
		*v = false
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		*v = f != 0
	}
	return nil
}

// Core is a row of the cores report.
type Core struct {
	ID          Int    `json:"Core ID"`
	Institution string `json:"Institution"`
	ShortName   string `json:"Facility Short Name"`
	LongName    string `json:"Facility Long Name"`
	RorID       string `json:"ROR ID"`
}

// System is a row of the pumapi getsystems CSV.
type System struct {
	CoreID int64
	ID     int64
	Type   string
	Name   string
}

// SystemPID maps an instrument to its persistent identifier.
type SystemPID struct {
	SystemID Int    `json:"System ID"`
	PID      string `json:"PID"`
}

type Project struct {
	ID          Int    `json:"ProjectRef"`
	CoreID      Int    `json:"CoreFacilityRef"`
	Name        string `json:"ProjectName"`
	Active      Bool   `json:"Active"`
	Type        string `json:"ProjectType"`
	Phase       Int    `json:"Phase"`
	Description string `json:"Descr"`
}

// Member is a row of the pumapi getprojectmember CSV.
type Member struct {
	ID    int64
	Login string
}

type User struct {
	ID        Int    `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Email     string `json:"email"`
}

// DisplayName prefers the report name and falls back to "last first".
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return strings.TrimSpace(u.LastName + " " + u.FirstName)
}

// Booking is a row of the daily booking report.
type Booking struct {
	SessionID Int    `json:"Ref (session)"`
	Date      string `json:"Date"`
	StartTime string `json:"Start time"`
	Duration  Int    `json:"Duration booked (minutes)"`
	Cancelled Bool   `json:"Cancelled"`
	System    string `json:"System"`
	CoreID    int64  `json:"-"`
}

// BookingDetail is the GetSessionDetails record of one session.
type BookingDetail struct {
	SessionID   Int    `json:"sessionId"`
	SystemID    Int    `json:"systemId"`
	SystemName  string `json:"systemName"`
	SystemType  string `json:"systemType"`
	UserID      Int    `json:"userId"`
	ProjectID   Int    `json:"projectId"`
	AssistantID Int    `json:"assistantId"`
	Status      string `json:"status"`
}

// TrainingSession is a row of the daily training report. Multi-attendee
// sessions yield one row per attendee.
type TrainingSession struct {
	SessionID   Int    `json:"SessionID"`
	UserID      Int    `json:"UserID"`
	ProjectID   Int    `json:"ProjectID"`
	ProjectName string `json:"Project Name"`
	Organiser   string `json:"Organiser"`
	Attendee    string `json:"Attendee"`
	CoreID      int64  `json:"-"`
}

// ProjectCollection links a project to its storage collection.
type ProjectCollection struct {
	CoreID     int64
	ProjectID  int64
	Collection string
}
