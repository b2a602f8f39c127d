package model

import "time"

// Mode is the transit stage of a dataset or file.
type Mode string

const (
	ModeInTransit Mode = "intransit"
	ModeImported  Mode = "imported"
	ModeIngested  Mode = "ingested"
)

// Status is the outcome within a Mode.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (m Mode) Valid() bool {
	return m == ModeInTransit || m == ModeImported || m == ModeIngested
}

func (s Status) Valid() bool {
	return s == StatusOngoing || s == StatusSuccess || s == StatusFailed
}

func (m Mode) rank() int {
	switch m {
	case ModeInTransit:
		return 0
	case ModeImported:
		return 1
	case ModeIngested:
		return 2
	}
	return -1
}

// CanTransition reports whether (fromMode, fromStatus) may move to (toMode, toStatus).
// Within a mode only an ongoing status may change. Moving to the next mode is
// allowed from any in-transit status and from imported/success. Stages are never skipped
// and never go backwards; see ResetTarget for administrative recovery.
func CanTransition(fromMode Mode, fromStatus Status, toMode Mode, toStatus Status) bool {
	if !toMode.Valid() || !toStatus.Valid() {
		return false
	}
	switch toMode.rank() - fromMode.rank() {
	case 0:
		return fromStatus == toStatus || fromStatus == StatusOngoing
	case 1:
		if fromMode == ModeInTransit {
			return true
		}
		return fromMode == ModeImported && fromStatus == StatusSuccess
	}
	return false
}

// ResetTarget returns the state a failed dataset is reset to. Only
// imported/failed and ingested/failed can be reset.
func ResetTarget(mode Mode, status Status) (Mode, Status, bool) {
	if status != StatusFailed {
		return mode, status, false
	}
	switch mode {
	case ModeImported:
		return ModeImported, StatusOngoing, true
	case ModeIngested:
		return ModeImported, StatusSuccess, true
	}
	return mode, status, false
}

type Dataset struct {
	Id                        int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	OriginalMachine           string     `json:"originalmachine" gorm:"column:originalmachine;size:255"`
	OriginalPath              string     `json:"originalpath" gorm:"column:originalpath;size:1024"`
	NetworkPath               string     `json:"networkpath" gorm:"column:networkpath;size:1024"`
	RelPathFromRootCollection string     `json:"relpathfromrootcollection" gorm:"column:relpathfromrootcollection;size:1024"`
	Name                      string     `json:"name" gorm:"column:name;size:255"`
	Received                  *time.Time `json:"received" gorm:"column:received"`
	Modified                  *time.Time `json:"modified" gorm:"column:modified"`
	Finished                  *time.Time `json:"finished" gorm:"column:finished"`
	Desc                      string     `json:"desc" gorm:"column:desc;type:text"`
	Mode                      Mode       `json:"mode" gorm:"column:mode;size:20;index;default:'intransit'"`
	Status                    Status     `json:"status" gorm:"column:status;size:20;index;default:'ongoing'"`
	Space                     string     `json:"space" gorm:"column:space;size:64"`         // repository space id
	DatasetId                 string     `json:"datasetid" gorm:"column:datasetid;size:64"` // repository dataset id
	BookingId                 int64      `json:"bookingid" gorm:"column:bookingid;index"`

	Files []File `json:"files,omitempty" gorm:"foreignKey:DatasetId;references:Id"`
}

func (Dataset) TableName() string {
	return "dataset"
}

type File struct {
	Id        int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Path      string     `json:"path" gorm:"column:path;size:1024"` // relative to the dataset root, backslash separated
	HashValue string     `json:"hashvalue" gorm:"column:hashvalue;size:128"`
	SizeKb    float64    `json:"size_kb" gorm:"column:size_kb"`
	Mode      Mode       `json:"mode" gorm:"column:mode;size:20;default:'intransit'"`
	Status    Status     `json:"status" gorm:"column:status;size:20;default:'ongoing'"`
	Received  *time.Time `json:"received" gorm:"column:received"`
	Modified  *time.Time `json:"modified" gorm:"column:modified"`
	Finished  *time.Time `json:"finished" gorm:"column:finished"`
	FileId    string     `json:"fileid" gorm:"column:fileid;size:64"` // repository file id
	DatasetId int64      `json:"dataset_id" gorm:"column:dataset_id;index"`
}

func (File) TableName() string {
	return "file"
}

// Ingestable reports whether the file should be pushed to the repository.
// Files already ingested, still in transit, or whose import did not succeed are skipped.
func (f *File) Ingestable() bool {
	switch {
	case f.Mode == ModeIngested && f.Status == StatusSuccess:
		return false
	case f.Mode == ModeInTransit:
		return false
	case f.Mode == ModeImported && f.Status != StatusSuccess:
		return false
	}
	return true
}
