package v1

import "time"

// FileRequest describes one file of a dataset, keyed by path relative to the dataset root.
type FileRequest struct {
	Path      string     `json:"path" binding:"required" example:"Raw\\Day1\\image_001.tif"`
	HashValue string     `json:"hashvalue" example:"9e107d9d372bb6826bd81d3542a419d6"`
	SizeKb    float64    `json:"size_kb" example:"2048.5"`
	Mode      string     `json:"mode" example:"imported"`
	Status    string     `json:"status" example:"success"`
	Received  *time.Time `json:"received,omitempty"`
	Modified  *time.Time `json:"modified,omitempty"`
	Finished  *time.Time `json:"finished,omitempty"`
}

type CreateDatasetRequest struct {
	OriginalMachine           string        `json:"originalmachine" binding:"required" example:"LSM880-PC"`
	OriginalPath              string        `json:"originalpath" example:"D:\\Data\\alice\\run1"`
	NetworkPath               string        `json:"networkpath" example:"\\\\rdm.example.org\\Q0123\\LSM880\\run1"`
	RelPathFromRootCollection string        `json:"relpathfromrootcollection" binding:"required" example:"LSM880\\alice\\run1"`
	Name                      string        `json:"name" binding:"required" example:"run1"`
	Received                  *time.Time    `json:"received,omitempty"`
	Modified                  *time.Time    `json:"modified,omitempty"`
	Finished                  *time.Time    `json:"finished,omitempty"`
	Desc                      string        `json:"desc" example:"confocal timelapse"`
	Mode                      string        `json:"mode" example:"intransit"`
	Status                    string        `json:"status" example:"ongoing"`
	BookingId                 int64         `json:"bookingid" binding:"required" example:"12345"`
	Files                     []FileRequest `json:"files"`
}

// UpdateDatasetRequest patches only the fields that are present. Files are upserted by path.
type UpdateDatasetRequest struct {
	NetworkPath *string       `json:"networkpath,omitempty"`
	Name        *string       `json:"name,omitempty"`
	Modified    *time.Time    `json:"modified,omitempty"`
	Finished    *time.Time    `json:"finished,omitempty"`
	Desc        *string       `json:"desc,omitempty"`
	Mode        *string       `json:"mode,omitempty"`
	Status      *string       `json:"status,omitempty"`
	Files       []FileRequest `json:"files,omitempty"`
}

type ListFailedDatasetsRequest struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365" example:"7"`
}

type FileItem struct {
	Id        int64      `json:"id"`
	Path      string     `json:"path"`
	HashValue string     `json:"hashvalue"`
	SizeKb    float64    `json:"size_kb"`
	Mode      string     `json:"mode"`
	Status    string     `json:"status"`
	Received  *time.Time `json:"received,omitempty"`
	Modified  *time.Time `json:"modified,omitempty"`
	Finished  *time.Time `json:"finished,omitempty"`
	FileId    string     `json:"fileid"`
}

type DatasetItem struct {
	Id                        int64      `json:"id"`
	OriginalMachine           string     `json:"originalmachine"`
	OriginalPath              string     `json:"originalpath"`
	NetworkPath               string     `json:"networkpath"`
	RelPathFromRootCollection string     `json:"relpathfromrootcollection"`
	Name                      string     `json:"name"`
	Received                  *time.Time `json:"received,omitempty"`
	Modified                  *time.Time `json:"modified,omitempty"`
	Finished                  *time.Time `json:"finished,omitempty"`
	Desc                      string     `json:"desc"`
	Mode                      string     `json:"mode"`
	Status                    string     `json:"status"`
	Space                     string     `json:"space"`
	DatasetId                 string     `json:"datasetid"`
	BookingId                 int64      `json:"bookingid"`
}

type DatasetDetail struct {
	DatasetItem
	Files []FileItem `json:"files"`
}

type GetDatasetResponse struct {
	Response
	Data DatasetDetail `json:"data"`
}

type ListDatasetsResponseData struct {
	Total int64         `json:"total"`
	List  []DatasetItem `json:"list"`
}

type ListDatasetsResponse struct {
	Response
	Data ListDatasetsResponseData `json:"data"`
}

type CheckDatasetResponseData struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing"`
}

type ListDatasetsRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100" example:"20"`
	Mode     string `form:"mode" binding:"omitempty,oneof=intransit imported ingested" example:"imported"`
	Status   string `form:"status" binding:"omitempty,oneof=ongoing success failed" example:"failed"`
}

type CheckDatasetResponse struct {
	Response
	Data CheckDatasetResponseData `json:"data"`
}
