package clowder

type Space struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Dataset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Folder names are paths relative to the dataset root, e.g. "/raw/day1".
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type File struct {
	ID       string `json:"id"`
	Filename string `json:"filename,omitempty"`
}

type newFolderRequest struct {
	Name       string `json:"name"`
	ParentID   string `json:"parentId"`
	ParentType string `json:"parentType"`
}

type serverFile struct {
	Path    string `json:"path"`
	Dataset string `json:"dataset"`
}
