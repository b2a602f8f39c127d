package service

import (
	"bytes"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"pitschi/internal/model"
)

const (
	subjectIngested       = "Successfully ingested dataset"
	subjectIngestFailed   = "Problem ingesting dataset"
	subjectImported       = "Successfully imported dataset to RDM"
	subjectFailedDatasets = "[WARNING] Dataset import/ingest fails"
	subjectDuplicateWarn  = "[WARNING] RIMS sync duplicate userid"
	subjectDuplicateError = "[ERROR] RIMS sync duplicate userid"
)

var ingestedTmpl = template.Must(template.New("ingested").Parse(`<html>
<body>
<p>Dear {{.Name}},<br /></p>
<p>Pitschi has successfully ingested dataset from {{.System}}.</p>
<p>You can view the dataset using the following systems (please allow time for synchronization):</p>
<ul>
<li><b>Pitschi</b> <a href="{{.RepositoryURL}}">here</a></li>
{{- if .CloudURL}}
<li><b>Cloud RDM</b> <a href="{{.CloudURL}}">here</a></li>
{{- end}}
<li><b>Windows</b> Enter this location into File Explorer: <b>{{.NetworkPath}}</b>.</li>
<li><b>MacOS</b> Go to Finder and then Go -&gt; Connect to Server... Enter this text: <b>{{.SmbPath}}</b>.</li>
<li><b>Linux</b> Enter this location into File Manager: <b>{{.SmbPath}}</b>.</li>
<li><b>CVL</b> Go to collection: <b>{{.Collection}}</b> and then {{.RelPath}}</li>
{{- if .IppURL}}
<li><b>Image Processing Portal</b> <a href="{{.IppURL}}">here</a></li>
{{- end}}
</ul>
Regards,<br />
Pitschi Team
</body>
</html>
`))

var importedTmpl = template.Must(template.New("imported").Parse(`<html>
<body>
<p>Dear {{.Name}},<br /></p>
<p>Pitschi has successfully imported dataset from {{.System}} into RDM.</p>
<p>You can view the dataset using the following systems (please allow time for synchronization):</p>
<ul>
{{- if .CloudURL}}
<li><b>Cloud RDM</b> <a href="{{.CloudURL}}">here</a>.</li>
{{- end}}
<li><b>Windows</b> Enter this text into File Explorer: <b>{{.NetworkPath}}</b>.</li>
<li><b>MacOS</b> Go to Finder and then Go -&gt; Connect to Server... Enter this text: <b>{{.SmbPath}}</b>.</li>
<li><b>Linux</b> Enter this text into File Manager: <b>{{.SmbPath}}</b>.</li>
<li><b>CVL</b> Look for collection: <b>{{.Collection}}</b> and then {{.RelPath}}</li>
{{- if .IppURL}}
<li><b>Image Processing Portal</b> <a href="{{.IppURL}}">here</a></li>
{{- end}}
</ul>
You will receive another email once the dataset has been successfully ingested into Pitschi.<br />
Regards,<br />
Pitschi Team
</body>
</html>
`))

var ingestFailedTmpl = template.Must(template.New("failed").Parse(`<html>
<body>
<p>Dear admins<br /></p>
<p>The following dataset was failed to ingest:</p>
<ul>
<li><b>Dataset</b> {{.DatasetID}} {{.Dataset}}</li>
<li><b>Machine</b> {{.Machine}}</li>
<li><b>Location</b> {{.Location}}</li>
<li><b>Booking id:</b> {{.BookingID}}</li>
<li><b>system id:</b> {{.SystemID}}</li>
<li><b>username:</b> {{.Username}}</li>
<li><b>project id:</b> {{.ProjectID}}</li>
</ul>
<p>Reasons:</p>
<ul>
{{- range .Reasons}}
<li>{{.}}</li>
{{- end}}
</ul>
Regards,
</body>
</html>
`))

var failedDatasetsTmpl = template.Must(template.New("failedDatasets").Parse(`<html>
<body>
<p>Dear admins<br /></p>
<p>{{len .Datasets}} dataset(s) failed to import or ingest in the last {{.Days}} day(s):</p>
<table border="1" cellpadding="4">
<tr><th>Id</th><th>Name</th><th>Machine</th><th>Mode</th><th>Status</th><th>Booking</th><th>Received</th></tr>
{{- range .Datasets}}
<tr><td>{{.Id}}</td><td>{{.Name}}</td><td>{{.OriginalMachine}}</td><td>{{.Mode}}</td><td>{{.Status}}</td><td>{{.BookingId}}</td><td>{{if .Received}}{{.Received.Format "2006-01-02 15:04"}}{{end}}</td></tr>
{{- end}}
</table>
Regards,
</body>
</html>
`))

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// accessLinks are the ways a data owner can reach a dataset on the storage side.
type accessLinks struct {
	Name          string
	System        string
	RepositoryURL string
	CloudURL      string
	NetworkPath   string
	SmbPath       string
	Collection    string
	RelPath       string
	IppURL        string
}

func (s *Service) accessLinks(info *DatasetInfo) accessLinks {
	rel := strings.ReplaceAll(info.Dataset.RelPathFromRootCollection, `\`, "/")
	collection := info.Project.CollectionName()
	segment := s.opts.RDM.Segment(collection)
	links := accessLinks{
		Name:        info.OwnerName(),
		System:      info.SystemName(),
		NetworkPath: info.Dataset.NetworkPath,
		SmbPath:     "smb:" + strings.ReplaceAll(info.Dataset.NetworkPath, `\`, "/"),
		Collection:  segment,
		RelPath:     rel,
	}
	if s.opts.RDM.CloudURL != "" {
		links.CloudURL = s.opts.RDM.CloudURL + "?dir=/" + collection + "/" + rel
	}
	if s.opts.RDM.IppURL != "" {
		q := url.Values{}
		q.Set("component", "filesmanager")
		q.Set("relpath", segment+"/"+rel)
		links.IppURL = s.opts.RDM.IppURL + "?" + q.Encode()
	}
	return links
}

type ingestFailure struct {
	DatasetID int64
	Dataset   string
	Machine   string
	Location  string
	BookingID int64
	SystemID  string
	Username  string
	ProjectID string
	Reasons   []string
}

type failedDatasets struct {
	Days     int
	Datasets []*model.Dataset
}

func optionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optionalInt(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}
