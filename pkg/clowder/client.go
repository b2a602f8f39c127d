package clowder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"pitschi/pkg/breaker"
	"pitschi/pkg/log"
	"pitschi/pkg/retry"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// APIError is a non-2xx repository response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clowder API error (%s %s, status %d): %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type Options struct {
	APIURL        string          `mapstructure:"api_url"`
	URL           string          `mapstructure:"url"`
	APIKey        string          `mapstructure:"api_key"`
	RetryAttempts int             `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration   `mapstructure:"retry_delay"`
	Timeout       time.Duration   `mapstructure:"timeout"`
	Breaker       breaker.Options `mapstructure:"breaker"`
}

// Repository is the dataset-management surface the ingest engine consumes.
type Repository interface {
	FindSpace(ctx context.Context, name string) (*Space, error)
	CreateSpace(ctx context.Context, name, description string) (*Space, error)
	ListDatasets(ctx context.Context, spaceID string) ([]Dataset, error)
	CreateDataset(ctx context.Context, spaceID, name string) (*Dataset, error)
	ListFolders(ctx context.Context, datasetID string) ([]Folder, error)
	CreateFolder(ctx context.Context, datasetID, name, parentFolderID string) (*Folder, error)
	ListFiles(ctx context.Context, datasetID string) ([]File, error)
	AddServerFile(ctx context.Context, datasetID, filePath, folderID string) (*File, error)
	AddMetadata(ctx context.Context, datasetID string, metadata map[string]interface{}) error
	AddTags(ctx context.Context, datasetID string, tags []string) error
	DatasetURL(datasetID, spaceID string) string
}

var _ Repository = (*Client)(nil)

type Client struct {
	baseUrl    *url.URL
	webUrl     string
	apiKey     string
	httpClient *http.Client
	opts       Options
	breaker    *breaker.Breaker
	logger     *log.Logger
}

func NewClient(conf *viper.Viper, logger *log.Logger) (*Client, error) {
	var opts Options
	if err := conf.UnmarshalKey("clowder", &opts); err != nil {
		return nil, fmt.Errorf("clowder config: %w", err)
	}
	return New(opts, logger)
}

func New(opts Options, logger *log.Logger) (*Client, error) {
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 3
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = time.Second
	}
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Minute
	}
	baseUrl, err := url.Parse(opts.APIURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseUrl:    baseUrl,
		webUrl:     strings.TrimSuffix(opts.URL, "/"),
		apiKey:     opts.APIKey,
		httpClient: &http.Client{Timeout: opts.Timeout},
		opts:       opts,
		breaker:    breaker.New("clowder", opts.Breaker, logger),
		logger:     logger,
	}, nil
}

// Request sends one call. GETs are retried on transport errors and 5xx responses.
func (c *Client) Request(ctx context.Context, method, p string, query url.Values, body io.Reader, contentType string, result interface{}) error {
	endpoint := c.baseUrl.JoinPath(p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = c.opts.RetryAttempts
	}
	return retry.Do(ctx, retry.Policy{
		Attempts:  attempts,
		Delay:     c.opts.RetryDelay,
		Retryable: retryable,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			c.logger.WithContext(ctx).Warn("clowder request failed, retrying",
				zap.String("path", p), zap.Int("attempt", attempt), zap.Error(err))
		},
	}, func() error {
		return c.breaker.Execute(func() error {
			req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
			if err != nil {
				return err
			}
			req.Header.Set("accept", "*/*")
			req.Header.Set("X-API-Key", c.apiKey)
			if contentType != "" {
				req.Header.Set("Content-Type", contentType)
			}
			return c.do(req, p, result)
		})
	})
}

func (c *Client) do(req *http.Request, p string, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Method: req.Method, Path: p, Body: strings.TrimSpace(string(data))}
	}
	if result != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("clowder %s: decode: %w", p, err)
		}
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, breaker.ErrOpen) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}

func (c *Client) Get(ctx context.Context, p string, query url.Values, result interface{}) error {
	return c.Request(ctx, http.MethodGet, p, query, nil, "", result)
}

func (c *Client) Post(ctx context.Context, p string, body, result interface{}) error {
	if body == nil {
		return c.Request(ctx, http.MethodPost, p, nil, nil, "", result)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.Request(ctx, http.MethodPost, p, nil, bytes.NewReader(data), "application/json", result)
}

func (c *Client) FindSpace(ctx context.Context, name string) (*Space, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("limit", "100")
	var spaces []Space
	if err := c.Get(ctx, "spaces", query, &spaces); err != nil {
		return nil, err
	}
	for i := range spaces {
		if spaces[i].Name == name {
			return &spaces[i], nil
		}
	}
	return nil, nil
}

func (c *Client) CreateSpace(ctx context.Context, name, description string) (*Space, error) {
	space := Space{Name: name, Description: description}
	if err := c.Post(ctx, "spaces", space, &space); err != nil {
		return nil, err
	}
	if space.Name == "" {
		space.Name = name
	}
	return &space, nil
}

func (c *Client) ListDatasets(ctx context.Context, spaceID string) ([]Dataset, error) {
	var datasets []Dataset
	if err := c.Get(ctx, "spaces/"+spaceID+"/datasets", nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// CreateDataset creates an empty dataset and attaches it to the space.
func (c *Client) CreateDataset(ctx context.Context, spaceID, name string) (*Dataset, error) {
	var ds Dataset
	if err := c.Post(ctx, "datasets/createempty", map[string]string{"name": name}, &ds); err != nil {
		return nil, err
	}
	if ds.ID == "" {
		return nil, fmt.Errorf("clowder createempty %q: no dataset id returned", name)
	}
	ds.Name = name
	if err := c.Post(ctx, "spaces/"+spaceID+"/addDatasetToSpace/"+ds.ID, nil, nil); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (c *Client) ListFolders(ctx context.Context, datasetID string) ([]Folder, error) {
	var folders []Folder
	if err := c.Get(ctx, "datasets/"+datasetID+"/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder creates name under parentFolderID, or under the dataset root when it is empty.
func (c *Client) CreateFolder(ctx context.Context, datasetID, name, parentFolderID string) (*Folder, error) {
	req := newFolderRequest{Name: name, ParentID: datasetID, ParentType: "dataset"}
	if parentFolderID != "" {
		req.ParentID = parentFolderID
		req.ParentType = "folder"
	}
	var folder Folder
	if err := c.Post(ctx, "datasets/"+datasetID+"/newFolder", req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *Client) ListFiles(ctx context.Context, datasetID string) ([]File, error) {
	var files []File
	if err := c.Get(ctx, "datasets/"+datasetID+"/files", nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// AddServerFile registers a file already on the repository host's filesystem.
// A file with the same name already in the dataset is returned as is.
func (c *Client) AddServerFile(ctx context.Context, datasetID, filePath, folderID string) (*File, error) {
	existing, err := c.ListFiles(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	base := path.Base(filePath)
	for _, f := range existing {
		if f.Filename == base {
			return &File{ID: f.ID, Filename: f.Filename}, nil
		}
	}

	meta, err := json.Marshal(serverFile{Path: filePath, Dataset: datasetID})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("file", string(meta)); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("extract", "true")
	var file File
	if err := c.Request(ctx, http.MethodPost, "uploadToDataset/"+datasetID, query, &buf, mw.FormDataContentType(), &file); err != nil {
		return nil, err
	}
	if file.ID == "" {
		return nil, fmt.Errorf("clowder upload %s: no file id returned", filePath)
	}
	file.Filename = base
	if folderID != "" {
		if err := c.Post(ctx, "datasets/"+datasetID+"/moveFile/"+folderID+"/"+file.ID, struct{}{}, nil); err != nil {
			return nil, err
		}
	}
	return &file, nil
}

func (c *Client) AddMetadata(ctx context.Context, datasetID string, metadata map[string]interface{}) error {
	return c.Post(ctx, "datasets/"+datasetID+"/metadata", metadata, nil)
}

func (c *Client) AddTags(ctx context.Context, datasetID string, tags []string) error {
	return c.Post(ctx, "datasets/"+datasetID+"/tags", map[string][]string{"tags": tags}, nil)
}

// DatasetURL is the web link to a dataset.
func (c *Client) DatasetURL(datasetID, spaceID string) string {
	return fmt.Sprintf("%s/datasets/%s?space=%s", c.webUrl, datasetID, spaceID)
}
