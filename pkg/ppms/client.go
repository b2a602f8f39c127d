package ppms

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pitschi/pkg/breaker"
	"pitschi/pkg/log"
	"pitschi/pkg/retry"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	apiPUMAPI = "pumapi/"
	apiAPI2   = "API2/"
)

// ErrNotFound is returned by single-record lookups the facility answers with no content.
var ErrNotFound = errors.New("ppms: not found")

// APIError is a non-2xx facility response.
type APIError struct {
	StatusCode int
	Action     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ppms API error (action %s, status %d): %s", e.Action, e.StatusCode, e.Body)
}

// Temporary reports whether the request is worth retrying.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

type Options struct {
	URL                string          `mapstructure:"url"`
	PumapiKey          string          `mapstructure:"pumapi_key"`
	API2Key            string          `mapstructure:"api2_key"`
	CoreIDs            []int64         `mapstructure:"core_ids"`
	BookingQuery       string          `mapstructure:"booking_query"`
	TrainingQuery      string          `mapstructure:"training_query"`
	CoresQuery         string          `mapstructure:"cores_query"`
	UsersQuery         string          `mapstructure:"users_query"`
	SystemPIDQuery     string          `mapstructure:"system_pid_query"`
	QCollectionAction  string          `mapstructure:"qcollection_action"`
	QCollectionsAction string          `mapstructure:"qcollections_action"`
	QCollectionField   string          `mapstructure:"q_collection_field"`
	RetryAttempts      int             `mapstructure:"retry_attempts"`
	RetryDelay         time.Duration   `mapstructure:"retry_delay"`
	RateLimit          float64         `mapstructure:"rate_limit"`
	Timeout            time.Duration   `mapstructure:"timeout"`
	Breaker            breaker.Options `mapstructure:"breaker"`
}

func (o Options) withDefaults() Options {
	if o.UsersQuery == "" {
		o.UsersQuery = "Report1335"
	}
	if o.SystemPIDQuery == "" {
		o.SystemPIDQuery = "Report2168"
	}
	if o.RetryAttempts == 0 {
		o.RetryAttempts = 3
	}
	if o.RetryDelay == 0 {
		o.RetryDelay = time.Second
	}
	if o.Timeout == 0 {
		o.Timeout = 60 * time.Second
	}
	return o
}

// Client talks to the facility pumapi and API2 endpoints.
type Client struct {
	baseUrl    *url.URL
	httpClient *http.Client
	opts       Options
	limiter    *rate.Limiter
	breaker    *breaker.Breaker
	logger     *log.Logger
}

func NewClient(conf *viper.Viper, logger *log.Logger) (*Client, error) {
	var opts Options
	if err := conf.UnmarshalKey("ppms", &opts); err != nil {
		return nil, fmt.Errorf("ppms config: %w", err)
	}
	return New(opts, logger)
}

func New(opts Options, logger *log.Logger) (*Client, error) {
	opts = opts.withDefaults()
	baseUrl, err := url.Parse(opts.URL)
	if err != nil {
		return nil, err
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}
	return &Client{
		baseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: opts.Timeout},
		opts:       opts,
		limiter:    limiter,
		breaker:    breaker.New("ppms", opts.Breaker, logger),
		logger:     logger,
	}, nil
}

func (c *Client) CoreIDs() []int64 {
	return c.opts.CoreIDs
}

// Post sends a form-encoded request and returns the body. A nil body means
// the facility confirmed there is no data.
func (c *Client) Post(ctx context.Context, api string, form url.Values) ([]byte, error) {
	if api == apiPUMAPI {
		form.Set("apikey", c.opts.PumapiKey)
	} else {
		form.Set("apikey", c.opts.API2Key)
	}
	endpoint := c.baseUrl.JoinPath(api).String()
	action := form.Get("action")

	var body []byte
	err := retry.Do(ctx, retry.Policy{
		Attempts:  c.opts.RetryAttempts,
		Delay:     c.opts.RetryDelay,
		Retryable: retryable,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			c.logger.WithContext(ctx).Warn("ppms request failed, retrying",
				zap.String("action", action),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err))
		},
	}, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		return c.breaker.Execute(func() error {
			var err error
			body, err = c.do(ctx, endpoint, action, form)
			return err
		})
	})
	return body, err
}

func (c *Client) do(ctx context.Context, endpoint, action string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Action: action, Body: strings.TrimSpace(string(body))}
	}
	if resp.StatusCode == http.StatusNoContent || len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	return body, nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, breaker.ErrOpen) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return true
}

// PostJSON decodes a JSON response into result. Empty responses leave result untouched.
func (c *Client) PostJSON(ctx context.Context, api string, form url.Values, result interface{}) error {
	body, err := c.Post(ctx, api, form)
	if err != nil {
		return err
	}
	if body == nil {
		return nil
	}
	return decode(body, form, result)
}

// PostCSV returns the data rows of a CSV response, header excluded.
func (c *Client) PostCSV(ctx context.Context, api string, form url.Values) ([][]string, error) {
	body, err := c.Post(ctx, api, form)
	if err != nil || body == nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(string(body)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ppms %s: csv: %w", form.Get("action"), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
