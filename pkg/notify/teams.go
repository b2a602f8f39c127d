package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type messageCard struct {
	Context    string `json:"@context"`
	Type       string `json:"@type"`
	ThemeColor string `json:"themeColor"`
	Title      string `json:"title"`
	Text       string `json:"text"`
}

// Teams posts MessageCards to an incoming webhook.
type Teams struct {
	webhook    string
	httpClient *http.Client
}

func NewTeams(webhook string, timeout time.Duration) *Teams {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Teams{webhook: webhook, httpClient: &http.Client{Timeout: timeout}}
}

func themeColor(severity Severity) string {
	switch severity {
	case SeverityError:
		return "c60000"
	case SeverityWarning:
		return "c6c600"
	default:
		return "0078D7"
	}
}

func (t *Teams) Send(ctx context.Context, severity Severity, title, message string) error {
	payload, err := json.Marshal(messageCard{
		Context:    "https://schema.org/extensions",
		Type:       "MessageCard",
		ThemeColor: themeColor(severity),
		Title:      fmt.Sprintf("[%s] %s", severity, title),
		Text:       message,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.webhook, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("teams webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("teams webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
