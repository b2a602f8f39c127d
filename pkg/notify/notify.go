package notify

import (
	"context"
	"fmt"

	"pitschi/pkg/log"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Severity string

const (
	SeverityInfo    Severity = "Info"
	SeverityWarning Severity = "Warning"
	SeverityError   Severity = "Error"
)

// Notifier delivers emails and chat alerts. Callers treat failures as best effort.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, html string) error
	SendAlert(ctx context.Context, severity Severity, title, message string) error
}

// Sink routes emails over SMTP and alerts to a Teams webhook. Either side is
// skipped when it is not configured.
type Sink struct {
	mailer *Mailer
	teams  *Teams
	logger *log.Logger
}

func NewNotifier(conf *viper.Viper, logger *log.Logger) (Notifier, error) {
	var mailOpts MailOptions
	if err := conf.UnmarshalKey("email", &mailOpts); err != nil {
		return nil, fmt.Errorf("email config: %w", err)
	}
	s := &Sink{logger: logger}
	if mailOpts.SMTPHost != "" {
		s.mailer = NewMailer(mailOpts)
	}
	if webhook := conf.GetString("teams.webhook"); webhook != "" {
		s.teams = NewTeams(webhook, conf.GetDuration("teams.timeout"))
	}
	return s, nil
}

func (s *Sink) SendEmail(ctx context.Context, to, subject, html string) error {
	if s.mailer == nil {
		s.logger.WithContext(ctx).Debug("email disabled, dropping message", zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	return s.mailer.Send(ctx, to, subject, html)
}

func (s *Sink) SendAlert(ctx context.Context, severity Severity, title, message string) error {
	if s.teams == nil {
		s.logger.WithContext(ctx).Debug("teams disabled, dropping alert", zap.String("title", title))
		return nil
	}
	return s.teams.Send(ctx, severity, title, message)
}
