// Package mail sends transactional email through an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/meetuphub/meetup-api/internal/config"
)

// Mailer defines outbound transactional email. Callers treat sends as
// best-effort: a failed welcome mail must never fail the request that
// triggered it.
type Mailer interface {
	// Send delivers an HTML message to a single recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer over an SMTP relay using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig, logger *slog.Logger) *SMTPMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger.With(slog.String("component", "mailer")),
	}
}

var _ Mailer = (*SMTPMailer)(nil)

// Send implements Mailer. The context is consulted before dialing; gomail
// itself does not support cancellation mid-send.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send email",
			slog.String("error", err.Error()),
			slog.String("to", to),
			slog.String("subject", subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("email sent",
		slog.String("to", to),
		slog.String("subject", subject))
	return nil
}

// NoopMailer is used when no SMTP host is configured; it logs and drops
// every message.
type NoopMailer struct {
	logger *slog.Logger
}

// NewNoopMailer creates a mailer that discards messages.
func NewNoopMailer(logger *slog.Logger) *NoopMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopMailer{logger: logger.With(slog.String("component", "mailer"))}
}

var _ Mailer = (*NoopMailer)(nil)

// Send implements Mailer.
func (m *NoopMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.Debug("mailer disabled, dropping email",
		slog.String("to", to),
		slog.String("subject", subject))
	return nil
}
