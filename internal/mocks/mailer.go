package mocks

import (
	"context"

	"github.com/meetuphub/meetup-api/internal/platform/mail"
)

// SentMail records a single Send call.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements mail.Mailer for testing, recording every message.
type MockMailer struct {
	SendFn func(ctx context.Context, to, subject, htmlBody string) error

	Sent    []SentMail
	SendErr error
}

var _ mail.Mailer = (*MockMailer)(nil)

// Send implements mail.Mailer.
func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, htmlBody)
	}
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
