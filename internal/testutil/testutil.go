// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"sync"

	"tigertrade/internal/config"
	"tigertrade/internal/email"
)

// Config returns a configuration suitable for handler and server tests.
// Nothing in it reaches a real mail server.
func Config() *config.Config {
	return &config.Config{
		Env:          "test",
		Port:         5000,
		BaseURL:      "http://localhost:5000",
		MailUser:     "tigertrade@example.edu",
		MailFromName: "TigerTrade",
		MailProvider: config.ProviderSMTP,
		SMTPHost:     "localhost",
		SMTPPort:     2525,
		SMTPMode:     config.SMTPModeNone,
		CORSOrigins:  "http://localhost:5173,http://localhost:5174",
		Timezone:     "UTC",
		SiteTitle:    "TigerTrade",
		SiteTagline:  "For a Safe Campus Market",
	}
}

// RecordingMailer captures every email handed to it. If Err is set, SendMail
// records the email and then returns Err.
type RecordingMailer struct {
	mu     sync.Mutex
	emails []email.Email
	Err    error
}

// SendMail records a copy of e.
func (m *RecordingMailer) SendMail(_ context.Context, e *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, *e)
	return m.Err
}

// Emails returns the emails sent so far.
func (m *RecordingMailer) Emails() []email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]email.Email, len(m.emails))
	copy(out, m.emails)
	return out
}

// Count returns the number of emails sent so far.
func (m *RecordingMailer) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.emails)
}

// Last returns the most recent email, or nil if none was sent.
func (m *RecordingMailer) Last() *email.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.emails) == 0 {
		return nil
	}
	e := m.emails[len(m.emails)-1]
	return &e
}
