package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"tigertrade/internal/config"
)

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	apiKey string
}

// NewResendSender creates a Resend sender from cfg.ResendAPIKey.
func NewResendSender(cfg *config.Config) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.ResendAPIKey),
		apiKey: cfg.ResendAPIKey,
	}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, email *Email) error {
	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

// Verify checks that an API key is configured. Resend has no handshake.
func (s *ResendSender) Verify(ctx context.Context) error {
	if s.apiKey == "" {
		return errors.New("resend: API key not configured")
	}
	return nil
}
