package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tigertrade/internal/config"
	"tigertrade/internal/metrics"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no HTML content was provided.
	ErrNoContent = errors.New("email must have HTML content")

	// ErrDispatch indicates the transport failed to deliver the message.
	ErrDispatch = errors.New("failed to send email")
)

// Email is a fully prepared transactional message.
type Email struct {
	To      string
	From    string // defaults to the gateway's From
	ReplyTo string
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

// Sender delivers an email. Implementations do not retry.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Verifier is implemented by senders that can check their connection.
type Verifier interface {
	Verify(ctx context.Context) error
}

// DispatchError wraps a transport failure. errors.Is(err, ErrDispatch) holds
// and Unwrap returns the transport error unchanged.
type DispatchError struct {
	To  string
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("send to %s: %v", e.To, e.Err)
}

func (e *DispatchError) Unwrap() []error {
	return []error{ErrDispatch, e.Err}
}

// Gateway is the single chokepoint for outbound mail. It is built once at
// startup and shared read-only between requests.
type Gateway struct {
	sender Sender
	from   string
}

// NewGateway creates a gateway sending through sender with cfg's From address.
func NewGateway(cfg *config.Config, sender Sender) *Gateway {
	return &Gateway{
		sender: sender,
		from:   cfg.FromAddress(),
	}
}

// NewSender builds the transport selected by cfg.MailProvider.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case config.ProviderSMTP, "":
		return NewSMTPSender(cfg), nil
	case config.ProviderResend:
		return NewResendSender(cfg), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}

// SendMail delivers one email. It makes exactly one transport call.
func (g *Gateway) SendMail(ctx context.Context, email *Email) error {
	if email.To == "" {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}
	if email.From == "" {
		email.From = g.from
	}

	if err := g.sender.Send(ctx, email); err != nil {
		metrics.RecordDispatch(metrics.OutcomeFailed)
		slog.ErrorContext(ctx, "email dispatch failed", "to", email.To, "subject", email.Subject, "error", err)
		return &DispatchError{To: email.To, Err: err}
	}

	metrics.RecordDispatch(metrics.OutcomeSent)
	slog.InfoContext(ctx, "email sent", "to", email.To, "subject", email.Subject)
	return nil
}

// Verify checks the transport connection. Senders without a check are
// always considered ready.
func (g *Gateway) Verify(ctx context.Context) error {
	v, ok := g.sender.(Verifier)
	if !ok {
		return nil
	}
	return v.Verify(ctx)
}

// VerifyOnStartup checks the transport once and logs the result. It never
// fails: a broken transport shows up later as dispatch errors.
func (g *Gateway) VerifyOnStartup(ctx context.Context) bool {
	if err := g.Verify(ctx); err != nil {
		slog.ErrorContext(ctx, "mail transport verification failed", "error", err)
		return false
	}
	slog.InfoContext(ctx, "SMTP server ready")
	return true
}
