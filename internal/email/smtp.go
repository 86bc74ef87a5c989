package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tigertrade/internal/config"
)

const dialTimeout = 30 * time.Second

// SMTPSender delivers mail over SMTP with implicit TLS, STARTTLS or plain.
type SMTPSender struct {
	host     string
	port     int
	mode     string
	username string
	password string
}

// NewSMTPSender creates a sender from the SMTP and mail account settings.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		mode:     cfg.SMTPMode,
		username: cfg.MailUser,
		password: cfg.MailPass,
	}
}

func (s *SMTPSender) addr() string {
	return net.JoinHostPort(s.host, fmt.Sprint(s.port))
}

func (s *SMTPSender) auth() smtp.Auth {
	if s.username == "" || s.password == "" {
		return nil
	}
	return smtp.PlainAuth("", s.username, s.password, s.host)
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, email *Email) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	envelopeFrom := s.username
	if addr, err := mail.ParseAddress(email.From); err == nil {
		envelopeFrom = addr.Address
	}

	if err := client.Mail(envelopeFrom); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	if err := client.Rcpt(email.To); err != nil {
		return fmt.Errorf("SMTP RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}
	if _, err := w.Write(buildMessage(email, s.host)); err != nil {
		return fmt.Errorf("SMTP write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SMTP close failed: %w", err)
	}

	return client.Quit()
}

// Verify connects, negotiates TLS and authenticates without sending.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Quit()
}

// connect returns an authenticated client according to the configured mode.
func (s *SMTPSender) connect(ctx context.Context) (*smtp.Client, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}

	tlsConfig := &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	}

	var conn net.Conn
	var err error
	switch s.mode {
	case config.SMTPModeTLS:
		d := &tls.Dialer{Config: tlsConfig}
		conn, err = d.DialContext(ctx, "tcp", s.addr())
		if err != nil {
			return nil, fmt.Errorf("TLS dial failed: %w", err)
		}
	default:
		var d net.Dialer
		conn, err = d.DialContext(ctx, "tcp", s.addr())
		if err != nil {
			return nil, fmt.Errorf("SMTP dial failed: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("SMTP client failed: %w", err)
	}

	// starttls requires the upgrade; none still takes it when offered.
	upgrade := s.mode == config.SMTPModeStartTLS
	if s.mode == config.SMTPModeNone {
		upgrade, _ = client.Extension("STARTTLS")
	}
	if upgrade {
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return nil, fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	if auth := s.auth(); auth != nil {
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	return client, nil
}

// buildMessage renders email as a MIME message. A plain text part is only
// added when Text is set.
func buildMessage(email *Email, host string) []byte {
	var msg strings.Builder

	writeHeader := func(k, v string) {
		msg.WriteString(k)
		msg.WriteString(": ")
		msg.WriteString(v)
		msg.WriteString("\r\n")
	}

	writeHeader("From", email.From)
	writeHeader("To", email.To)
	if email.ReplyTo != "" {
		writeHeader("Reply-To", email.ReplyTo)
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", email.Subject))
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), host))
	for k, v := range email.Headers {
		writeHeader(k, v)
	}
	writeHeader("MIME-Version", "1.0")

	if email.Text == "" {
		writeHeader("Content-Type", `text/html; charset="UTF-8"`)
		msg.WriteString("\r\n")
		msg.WriteString(email.HTML)
		msg.WriteString("\r\n")
		return []byte(msg.String())
	}

	boundary := "TigerTrade-" + strings.ReplaceAll(uuid.NewString(), "-", "")
	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(email.Text)
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(email.HTML)
	msg.WriteString("\r\n")

	msg.WriteString("--" + boundary + "--\r\n")
	return []byte(msg.String())
}
