package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tigertrade/internal/validation"
)

// SMTP security modes.
const (
	SMTPModeTLS      = "tls"      // implicit TLS, usually port 465
	SMTPModeStartTLS = "starttls" // STARTTLS upgrade, usually port 587
	SMTPModeNone     = "none"
)

// Mail providers.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

// RespondPath is the route that decision links point at.
const RespondPath = "/respond-offer"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	Port    int
	BaseURL string // externally reachable URL used to build decision links

	// Mail account
	MailUser     string
	MailPass     string
	MailFromName string
	MailProvider string // "smtp" or "resend"
	ResendAPIKey string

	// SMTP transport
	SMTPHost string
	SMTPPort int
	SMTPMode string // "tls", "starttls" or "none"

	// Interval between background transport checks, 0 disables them
	MailCheckInterval time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiter storage, memory when empty
	RedisURL string

	// Error reporting
	SentryDSN string

	// Timezone used to display pickup dates
	Timezone string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "TigerTrade"
	SiteTagline string // env: SITE_TAGLINE, default: "For a Safe Campus Market"

	loadErr error
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	port, portErr := strconv.Atoi(getEnv("PORT", "5000"))
	smtpPort, smtpPortErr := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if portErr == nil {
		portErr = smtpPortErr
	}
	checkInterval, checkErr := time.ParseDuration(getEnv("MAIL_CHECK_INTERVAL", "5m"))
	if portErr == nil && checkErr != nil {
		portErr = fmt.Errorf("MAIL_CHECK_INTERVAL: %w", checkErr)
	}

	return &Config{
		Env:               getEnv("ENV", "development"),
		Port:              port,
		BaseURL:           strings.TrimRight(getEnv("BASE_URL", fmt.Sprintf("http://localhost:%d", port)), "/"),
		MailUser:          getEnv("MAIL_USER", os.Getenv("GMAIL_USER")),
		MailPass:          getEnv("MAIL_PASS", os.Getenv("GMAIL_PASS")),
		MailFromName:      getEnv("MAIL_FROM_NAME", "TigerTrade"),
		MailProvider:      strings.ToLower(getEnv("MAIL_PROVIDER", ProviderSMTP)),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          smtpPort,
		SMTPMode:          ParseSMTPMode(getEnv("SMTP_SECURE", "true")),
		MailCheckInterval: checkInterval,
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),
		RedisURL:          getEnv("REDIS_URL", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		Timezone:          getEnv("TIMEZONE", "Local"),
		SiteTitle:         getEnv("SITE_TITLE", "TigerTrade"),
		SiteTagline:       getEnv("SITE_TAGLINE", "For a Safe Campus Market"),
		loadErr:           portErr,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// ParseSMTPMode maps SMTP_SECURE to a transport mode. Boolean values follow
// the nodemailer convention: true is implicit TLS, false is plain.
// Unknown values are returned lowercased so Validate can reject them.
func ParseSMTPMode(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "true", "1", "yes", SMTPModeTLS, "ssl":
		return SMTPModeTLS
	case "false", "0", "no", SMTPModeNone, "":
		return SMTPModeNone
	case SMTPModeStartTLS:
		return SMTPModeStartTLS
	default:
		return v
	}
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	if c.loadErr != nil {
		return fmt.Errorf("invalid setting: %w", c.loadErr)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if valid, msg := validation.ValidateURL(c.BaseURL); !valid {
		return fmt.Errorf("invalid BASE_URL %q: %s", c.BaseURL, msg)
	}
	switch c.MailProvider {
	case ProviderSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required")
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			return fmt.Errorf("invalid SMTP_PORT %d", c.SMTPPort)
		}
		switch c.SMTPMode {
		case SMTPModeTLS, SMTPModeStartTLS, SMTPModeNone:
		default:
			return fmt.Errorf("unknown SMTP_SECURE mode %q", c.SMTPMode)
		}
	case ProviderResend:
		if c.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when MAIL_PROVIDER=resend")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.MailProvider)
	}
	if c.MailCheckInterval < 0 {
		return fmt.Errorf("invalid MAIL_CHECK_INTERVAL %s", c.MailCheckInterval)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// RespondURL returns the absolute base of every decision link.
func (c *Config) RespondURL() string {
	return c.BaseURL + RespondPath
}

// FromAddress returns the From header for outgoing mail.
func (c *Config) FromAddress() string {
	if c.MailFromName == "" {
		return c.MailUser
	}
	return fmt.Sprintf("%q <%s>", c.MailFromName, c.MailUser)
}

// AllowedOrigins splits CORSOrigins, dropping empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Location returns the timezone for displaying pickup dates.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
