package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// TransportVerifier checks that outbound mail can be delivered.
type TransportVerifier interface {
	Verify(ctx context.Context) error
}

// MailChecker periodically re-verifies the mail transport and publishes the
// result for the health endpoint. It never blocks request handling.
type MailChecker struct {
	verifier TransportVerifier
	interval time.Duration
	timeout  time.Duration
	ready    *atomic.Bool
}

// NewMailChecker creates a new mail transport checker. The first check is
// expected to come from startup verification, so Start waits one interval.
func NewMailChecker(verifier TransportVerifier, interval time.Duration, ready *atomic.Bool) *MailChecker {
	return &MailChecker{
		verifier: verifier,
		interval: interval,
		timeout:  30 * time.Second,
		ready:    ready,
	}
}

// Start begins the background check loop and returns when ctx is done.
func (m *MailChecker) Start(ctx context.Context) {
	slog.Info("mail checker started", "interval", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("mail checker stopped")
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check verifies the transport once and stores the result. State changes
// are logged; repeated results are not.
func (m *MailChecker) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.verifier.Verify(ctx)
	ready := err == nil
	was := m.ready.Swap(ready)

	switch {
	case ready && !was:
		slog.Info("mail transport recovered")
	case !ready && was:
		slog.Error("mail transport check failed", "error", err)
	}
	return ready
}
