package api

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/models"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	mailReady *atomic.Bool
}

// NewHealthHandler creates a health handler. mailReady is set once the
// startup transport check succeeds; it is reported, never enforced.
func NewHealthHandler(mailReady *atomic.Bool) *HealthHandler {
	if mailReady == nil {
		mailReady = new(atomic.Bool)
	}
	return &HealthHandler{mailReady: mailReady}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "ok",
		MailReady: h.mailReady.Load(),
	})
}
