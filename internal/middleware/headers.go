package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// NoStore keeps decision pages out of caches and stops the query string,
// which carries buyer and seller addresses, from leaking through Referer.
func NoStore(c fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderReferrerPolicy, "no-referrer")
	return c.Next()
}

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON(c fiber.Ctx) error {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error": "Content-Type must be application/json",
		})
	}
	return c.Next()
}
