package api

import (
	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/models"
)

// jsonMessage returns a 200 response with a human-readable message.
func jsonMessage(c fiber.Ctx, message string) error {
	return c.JSON(models.MessageResponse{Message: message})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

// jsonErrorDetails is jsonError with the underlying failure attached.
func jsonErrorDetails(c fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message, Details: details})
}
