package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/handlers"
	"tigertrade/internal/metrics"
	"tigertrade/internal/models"
	"tigertrade/internal/validation"
)

// ReceiptHandler handles order confirmations sent after checkout.
type ReceiptHandler struct {
	notifier handlers.ReceiptSender
}

// NewReceiptHandler creates a new API receipt handler.
func NewReceiptHandler(notifier handlers.ReceiptSender) *ReceiptHandler {
	return &ReceiptHandler{notifier: notifier}
}

// Send handles POST /send-receipt.
func (h *ReceiptHandler) Send(c fiber.Ctx) error {
	var receipt models.Receipt
	if err := decodeStrict(c.Body(), &receipt); err != nil {
		metrics.RecordReceipt(metrics.OutcomeInvalid)
		return jsonError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	if err := validation.ValidateReceipt(&receipt); err != nil {
		metrics.RecordReceipt(metrics.OutcomeInvalid)
		return jsonError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := h.notifier.SendReceipt(c.Context(), &receipt); err != nil {
		metrics.RecordReceipt(metrics.OutcomeFailed)
		slog.ErrorContext(c.Context(), "send-receipt failed", "item", receipt.ItemName, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to send email")
	}

	metrics.RecordReceipt(metrics.OutcomeSent)
	return jsonMessage(c, "Email sent successfully")
}
