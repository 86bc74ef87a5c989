package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/handlers"
	"tigertrade/internal/metrics"
	"tigertrade/internal/models"
	"tigertrade/internal/validation"
)

// OfferHandler handles offer submissions from the web client.
type OfferHandler struct {
	notifier handlers.OfferSender
}

// NewOfferHandler creates a new API offer handler.
func NewOfferHandler(notifier handlers.OfferSender) *OfferHandler {
	return &OfferHandler{notifier: notifier}
}

// Send handles POST /send-offer. Validation happens before any email is
// rendered, and exactly one email goes to the seller on success.
func (h *OfferHandler) Send(c fiber.Ctx) error {
	var offer models.Offer
	if err := decodeStrict(c.Body(), &offer); err != nil {
		metrics.RecordOfferSubmitted(metrics.OutcomeInvalid)
		return jsonError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	if err := validation.ValidateOffer(&offer); err != nil {
		metrics.RecordOfferSubmitted(metrics.OutcomeInvalid)
		return jsonError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := h.notifier.SendOffer(c.Context(), &offer); err != nil {
		metrics.RecordOfferSubmitted(metrics.OutcomeFailed)
		slog.ErrorContext(c.Context(), "send-offer failed", "item", offer.ItemName, "post_id", offer.PostID, "error", err)
		return jsonErrorDetails(c, fiber.StatusInternalServerError, "Failed to send offer email", err.Error())
	}

	metrics.RecordOfferSubmitted(metrics.OutcomeSent)
	return jsonMessage(c, "Offer email sent successfully")
}
