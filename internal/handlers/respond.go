package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/metrics"
	"tigertrade/internal/models"
	"tigertrade/internal/validation"
)

// MsgProcessingError is the only failure detail shown to the seller.
const MsgProcessingError = "Error processing offer response."

// Resolution is the outcome of a decision link, computed without I/O.
type Resolution struct {
	Link     models.DecisionLink
	Decision models.Decision
	Amount   models.Amount
	Page     ConfirmationPage
}

// ConfirmationPage is the data for the page shown to the seller after a click.
type ConfirmationPage struct {
	Heading string // "Accepted" or "Declined"
	Class   string // "accept" (green) or "decline" (red)
	Message string
}

// ResolveDecision validates a parsed link and derives everything needed to
// notify the buyer and answer the seller. The amount is re-parsed from the
// raw link value and re-formatted here.
func ResolveDecision(link models.DecisionLink) (Resolution, error) {
	decision, amount, err := validation.ValidateDecisionLink(link)
	if err != nil {
		return Resolution{}, err
	}

	class := "decline"
	if decision.Accepted() {
		class = "accept"
	}

	return Resolution{
		Link:     link,
		Decision: decision,
		Amount:   amount,
		Page: ConfirmationPage{
			Heading: decision.Title(),
			Class:   class,
			Message: fmt.Sprintf("You have %s the $%s offer for \"%s\". The buyer has been notified.", decision.Verb(), amount, link.ItemName),
		},
	}, nil
}

// RespondHandler serves the decision links emailed to sellers. The links
// are unauthenticated and carry all offer state in the query string.
// sellerEmail is taken from the link as-is and becomes the Reply-To of the
// buyer's notification; it is not checked against the listing.
type RespondHandler struct {
	notifier OfferResponder
}

// NewRespondHandler creates a new decision link handler.
func NewRespondHandler(notifier OfferResponder) *RespondHandler {
	return &RespondHandler{notifier: notifier}
}

// Respond handles GET /respond-offer. Every visit is processed in full, so
// clicking the same link twice sends the buyer two identical emails.
func (h *RespondHandler) Respond(c fiber.Ctx) error {
	link, err := models.ParseDecisionLink(string(c.Request().URI().QueryString()))
	if err != nil {
		metrics.RecordDecision("", metrics.OutcomeInvalid)
		return c.Status(fiber.StatusBadRequest).SendString(validation.MsgMissingLinkFields)
	}

	res, err := ResolveDecision(link)
	if err != nil {
		metrics.RecordDecision(link.Decision, metrics.OutcomeInvalid)
		if ve, ok := validation.AsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).SendString(ve.Message)
		}
		return c.Status(fiber.StatusBadRequest).SendString(validation.MsgMissingLinkFields)
	}

	// The page claims the buyer was notified, so it is only shown once the
	// email has actually gone out.
	if err := h.notifier.SendOfferResponse(c.Context(), res.Link, res.Decision, res.Amount); err != nil {
		metrics.RecordDecision(string(res.Decision), metrics.OutcomeFailed)
		slog.ErrorContext(c.Context(), "offer response failed",
			"decision", res.Decision,
			"item", res.Link.ItemName,
			"post_id", res.Link.PostID,
			"error", err,
		)
		return c.Status(fiber.StatusInternalServerError).SendString(MsgProcessingError)
	}

	metrics.RecordDecision(string(res.Decision), metrics.OutcomeSent)
	return c.Render("confirmation", fiber.Map{
		"Heading": res.Page.Heading,
		"Class":   res.Page.Class,
		"Message": res.Page.Message,
	}, "")
}
