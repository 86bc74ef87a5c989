package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/config"
	"tigertrade/internal/email"
	"tigertrade/internal/metrics"
	"tigertrade/internal/models"
	"tigertrade/internal/validation"
)

// Messages shown on the offer form.
const (
	MsgSignInRequired     = "Please sign in before making an offer."
	MsgItemTitleMissing   = "Item title is missing"
	MsgBuyerNameMissing   = "Buyer username is missing"
	MsgSellerEmailMissing = "Seller email is missing"
	MsgInvalidOffer       = "Invalid offer amount"
	MsgOfferSent          = "Your offer has been sent!"
	MsgOfferFailed        = "Failed to send offer"
)

// OfferForm holds the raw form values so they can be re-rendered.
type OfferForm struct {
	PostID      string
	ItemName    string
	SellerEmail string
	SellerName  string
	BuyerEmail  string
	BuyerName   string
	Amount      string
	Note        string
}

// check applies the buyer-side checks and returns the offer to submit.
func (f OfferForm) check() (*models.Offer, string) {
	if strings.TrimSpace(f.BuyerEmail) == "" {
		return nil, MsgSignInRequired
	}
	if strings.TrimSpace(f.ItemName) == "" {
		return nil, MsgItemTitleMissing
	}
	if strings.TrimSpace(f.BuyerName) == "" {
		return nil, MsgBuyerNameMissing
	}
	if strings.TrimSpace(f.SellerEmail) == "" {
		return nil, MsgSellerEmailMissing
	}
	amount, err := models.ParseAmount(f.Amount)
	if err != nil {
		return nil, MsgInvalidOffer
	}

	return &models.Offer{
		ItemName:    f.ItemName,
		PostID:      f.PostID,
		BuyerEmail:  f.BuyerEmail,
		BuyerName:   f.BuyerName,
		Amount:      amount,
		Note:        f.Note,
		SellerEmail: f.SellerEmail,
		SellerName:  f.SellerName,
	}, ""
}

// OfferFormHandler serves the server-rendered "Make an Offer" form.
type OfferFormHandler struct {
	notifier OfferSender
	cfg      *config.Config
}

// NewOfferFormHandler creates a new offer form handler.
func NewOfferFormHandler(notifier OfferSender, cfg *config.Config) *OfferFormHandler {
	return &OfferFormHandler{notifier: notifier, cfg: cfg}
}

// New renders the empty form. Listing and party identity are prefilled from
// the query string by the listing page that links here.
func (h *OfferFormHandler) New(c fiber.Ctx) error {
	form := OfferForm{
		PostID:      c.Query("postId"),
		ItemName:    c.Query("itemName"),
		SellerEmail: c.Query("sellerEmail"),
		SellerName:  c.Query("sellerName"),
		BuyerEmail:  c.Query("buyerEmail"),
		BuyerName:   c.Query("buyerName"),
	}
	return h.render(c, fiber.StatusOK, form, "", "")
}

// Create handles the form post and submits the offer to the seller.
func (h *OfferFormHandler) Create(c fiber.Ctx) error {
	form := OfferForm{
		PostID:      c.FormValue("postId"),
		ItemName:    c.FormValue("itemName"),
		SellerEmail: c.FormValue("sellerEmail"),
		SellerName:  c.FormValue("sellerName"),
		BuyerEmail:  c.FormValue("buyerEmail"),
		BuyerName:   c.FormValue("buyerName"),
		Amount:      c.FormValue("amount"),
		Note:        c.FormValue("note"),
	}

	offer, msg := form.check()
	if msg != "" {
		metrics.RecordOfferSubmitted(metrics.OutcomeInvalid)
		return h.render(c, fiber.StatusBadRequest, form, msg, "")
	}

	if err := validation.ValidateOffer(offer); err != nil {
		metrics.RecordOfferSubmitted(metrics.OutcomeInvalid)
		msg := MsgInvalidOffer
		if ve, ok := validation.AsValidationError(err); ok {
			msg = ve.Message
		}
		return h.render(c, fiber.StatusBadRequest, form, msg, "")
	}

	if err := h.notifier.SendOffer(c.Context(), offer); err != nil {
		metrics.RecordOfferSubmitted(metrics.OutcomeFailed)
		slog.ErrorContext(c.Context(), "offer form submission failed",
			"item", offer.ItemName,
			"render_error", errors.Is(err, email.ErrRender),
			"error", err,
		)
		return h.render(c, fiber.StatusInternalServerError, form, MsgOfferFailed, "")
	}

	metrics.RecordOfferSubmitted(metrics.OutcomeSent)
	form.Amount, form.Note = "", ""
	return h.render(c, fiber.StatusOK, form, "", MsgOfferSent)
}

func (h *OfferFormHandler) render(c fiber.Ctx, status int, form OfferForm, errMsg, success string) error {
	return c.Status(status).Render("offer_form", MergeBranding(fiber.Map{
		"Title":   "Make an Offer",
		"Form":    form,
		"Error":   errMsg,
		"Success": success,
	}, h.cfg))
}
