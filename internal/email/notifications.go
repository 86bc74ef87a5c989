package email

import (
	"context"
	"fmt"
	"time"

	"tigertrade/internal/config"
	"tigertrade/internal/models"
)

// Mailer is the dispatch capability the notifier needs.
type Mailer interface {
	SendMail(ctx context.Context, email *Email) error
}

// Notifier renders and sends the offer and receipt notifications.
type Notifier struct {
	mailer    Mailer
	templates *Templates
	cfg       *config.Config
	loc       *time.Location
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, mailer Mailer) *Notifier {
	loc, err := cfg.Location()
	if err != nil {
		loc = time.UTC
	}
	return &Notifier{
		mailer:    mailer,
		templates: NewTemplates(cfg),
		cfg:       cfg,
		loc:       loc,
	}
}

// DecisionURLs returns the accept and decline links for offer.
func (n *Notifier) DecisionURLs(offer *models.Offer) (acceptURL, declineURL string) {
	accept, decline := models.NewDecisionLinks(offer)
	base := n.cfg.RespondURL()
	return accept.URL(base), decline.URL(base)
}

// SendOffer emails the seller a new offer with both decision links.
func (n *Notifier) SendOffer(ctx context.Context, offer *models.Offer) error {
	acceptURL, declineURL := n.DecisionURLs(offer)

	subject, htmlBody, textBody, err := n.templates.OfferCreated(offer, acceptURL, declineURL)
	if err != nil {
		return err
	}

	return n.mailer.SendMail(ctx, &Email{
		To:      offer.SellerEmail,
		ReplyTo: offer.BuyerEmail,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
}

// SendOfferResponse emails the buyer the seller's decision.
func (n *Notifier) SendOfferResponse(ctx context.Context, link models.DecisionLink, decision models.Decision, amount models.Amount) error {
	subject, htmlBody, textBody, err := n.templates.OfferResolved(link, decision, amount)
	if err != nil {
		return err
	}

	return n.mailer.SendMail(ctx, &Email{
		To:      link.BuyerEmail,
		ReplyTo: link.SellerEmail,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
}

// SendReceipt emails the seller an order confirmation.
func (n *Notifier) SendReceipt(ctx context.Context, receipt *models.Receipt) error {
	pickup, err := receipt.PickupTime()
	if err != nil {
		return fmt.Errorf("parse pickup date: %w", err)
	}

	subject, htmlBody, textBody, err := n.templates.PurchaseReceipt(receipt, pickup, n.loc)
	if err != nil {
		return err
	}

	return n.mailer.SendMail(ctx, &Email{
		To:      receipt.SellerEmail,
		ReplyTo: receipt.BuyerEmail,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
}
