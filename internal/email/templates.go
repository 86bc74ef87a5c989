package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"tigertrade/internal/config"
	"tigertrade/internal/models"
)

// Template names used in RenderError.
const (
	TemplateOfferCreated    = "offer_created"
	TemplateOfferResolved   = "offer_resolved"
	TemplatePurchaseReceipt = "purchase_receipt"
)

// Templates provides email template generation.
type Templates struct {
	cfg   *config.Config
	strip *bluemonday.Policy
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{
		cfg:   cfg,
		strip: bluemonday.StrictPolicy(),
	}
}

// baseHTML wraps content in the shared notification layout.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body>
    <div style="font-family:Arial, sans-serif; line-height:1.6; color:#333; max-width:600px; margin:0 auto; padding:20px;">
        %s
        <p style="margin-top:18px; color:#777; font-size:12px;">%s: %s</p>
    </div>
</body>
</html>`, html.EscapeString(title), content, html.EscapeString(t.cfg.SiteTitle), html.EscapeString(t.cfg.SiteTagline))
}

func (t *Templates) footerText() string {
	return fmt.Sprintf("--\n%s: %s", t.cfg.SiteTitle, t.cfg.SiteTagline)
}

// noteHTML strips any markup from a buyer note, escapes it and keeps line breaks.
func (t *Templates) noteHTML(note string) string {
	plain := html.UnescapeString(t.strip.Sanitize(note))
	lines := strings.Split(strings.ReplaceAll(plain, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = html.EscapeString(l)
	}
	return strings.Join(lines, "<br/>")
}

// OfferCreated generates the seller-facing email for a new offer, with
// accept and decline buttons pointing at the decision links.
func (t *Templates) OfferCreated(offer *models.Offer, acceptURL, declineURL string) (subject, htmlBody, textBody string, err error) {
	if err = requireFields(TemplateOfferCreated,
		[2]string{"itemName", offer.ItemName},
		[2]string{"buyerEmail", offer.BuyerEmail},
		[2]string{"sellerEmail", offer.SellerEmail},
		[2]string{"acceptURL", acceptURL},
		[2]string{"declineURL", declineURL},
	); err != nil {
		return
	}
	if !offer.Amount.Valid() {
		err = &RenderError{Template: TemplateOfferCreated, Field: "amount"}
		return
	}

	amount := offer.Amount.String()
	subject = fmt.Sprintf("New Offer Received for %s", offer.ItemName)

	noteHTML := ""
	noteText := ""
	if strings.TrimSpace(offer.Note) != "" {
		noteHTML = fmt.Sprintf(`<p style="margin-bottom:18px;"><strong>Buyer Note:</strong><br/>%s</p>`, t.noteHTML(offer.Note))
		noteText = fmt.Sprintf("\nBuyer Note:\n%s\n", offer.Note)
	}

	content := fmt.Sprintf(`
        <h2 style="color:#333; margin-bottom:8px;">New Offer for: %s</h2>

        <p style="margin-bottom:10px;">
            <strong>Buyer:</strong> %s (%s)
        </p>
        <p style="margin-bottom:18px;"><strong>Offer Amount:</strong> $%s</p>
        %s
        <div style="margin-top:10px;">
            <a href="%s" target="_blank" rel="noopener noreferrer" style="text-decoration:none; display:inline-block; padding:12px 24px; background:#4CAF50; color:white; border-radius:6px; font-size:16px;">ACCEPT</a>
            <span style="display:inline-block; width:16px;"></span>
            <a href="%s" target="_blank" rel="noopener noreferrer" style="text-decoration:none; display:inline-block; padding:12px 24px; background:#F44336; color:white; border-radius:6px; font-size:16px;">DECLINE</a>
        </div>
    `,
		html.EscapeString(offer.ItemName),
		html.EscapeString(offer.BuyerDisplayName()),
		html.EscapeString(offer.BuyerEmail),
		amount,
		noteHTML,
		html.EscapeString(acceptURL),
		html.EscapeString(declineURL),
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`New Offer for: %s

Buyer: %s (%s)
Offer Amount: $%s
%s
Accept: %s
Decline: %s

%s`,
		offer.ItemName,
		offer.BuyerDisplayName(),
		offer.BuyerEmail,
		amount,
		noteText,
		acceptURL,
		declineURL,
		t.footerText(),
	)

	return
}

// OfferResolved generates the buyer-facing email after the seller decided.
// amount is re-derived from the link, never the embedded display string.
func (t *Templates) OfferResolved(link models.DecisionLink, decision models.Decision, amount models.Amount) (subject, htmlBody, textBody string, err error) {
	if err = requireFields(TemplateOfferResolved,
		[2]string{"buyerEmail", link.BuyerEmail},
		[2]string{"sellerEmail", link.SellerEmail},
		[2]string{"itemName", link.ItemName},
		[2]string{"decision", string(decision)},
	); err != nil {
		return
	}

	formatted := amount.String()
	subject = fmt.Sprintf("Offer Update: %s", link.ItemName)

	title := "Your Offer Has Been Declined"
	followUp := "Feel free to make another offer or contact the seller for more details."
	if decision.Accepted() {
		title = "Your Offer Has Been Accepted!"
		followUp = "If you are still interested in buying this item, go to Posts to choose payment method, and pick-up date and location."
	}

	seller := link.SellerDisplayName()

	content := fmt.Sprintf(`
        <h2>%s</h2>

        <p>
            <strong>Item:</strong> %s<br/>
            <strong>Offer Amount:</strong> $%s
        </p>

        <p>
            <strong>Buyer:</strong> %s<br/>
        </p>

        <p style="margin-top:15px;">%s %s your $%s offer for <strong>%s</strong>.</p>

        <p style="margin-top:15px;">%s</p>
    `,
		title,
		html.EscapeString(link.ItemName),
		formatted,
		html.EscapeString(link.BuyerDisplayName()),
		html.EscapeString(seller),
		decision.Verb(),
		formatted,
		html.EscapeString(link.ItemName),
		followUp,
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`%s

Item: %s
Offer Amount: $%s
Buyer: %s

%s %s your $%s offer for %s.

%s

%s`,
		title,
		link.ItemName,
		formatted,
		link.BuyerDisplayName(),
		seller,
		decision.Verb(),
		formatted,
		link.ItemName,
		followUp,
		t.footerText(),
	)

	return
}

// PurchaseReceipt generates the order confirmation sent to the seller.
func (t *Templates) PurchaseReceipt(r *models.Receipt, pickup time.Time, loc *time.Location) (subject, htmlBody, textBody string, err error) {
	if err = requireFields(TemplatePurchaseReceipt,
		[2]string{"itemName", r.ItemName},
		[2]string{"buyerEmail", r.BuyerEmail},
		[2]string{"sellerEmail", r.SellerEmail},
	); err != nil {
		return
	}

	price := r.Price.String()
	when := models.FormatPickupDate(pickup, loc)
	subject = fmt.Sprintf("New Order Received: %s", r.ItemName)

	content := fmt.Sprintf(`
        <h2>New Order Receipt</h2>
        <p><strong>Item:</strong> %s</p>
        <p><strong>Buyer:</strong> %s (%s)</p>
        <p><strong>Price:</strong> $%s</p>
        <p><strong>Pick-up Location:</strong> %s</p>
        <p><strong>Pick-up Date:</strong> %s</p>
    `,
		html.EscapeString(r.ItemName),
		html.EscapeString(r.BuyerName),
		html.EscapeString(r.BuyerEmail),
		price,
		html.EscapeString(r.PickupLocation),
		html.EscapeString(when),
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`New Order Receipt

Item: %s
Buyer: %s (%s)
Price: $%s
Pick-up Location: %s
Pick-up Date: %s

%s`,
		r.ItemName,
		r.BuyerName,
		r.BuyerEmail,
		price,
		r.PickupLocation,
		when,
		t.footerText(),
	)

	return
}
