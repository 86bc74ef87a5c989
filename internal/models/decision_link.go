package models

import (
	"net/url"
	"strings"
)

// Query parameter names of a decision link.
const (
	ParamDecision    = "decision"
	ParamBuyerEmail  = "buyerEmail"
	ParamBuyerName   = "buyerName"
	ParamAmount      = "amount"
	ParamItemName    = "itemName"
	ParamPostID      = "postId"
	ParamSellerEmail = "sellerEmail"
	ParamSellerName  = "sellerName"
)

// DecisionLink is everything the respond-offer endpoint needs to resolve an
// offer. The same struct is encoded into the emailed URL and parsed back from
// the request, so both sides agree on the field set.
type DecisionLink struct {
	Decision    string
	BuyerEmail  string
	BuyerName   string
	Amount      string
	ItemName    string
	PostID      string
	SellerEmail string
	SellerName  string
}

// NewDecisionLinks builds the accept and decline links for an offer. The
// amount is embedded in display form.
func NewDecisionLinks(o *Offer) (accept, decline DecisionLink) {
	base := DecisionLink{
		BuyerEmail:  o.BuyerEmail,
		BuyerName:   o.BuyerName,
		Amount:      o.Amount.String(),
		ItemName:    o.ItemName,
		PostID:      o.PostID,
		SellerEmail: o.SellerEmail,
		SellerName:  o.SellerName,
	}
	accept, decline = base, base
	accept.Decision = string(DecisionAccept)
	decline.Decision = string(DecisionDecline)
	return accept, decline
}

// URL encodes the link against base, e.g. https://host/respond-offer.
// Parameter order is fixed; sellerName is only appended when set.
func (l DecisionLink) URL(base string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('?')
	b.WriteString(l.Query())
	return b.String()
}

// Query returns the encoded query string without the leading '?'.
func (l DecisionLink) Query() string {
	pairs := [][2]string{
		{ParamDecision, l.Decision},
		{ParamBuyerEmail, l.BuyerEmail},
		{ParamBuyerName, l.BuyerName},
		{ParamAmount, l.Amount},
		{ParamItemName, l.ItemName},
		{ParamPostID, l.PostID},
		{ParamSellerEmail, l.SellerEmail},
	}
	if l.SellerName != "" {
		pairs = append(pairs, [2]string{ParamSellerName, l.SellerName})
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(EscapeComponent(p[1]))
	}
	return b.String()
}

// EscapeComponent percent-encodes a query value with spaces as %20, matching
// what mail clients and browsers emit for encodeURIComponent-style links.
func EscapeComponent(s string) string {
	// QueryEscape turns a literal '+' into %2B, so any '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ParseDecisionLink decodes a raw query string. It does not validate.
func ParseDecisionLink(rawQuery string) (DecisionLink, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return DecisionLink{}, err
	}
	return DecisionLinkFromValues(values), nil
}

// DecisionLinkFromValues reads a link from already-decoded query values.
func DecisionLinkFromValues(v url.Values) DecisionLink {
	return DecisionLink{
		Decision:    v.Get(ParamDecision),
		BuyerEmail:  v.Get(ParamBuyerEmail),
		BuyerName:   v.Get(ParamBuyerName),
		Amount:      v.Get(ParamAmount),
		ItemName:    v.Get(ParamItemName),
		PostID:      v.Get(ParamPostID),
		SellerEmail: v.Get(ParamSellerEmail),
		SellerName:  v.Get(ParamSellerName),
	}
}

// BuyerDisplayName returns the buyer name or "Buyer".
func (l DecisionLink) BuyerDisplayName() string {
	return displayName(l.BuyerName, DefaultBuyerName)
}

// SellerDisplayName returns the seller name or "The seller".
func (l DecisionLink) SellerDisplayName() string {
	return displayName(l.SellerName, DefaultSellerName)
}
