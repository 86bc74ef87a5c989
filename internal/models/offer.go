package models

import (
	"errors"
	"strings"
)

// Decision is the seller's answer to an offer.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// ErrInvalidDecision is returned for any decision other than accept or decline.
var ErrInvalidDecision = errors.New("decision must be accept or decline")

// ParseDecision converts a raw link value into a Decision.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionAccept, DecisionDecline:
		return Decision(s), nil
	default:
		return "", ErrInvalidDecision
	}
}

// Accepted returns true if the seller accepted the offer.
func (d Decision) Accepted() bool {
	return d == DecisionAccept
}

// Title returns "Accepted" or "Declined".
func (d Decision) Title() string {
	if d.Accepted() {
		return "Accepted"
	}
	return "Declined"
}

// Verb returns "accepted" or "declined".
func (d Decision) Verb() string {
	return strings.ToLower(d.Title())
}

// Display defaults for optional names.
const (
	DefaultBuyerName    = "Buyer"
	DefaultUnknownBuyer = "Unknown Buyer"
	DefaultSellerName   = "The seller"
)

// Offer is a buyer-proposed price for a listing. It only exists in transit.
type Offer struct {
	ItemName    string `json:"itemName"`
	PostID      string `json:"postId,omitempty"`
	BuyerEmail  string `json:"buyerEmail"`
	BuyerName   string `json:"buyerName"`
	Amount      Amount `json:"amount"`
	Note        string `json:"note,omitempty"`
	SellerEmail string `json:"sellerEmail"`
	SellerName  string `json:"sellerName,omitempty"`
}

// BuyerDisplayName returns the buyer name or "Unknown Buyer".
func (o *Offer) BuyerDisplayName() string {
	return displayName(o.BuyerName, DefaultUnknownBuyer)
}

// SellerDisplayName returns the seller name or "The seller".
func (o *Offer) SellerDisplayName() string {
	return displayName(o.SellerName, DefaultSellerName)
}

func displayName(name, fallback string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return fallback
}
