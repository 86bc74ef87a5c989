package handlers

import (
	"context"

	"tigertrade/internal/models"
)

// OfferSender sends a new offer to the seller.
type OfferSender interface {
	SendOffer(ctx context.Context, offer *models.Offer) error
}

// OfferResponder tells the buyer what the seller decided.
type OfferResponder interface {
	SendOfferResponse(ctx context.Context, link models.DecisionLink, decision models.Decision, amount models.Amount) error
}

// ReceiptSender sends an order confirmation to the seller.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, receipt *models.Receipt) error
}
