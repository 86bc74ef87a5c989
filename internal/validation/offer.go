package validation

import (
	"tigertrade/internal/models"
)

// ValidateOffer checks a submitted offer before anything is sent.
func ValidateOffer(o *models.Offer) error {
	switch {
	case blank(o.ItemName):
		return newError(models.ParamItemName, MsgMissingOfferFields)
	case blank(o.BuyerEmail):
		return newError(models.ParamBuyerEmail, MsgMissingOfferFields)
	case blank(o.BuyerName):
		return newError(models.ParamBuyerName, MsgMissingOfferFields)
	case o.Amount == 0:
		return newError(models.ParamAmount, MsgMissingOfferFields)
	case blank(o.SellerEmail):
		return newError(models.ParamSellerEmail, MsgMissingOfferFields)
	}

	if !o.Amount.Displayable() {
		return newError(models.ParamAmount, MsgInvalidAmount)
	}
	if !ValidateEmail(o.BuyerEmail) {
		return newError(models.ParamBuyerEmail, MsgInvalidEmail)
	}
	if !ValidateEmail(o.SellerEmail) {
		return newError(models.ParamSellerEmail, MsgInvalidEmail)
	}
	return nil
}

// ValidateDecisionLink checks a parsed decision link and returns the typed
// decision and the amount re-parsed from its raw string. The generic
// missing-field check runs before the seller email check so that the two
// produce distinct messages.
func ValidateDecisionLink(l models.DecisionLink) (models.Decision, models.Amount, error) {
	switch {
	case blank(l.Decision):
		return "", 0, newError(models.ParamDecision, MsgMissingLinkFields)
	case blank(l.BuyerEmail):
		return "", 0, newError(models.ParamBuyerEmail, MsgMissingLinkFields)
	case blank(l.Amount):
		return "", 0, newError(models.ParamAmount, MsgMissingLinkFields)
	case blank(l.ItemName):
		return "", 0, newError(models.ParamItemName, MsgMissingLinkFields)
	}

	if blank(l.SellerEmail) {
		return "", 0, newError(models.ParamSellerEmail, MsgMissingSellerEmail)
	}

	decision, err := models.ParseDecision(l.Decision)
	if err != nil {
		return "", 0, newError(models.ParamDecision, MsgInvalidDecision)
	}

	amount, err := models.ParseAmount(l.Amount)
	if err != nil {
		return "", 0, newError(models.ParamAmount, MsgInvalidLinkAmount)
	}

	return decision, amount, nil
}

// ValidateReceipt checks an order confirmation request.
func ValidateReceipt(r *models.Receipt) error {
	if blank(r.ItemName) || blank(r.BuyerName) || blank(r.BuyerEmail) ||
		r.Price == 0 || blank(r.PickupLocation) || blank(r.PickupDate) || blank(r.SellerEmail) {
		return newError("", MsgMissingReceiptFields)
	}
	if !r.Price.Displayable() {
		return newError("price", MsgInvalidPrice)
	}
	if _, err := r.PickupTime(); err != nil {
		return newError("pickupDate", MsgInvalidPickupDate)
	}
	if !ValidateEmail(r.BuyerEmail) {
		return newError("buyerEmail", MsgInvalidEmail)
	}
	if !ValidateEmail(r.SellerEmail) {
		return newError("sellerEmail", MsgInvalidEmail)
	}
	return nil
}
