package validation

import (
	"errors"
	"fmt"
)

// Client-facing validation messages.
const (
	MsgMissingOfferFields   = "Missing required fields for offer"
	MsgInvalidAmount        = "Offer amount must be a positive number"
	MsgMissingLinkFields    = "Missing required fields in the link."
	MsgMissingSellerEmail   = "Seller email missing from link; cannot continue."
	MsgInvalidDecision      = "Invalid decision in the link."
	MsgInvalidLinkAmount    = "Invalid offer amount in the link."
	MsgMissingReceiptFields = "Missing required fields"
	MsgInvalidPrice         = "Price must be a positive number"
	MsgInvalidPickupDate    = "Pickup date must be an ISO-8601 timestamp"
	MsgInvalidEmail         = "Invalid email address"
)

// ValidationError is a rejected request field. Message is safe to show to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
