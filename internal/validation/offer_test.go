package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tigertrade/internal/models"
)

func validOffer() *models.Offer {
	return &models.Offer{
		ItemName:    "Desk Lamp",
		BuyerEmail:  "b@x.edu",
		BuyerName:   "Bo",
		Amount:      20,
		SellerEmail: "s@x.edu",
	}
}

func TestValidateOffer(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(o *models.Offer)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(o *models.Offer) {}},
		{name: "missing item", mutate: func(o *models.Offer) { o.ItemName = "" }, wantField: "itemName", wantMsg: MsgMissingOfferFields},
		{name: "blank item", mutate: func(o *models.Offer) { o.ItemName = "   " }, wantField: "itemName", wantMsg: MsgMissingOfferFields},
		{name: "missing buyer email", mutate: func(o *models.Offer) { o.BuyerEmail = "" }, wantField: "buyerEmail", wantMsg: MsgMissingOfferFields},
		{name: "missing buyer name", mutate: func(o *models.Offer) { o.BuyerName = "" }, wantField: "buyerName", wantMsg: MsgMissingOfferFields},
		{name: "missing amount", mutate: func(o *models.Offer) { o.Amount = 0 }, wantField: "amount", wantMsg: MsgMissingOfferFields},
		{name: "negative amount", mutate: func(o *models.Offer) { o.Amount = -4 }, wantField: "amount", wantMsg: MsgInvalidAmount},
		{name: "amount below half a cent", mutate: func(o *models.Offer) { o.Amount = 0.004 }, wantField: "amount", wantMsg: MsgInvalidAmount},
		{name: "missing seller email", mutate: func(o *models.Offer) { o.SellerEmail = "" }, wantField: "sellerEmail", wantMsg: MsgMissingOfferFields},
		{name: "bad buyer email", mutate: func(o *models.Offer) { o.BuyerEmail = "bo" }, wantField: "buyerEmail", wantMsg: MsgInvalidEmail},
		{name: "bad seller email", mutate: func(o *models.Offer) { o.SellerEmail = "x@" }, wantField: "sellerEmail", wantMsg: MsgInvalidEmail},
		{name: "optional fields absent", mutate: func(o *models.Offer) { o.Note, o.SellerName, o.PostID = "", "", "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOffer()
			tt.mutate(o)

			err := ValidateOffer(o)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

func validLink() models.DecisionLink {
	return models.DecisionLink{
		Decision:    "accept",
		BuyerEmail:  "b@x.edu",
		BuyerName:   "Bo",
		Amount:      "20",
		ItemName:    "Desk Lamp",
		SellerEmail: "s@x.edu",
	}
}

func TestValidateDecisionLink(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *models.DecisionLink)
		wantMsg string
	}{
		{name: "valid", mutate: func(l *models.DecisionLink) {}},
		{name: "missing decision", mutate: func(l *models.DecisionLink) { l.Decision = "" }, wantMsg: MsgMissingLinkFields},
		{name: "missing buyer email", mutate: func(l *models.DecisionLink) { l.BuyerEmail = "" }, wantMsg: MsgMissingLinkFields},
		{name: "missing amount", mutate: func(l *models.DecisionLink) { l.Amount = "" }, wantMsg: MsgMissingLinkFields},
		{name: "missing item", mutate: func(l *models.DecisionLink) { l.ItemName = "" }, wantMsg: MsgMissingLinkFields},
		{name: "missing seller email", mutate: func(l *models.DecisionLink) { l.SellerEmail = "" }, wantMsg: MsgMissingSellerEmail},
		{name: "generic check wins over seller email", mutate: func(l *models.DecisionLink) { l.SellerEmail, l.ItemName = "", "" }, wantMsg: MsgMissingLinkFields},
		{name: "unknown decision", mutate: func(l *models.DecisionLink) { l.Decision = "maybe" }, wantMsg: MsgInvalidDecision},
		{name: "bad amount", mutate: func(l *models.DecisionLink) { l.Amount = "twenty" }, wantMsg: MsgInvalidLinkAmount},
		{name: "zero amount", mutate: func(l *models.DecisionLink) { l.Amount = "0" }, wantMsg: MsgInvalidLinkAmount},
		{name: "buyer name optional", mutate: func(l *models.DecisionLink) { l.BuyerName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLink()
			tt.mutate(&l)

			decision, amount, err := ValidateDecisionLink(l)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, models.DecisionAccept, decision)
				assert.Equal(t, models.Amount(20), amount)
				return
			}

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

// Every accepted offer must produce links the decision endpoint accepts.
func TestValidateOffer_LinksResolve(t *testing.T) {
	for _, amount := range []models.Amount{0.004, 0.005, 0.01, 12.345, 20} {
		t.Run(amount.String(), func(t *testing.T) {
			o := validOffer()
			o.Amount = amount
			offerErr := ValidateOffer(o)

			accept, _ := models.NewDecisionLinks(o)
			_, _, linkErr := ValidateDecisionLink(accept)

			assert.Equal(t, offerErr == nil, linkErr == nil, "offer err %v, link err %v", offerErr, linkErr)
		})
	}
}

func TestValidateDecisionLink_SellerMessageIsDistinct(t *testing.T) {
	assert.NotEqual(t, MsgMissingLinkFields, MsgMissingSellerEmail)
}

func TestValidateReceipt(t *testing.T) {
	valid := func() *models.Receipt {
		return &models.Receipt{
			ItemName:       "Mini Fridge",
			BuyerName:      "Bo",
			BuyerEmail:     "b@x.edu",
			Price:          45,
			PickupLocation: "Student Union",
			PickupDate:     "2025-04-18T15:30:00.000Z",
			SellerEmail:    "s@x.edu",
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *models.Receipt)
		wantMsg string
	}{
		{name: "valid", mutate: func(r *models.Receipt) {}},
		{name: "missing location", mutate: func(r *models.Receipt) { r.PickupLocation = "" }, wantMsg: MsgMissingReceiptFields},
		{name: "missing price", mutate: func(r *models.Receipt) { r.Price = 0 }, wantMsg: MsgMissingReceiptFields},
		{name: "negative price", mutate: func(r *models.Receipt) { r.Price = -1 }, wantMsg: MsgInvalidPrice},
		{name: "price below half a cent", mutate: func(r *models.Receipt) { r.Price = 0.001 }, wantMsg: MsgInvalidPrice},
		{name: "bad date", mutate: func(r *models.Receipt) { r.PickupDate = "tomorrow" }, wantMsg: MsgInvalidPickupDate},
		{name: "bad seller email", mutate: func(r *models.Receipt) { r.SellerEmail = "seller" }, wantMsg: MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)

			err := ValidateReceipt(r)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}
