package models

import (
	"time"
)

// PickupDateLayout is the human form of a pickup timestamp.
const PickupDateLayout = "Mon, Jan 2, 2006 at 3:04 PM"

// Receipt is an order confirmation sent to the seller after checkout.
type Receipt struct {
	ItemName       string `json:"itemName"`
	BuyerName      string `json:"buyerName"`
	BuyerEmail     string `json:"buyerEmail"`
	Price          Amount `json:"price"`
	PickupLocation string `json:"pickupLocation"`
	PickupDate     string `json:"pickupDate"`
	SellerEmail    string `json:"sellerEmail"`
}

// PickupTime parses PickupDate, which the client sends as an ISO-8601 timestamp.
func (r *Receipt) PickupTime() (time.Time, error) {
	return time.Parse(time.RFC3339, r.PickupDate)
}

// FormatPickupDate renders t in loc. A nil loc means UTC.
func FormatPickupDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(PickupDateLayout)
}
