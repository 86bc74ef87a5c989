package handlers

import (
	"html"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tigertrade/internal/models"
	"tigertrade/internal/validation"
)

func deskLamp() *models.Offer {
	return &models.Offer{
		ItemName:    "Desk Lamp",
		BuyerEmail:  "b@x.edu",
		BuyerName:   "Bo",
		Amount:      20,
		SellerEmail: "s@x.edu",
	}
}

func TestResolveDecision(t *testing.T) {
	tests := []struct {
		name    string
		link    models.DecisionLink
		heading string
		class   string
		message string
		errMsg  string
	}{
		{
			name: "accept",
			link: models.DecisionLink{
				Decision: "accept", BuyerEmail: "b@x.edu", Amount: "20",
				ItemName: "Desk Lamp", SellerEmail: "s@x.edu",
			},
			heading: "Accepted",
			class:   "accept",
			message: `You have accepted the $20 offer for "Desk Lamp". The buyer has been notified.`,
		},
		{
			name: "decline with cents",
			link: models.DecisionLink{
				Decision: "decline", BuyerEmail: "b@x.edu", Amount: "12.5",
				ItemName: "Mug", SellerEmail: "s@x.edu",
			},
			heading: "Declined",
			class:   "decline",
			message: `You have declined the $12.50 offer for "Mug". The buyer has been notified.`,
		},
		{
			name:   "missing seller email",
			link:   models.DecisionLink{Decision: "accept", BuyerEmail: "b@x.edu", Amount: "20", ItemName: "Mug"},
			errMsg: validation.MsgMissingSellerEmail,
		},
		{
			name:   "missing buyer email",
			link:   models.DecisionLink{Decision: "accept", Amount: "20", ItemName: "Mug", SellerEmail: "s@x.edu"},
			errMsg: validation.MsgMissingLinkFields,
		},
		{
			name: "unknown decision",
			link: models.DecisionLink{
				Decision: "maybe", BuyerEmail: "b@x.edu", Amount: "20",
				ItemName: "Mug", SellerEmail: "s@x.edu",
			},
			errMsg: validation.MsgInvalidDecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveDecision(tt.link)
			if tt.errMsg != "" {
				ve, ok := validation.AsValidationError(err)
				require.True(t, ok, "expected a validation error, got %v", err)
				assert.Equal(t, tt.errMsg, ve.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.heading, res.Page.Heading)
			assert.Equal(t, tt.class, res.Page.Class)
			assert.Equal(t, tt.message, res.Page.Message)
		})
	}
}

func TestRespond_DeskLampAccepted(t *testing.T) {
	app, mailer, notifier := newTestApp(t)

	acceptURL, declineURL := notifier.DecisionURLs(deskLamp())
	for _, u := range []string{acceptURL, declineURL} {
		assert.Contains(t, u, "amount=20")
		assert.Contains(t, u, "itemName=Desk%20Lamp")
	}

	status, body := get(t, app, pathAndQuery(t, acceptURL))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<title>Offer Accepted</title>")
	assert.Contains(t, html.UnescapeString(body), `You have accepted the $20 offer for "Desk Lamp".`)
	assert.Contains(t, body, `class="accept"`)

	require.Equal(t, 1, mailer.Count())
	sent := mailer.Last()
	assert.Equal(t, "b@x.edu", sent.To)
	assert.Equal(t, "s@x.edu", sent.ReplyTo)
	assert.Equal(t, "Offer Update: Desk Lamp", sent.Subject)
	assert.Contains(t, sent.HTML, "accepted")
	assert.Contains(t, sent.HTML, "$20")
}

func TestRespond_Declined(t *testing.T) {
	app, mailer, notifier := newTestApp(t)

	_, declineURL := notifier.DecisionURLs(deskLamp())
	status, body := get(t, app, pathAndQuery(t, declineURL))

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Offer Declined")
	assert.Contains(t, body, `class="decline"`)
	require.Equal(t, 1, mailer.Count())
	assert.Contains(t, mailer.Last().HTML, "Declined")
}

func TestRespond_RevisitSendsAgain(t *testing.T) {
	app, mailer, notifier := newTestApp(t)

	acceptURL, _ := notifier.DecisionURLs(deskLamp())
	target := pathAndQuery(t, acceptURL)

	_, first := get(t, app, target)
	_, second := get(t, app, target)

	assert.Equal(t, first, second)
	require.Equal(t, 2, mailer.Count())
	emails := mailer.Emails()
	assert.Equal(t, emails[0].HTML, emails[1].HTML)
}

func TestRespond_BadRequests(t *testing.T) {
	app, mailer, _ := newTestApp(t)

	tests := []struct {
		name  string
		query string
		body  string
	}{
		{
			name:  "empty query",
			query: "",
			body:  validation.MsgMissingLinkFields,
		},
		{
			name:  "missing buyer email",
			query: "decision=accept&amount=20&itemName=Mug&sellerEmail=s%40x.edu",
			body:  validation.MsgMissingLinkFields,
		},
		{
			name:  "missing seller email",
			query: "decision=accept&buyerEmail=b%40x.edu&amount=20&itemName=Mug",
			body:  validation.MsgMissingSellerEmail,
		},
		{
			name:  "unknown decision",
			query: "decision=maybe&buyerEmail=b%40x.edu&amount=20&itemName=Mug&sellerEmail=s%40x.edu",
			body:  validation.MsgInvalidDecision,
		},
		{
			name:  "bad amount",
			query: "decision=accept&buyerEmail=b%40x.edu&amount=lots&itemName=Mug&sellerEmail=s%40x.edu",
			body:  validation.MsgInvalidLinkAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, "/respond-offer?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.body, body)
		})
	}

	assert.Zero(t, mailer.Count())
}

func TestRespond_DispatchFailureHidesDetail(t *testing.T) {
	app, mailer, notifier := newTestApp(t)
	mailer.Err = errSMTPDown

	acceptURL, _ := notifier.DecisionURLs(deskLamp())
	status, body := get(t, app, pathAndQuery(t, acceptURL))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, MsgProcessingError, body)
	assert.NotContains(t, body, "connection refused")
}
