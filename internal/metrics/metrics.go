package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSent    = "sent"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var (
	offersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigertrade_offers_submitted_total",
			Help: "Offer submissions by outcome",
		},
		[]string{"outcome"},
	)

	offerDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigertrade_offer_decisions_total",
			Help: "Decision link visits by decision and outcome",
		},
		[]string{"decision", "outcome"},
	)

	receiptsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigertrade_receipts_total",
			Help: "Purchase receipt requests by outcome",
		},
		[]string{"outcome"},
	)

	mailDispatch = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigertrade_mail_dispatch_total",
			Help: "Outbound emails by outcome",
		},
		[]string{"outcome"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with reg, or the default registry when reg is nil.
// Must be called once at startup; later calls are ignored.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		reg.MustRegister(offersSubmitted, offerDecisions, receiptsSent, mailDispatch)
	})
}

// RecordOfferSubmitted counts a POST /send-offer or offer form submission.
func RecordOfferSubmitted(outcome string) {
	offersSubmitted.WithLabelValues(outcome).Inc()
}

// RecordDecision counts a decision link visit. Unknown decisions are
// collapsed into "invalid" to keep label cardinality bounded.
func RecordDecision(decision, outcome string) {
	if decision != "accept" && decision != "decline" {
		decision = OutcomeInvalid
	}
	offerDecisions.WithLabelValues(decision, outcome).Inc()
}

// RecordReceipt counts a POST /send-receipt request.
func RecordReceipt(outcome string) {
	receiptsSent.WithLabelValues(outcome).Inc()
}

// RecordDispatch counts a single email handed to the transport.
func RecordDispatch(outcome string) {
	mailDispatch.WithLabelValues(outcome).Inc()
}
