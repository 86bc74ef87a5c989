package server

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tigertrade/internal/config"
	"tigertrade/internal/email"
	"tigertrade/internal/handlers"
	"tigertrade/internal/handlers/api"
	"tigertrade/internal/middleware"
)

// RegisterRoutes registers all application routes. mailReady is reported
// by the health endpoint.
func (s *Server) RegisterRoutes(notifier *email.Notifier, mailReady *atomic.Bool) {
	// Initialize handlers
	offerHandler := api.NewOfferHandler(notifier)
	receiptHandler := api.NewReceiptHandler(notifier)
	healthHandler := api.NewHealthHandler(mailReady)
	respondHandler := handlers.NewRespondHandler(notifier)
	formHandler := handlers.NewOfferFormHandler(notifier, s.Cfg)

	// JSON API used by the web client
	s.App.Post("/send-offer", middleware.RequireJSON, offerHandler.Send)
	s.App.Post("/send-receipt", middleware.RequireJSON, receiptHandler.Send)

	// Decision links emailed to sellers
	s.App.Get(config.RespondPath, middleware.NoStore, respondHandler.Respond)

	// Server-rendered offer form
	s.App.Get("/offers/new", formHandler.New)
	s.App.Post("/offers/new", formHandler.Create)

	// Operations
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
