package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"tigertrade/internal/config"
	"tigertrade/internal/email"
	"tigertrade/internal/jobs"
	"tigertrade/internal/logger"
	"tigertrade/internal/metrics"
	"tigertrade/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	yamlCfg.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	slog.SetDefault(logger.New(cfg))
	defer logger.Flush(2 * time.Second)

	metrics.Init(nil)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Fatalf("Failed to create mail sender: %v", err)
	}
	gateway := email.NewGateway(cfg, sender)
	notifier := email.NewNotifier(cfg, gateway)

	// Transport checks run in the background; a broken mailbox never
	// prevents the server from starting.
	mailReady := new(atomic.Bool)
	go func() {
		mailReady.Store(gateway.VerifyOnStartup(ctx))
		if cfg.MailCheckInterval > 0 {
			jobs.NewMailChecker(gateway, cfg.MailCheckInterval, mailReady).Start(ctx)
		}
	}()

	srv := server.New(cfg)
	srv.RegisterRoutes(notifier, mailReady)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return
	}
	slog.Info("server exited")
}
