package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cybersoft-az/contact-api/internal/api"
	"github.com/cybersoft-az/contact-api/internal/config"
	"github.com/cybersoft-az/contact-api/internal/delivery"
	"github.com/cybersoft-az/contact-api/internal/logger"
	"github.com/cybersoft-az/contact-api/internal/provider"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewFromConfig(logger.Config{
		Level:     cfg.Logging.Level,
		Output:    cfg.Logging.Output,
		FilePath:  cfg.Logging.FilePath,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	})
	log.Info().Msg("starting contact API server")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Build the delivery pipeline: Resend provider behind a timeout-bound
	// HTTP client, wrapped in the delivery service.
	httpClient := provider.NewHTTPClient(cfg.Mail.Timeout)
	resend := provider.NewResend(provider.ResendConfig{
		APIKey:   cfg.Mail.APIKey,
		Endpoint: cfg.Mail.Endpoint,
	}, httpClient)
	deliverySvc := delivery.NewService(resend, cfg.Mail.From, cfg.Mail.To, log)

	// Build router
	router := api.NewRouter(api.RouterConfig{
		ContactPath:    cfg.API.ContactPath,
		AllowedOrigins: cfg.CORS.Origins(),
		Delivery:       deliverySvc,
		Log:            log,
	})

	// Configure HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Str("contact_path", cfg.API.ContactPath).Msg("contact API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down server")

	// Graceful shutdown with 30-second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
