package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prophetsmedicine/clinic-platform/internal/admin"
	"github.com/prophetsmedicine/clinic-platform/internal/api/router"
	"github.com/prophetsmedicine/clinic-platform/internal/assistant"
	"github.com/prophetsmedicine/clinic-platform/internal/awsconfig"
	"github.com/prophetsmedicine/clinic-platform/internal/booking"
	"github.com/prophetsmedicine/clinic-platform/internal/catalog"
	appconfig "github.com/prophetsmedicine/clinic-platform/internal/config"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/internal/inquiries"
	"github.com/prophetsmedicine/clinic-platform/internal/notify"
	"github.com/prophetsmedicine/clinic-platform/internal/observability/metrics"
	"github.com/prophetsmedicine/clinic-platform/internal/realtime"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

func main() {
	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinic-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Document store
	var store docstore.Store
	var sesClient *sesv2.Client
	if cfg.UseMemoryStore {
		logger.Info("using in-memory document store")
		store = docstore.NewMemoryStore()
	} else {
		awsCfg, err := awsconfig.Load(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		store = docstore.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.DocumentsTable, logger)
		sesClient = sesv2.NewFromConfig(awsCfg)
	}

	// Email
	var sender notify.EmailSender
	switch cfg.EmailProvider {
	case "sendgrid":
		sender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	case "ses":
		sender = notify.NewSESSender(sesClient, notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
	}
	if sender == nil {
		logger.Info("email provider not configured, using simulated sender")
		sender = notify.NewSimulatedSender(logger)
		cfg.EmailProvider = "simulated"
	}
	dispatcher := notify.NewDispatcher(sender, cfg.EmailProvider, logger, m)

	// Domain services
	catalogService := catalog.NewService(store, logger)
	inquiryService := inquiries.NewService(store, logger, m)
	gateway := booking.NewGateway(store, logger, m)
	sessions := booking.NewSessionStore(cfg.WizardSessionTTL)
	console := admin.NewConsole(store, catalogService, inquiryService, dispatcher, logger)

	// Assistant is optional; without an API key the endpoint is absent.
	var assistantHandler *assistant.Handler
	if cfg.GeminiAPIKey != "" {
		generator, err := assistant.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to initialize assistant", "error", err)
			os.Exit(1)
		}
		defer generator.Close()
		assistantHandler = assistant.NewHandler(assistant.New(generator, catalogService, logger, m), logger)
	} else {
		logger.Info("assistant disabled, no Gemini API key configured")
	}

	// Expired wizard sessions are swept in the background.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := sessions.Sweep(); removed > 0 {
					logger.Debug("swept expired wizard sessions", "removed", removed)
				}
			case <-sweepCtx.Done():
				return
			}
		}
	}()

	// Setup router
	r := router.New(&router.Config{
		Logger:             logger,
		CatalogHandler:     catalog.NewHandler(catalogService, logger),
		BookingHandler:     booking.NewHandler(sessions, catalogService, gateway, logger),
		InquiryHandler:     inquiries.NewHandler(inquiryService, logger),
		AssistantHandler:   assistantHandler,
		AdminHandler:       admin.NewHandler(console, admin.NewStaticVerifier(cfg.AdminSecret), admin.NewTokenIssuer(cfg.AdminJWTSecret, cfg.AdminSessionTTL), logger),
		RealtimeHandler:    realtime.NewHandler(console, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AdminJWTSecret:     cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
