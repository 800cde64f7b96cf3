package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront-labs/checkout-svc/internal/dal/postgres"
	"github.com/storefront-labs/checkout-svc/internal/dal/rabbitmq"
	"github.com/storefront-labs/checkout-svc/internal/dal/repositories/audit"
	outboxrepo "github.com/storefront-labs/checkout-svc/internal/dal/repositories/outbox/postgres"
	"github.com/storefront-labs/checkout-svc/internal/identity"
	"github.com/storefront-labs/checkout-svc/internal/otel"
	stripeprovider "github.com/storefront-labs/checkout-svc/internal/payment/stripe"
	"github.com/storefront-labs/checkout-svc/internal/service/services/checkoutsvc"
	"github.com/storefront-labs/checkout-svc/internal/service/services/ordersvc"
	httptransport "github.com/storefront-labs/checkout-svc/internal/transport/http"
	outboxworker "github.com/storefront-labs/checkout-svc/internal/worker/outbox"
)

// App represents the application.
type App struct {
	checkoutSvc    *checkoutsvc.CheckoutService
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	outboxWorker   *outboxworker.Worker
	postgresClient *postgres.Client
	rabbitMqClient *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()
	postgresClient := postgres.MustNewClient()
	rabbitMqClient := rabbitmq.MustNewClient()

	outboxRepository := outboxrepo.NewOutboxRepository(postgresClient)
	auditRepository := audit.NewAuditRabbitMQRepository(rabbitMqClient, outboxRepository)

	checkoutSvc := checkoutsvc.MustNewCheckoutService(
		checkoutsvc.WithPostgresClient(postgresClient),
		checkoutsvc.WithPaymentProvider(stripeprovider.MustNewProvider()),
		checkoutsvc.WithAuditLogger(auditRepository),
	)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(postgresClient),
	)

	transport := httptransport.NewHTTPTransport(
		checkoutSvc,
		orderSvc,
		identity.NewHeaderResolver(),
	)
	transport.RegisterRoutes()

	outboxWorker := outboxworker.NewWorker(outboxRepository, rabbitMqClient)

	return &App{
		checkoutSvc:    checkoutSvc,
		orderSvc:       orderSvc,
		transport:      transport,
		outboxWorker:   outboxWorker,
		postgresClient: postgresClient,
		rabbitMqClient: rabbitMqClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	go func() {
		slog.Info("Starting outbox worker")
		a.outboxWorker.Start(ctx)
	}()

	<-stop
	slog.Info("Shutdown signal received")
	cancel()

	a.gracefulShutdown()
}

// gracefulShutdown stops components sequentially: outbox worker, HTTP server,
// RabbitMQ, PostgreSQL, and OpenTelemetry.
func (a *App) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.outboxWorker.Stop()
	slog.Info("Outbox worker stopped gracefully")

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.rabbitMqClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Otel trace provider connection close error", "error", err)
	} else {
		slog.Info("Otel trace provider connection closed gracefully")
	}

	slog.Info("Application shutdown complete")
}
