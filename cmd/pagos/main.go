package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pagosclm/pagos-service/docs"
	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/application/services"
	"github.com/pagosclm/pagos-service/internal/config"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence/memory"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence/postgres"
	"github.com/pagosclm/pagos-service/internal/infrastructure/webpay"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest/handlers"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest/middleware"
)

type stores struct {
	payments      application.PaymentStore
	transactions  application.TransactionStore
	refunds       application.RefundStore
	users         application.UserStore
	notifications application.NotificationStore
}

// @title        Pagos Service API
// @version      2.0
// @description  Payment, transaction and refund lifecycle service backed by a stubbed Webpay gateway.
// @BasePath     /api/v2
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting pagos service",
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	st, cleanup, err := buildStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	webpayClient := webpay.NewClient()

	paymentService := services.NewPaymentService(st.payments, st.transactions, webpayClient, logger)
	refundService := services.NewRefundService(st.refunds, webpayClient, logger)
	transactionService := services.NewTransactionService(st.transactions, webpayClient)
	userService := services.NewUserService(st.users)
	notificationService := services.NewNotificationService(st.notifications)

	mux := http.NewServeMux()
	handlers.NewPaymentHandler(paymentService).RegisterRoutes(mux)
	handlers.NewRefundHandler(refundService).RegisterRoutes(mux)
	handlers.NewTransactionHandler(transactionService).RegisterRoutes(mux)
	handlers.NewUserHandler(userService).RegisterRoutes(mux)
	handlers.NewNotificationHandler(notificationService).RegisterRoutes(mux)
	handlers.RegisterDocsRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func buildStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (stores, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Info("using in-memory storage")
		return stores{
			payments:      memory.NewPaymentStore(),
			transactions:  memory.NewTransactionStore(),
			refunds:       memory.NewRefundStore(),
			users:         memory.NewUserStore(),
			notifications: memory.NewNotificationStore(),
		}, func() {}, nil
	}

	if err := persistence.Migrate(&cfg.Database, logger); err != nil {
		return stores{}, nil, err
	}

	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return stores{}, nil, err
	}

	return stores{
		payments:      postgres.NewPaymentRepository(db.Pool),
		transactions:  postgres.NewTransactionRepository(db.Pool),
		refunds:       postgres.NewRefundRepository(db.Pool),
		users:         postgres.NewUserRepository(db.Pool),
		notifications: postgres.NewNotificationRepository(db.Pool),
	}, db.Close, nil
}

func newLogger(cfg config.LoggerConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
