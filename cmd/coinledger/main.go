package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/coinledger/internal/application/services"
	"github.com/DanielPopoola/coinledger/internal/clock"
	"github.com/DanielPopoola/coinledger/internal/config"
	"github.com/DanielPopoola/coinledger/internal/infrastructure/exchange"
	"github.com/DanielPopoola/coinledger/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/coinledger/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/coinledger/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting coinledger service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	purchaseRepo := postgres.NewPurchaseRepository(db, clock.System)

	signer := exchange.NewSigner(cfg.Exchange, clock.System)
	exchangeClient := exchange.NewClient(cfg.Exchange, signer, exchange.WithLogger(logger))

	purchaseService := services.NewPurchaseService(purchaseRepo, logger)
	exchangeService := services.NewExchangeService(exchangeClient, logger)

	h := handlers.NewHandlers(purchaseService, exchangeService, logger)
	router := h.Routes(cfg.Server.StaticDir)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
