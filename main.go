package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-bank-console/bank"
	"go-bank-console/config"
	"go-bank-console/console"
	"go-bank-console/handler"
	"go-bank-console/storage"
)

func main() {
	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := cfg.Logger(os.Stderr)

	registry := bank.NewRegistry(cfg.Policy)
	store := storage.NewMemoryStore(registry, logger)
	logger.Info("bank session started",
		"mode", cfg.Mode,
		"branch", cfg.Policy.Branch,
		"withdrawal_limit", cfg.Policy.WithdrawalLimit.String(),
		"max_withdrawals", cfg.Policy.MaxWithdrawals,
		"window", cfg.Policy.Window,
		"allow_overdraft", cfg.Policy.AllowOverdraft,
	)

	if cfg.Mode == config.ModeConsole {
		if err := console.New(store, os.Stdin, os.Stdout, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("console stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewRouter(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ListenAndServe error", "error", err)
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("shutting down server")

	// Create a context for shutdown with a timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server gracefully stopped")
}
