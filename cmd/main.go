/*
Package main is the entry point for the U Fresher server.

It is responsible for loading configuration, initializing the global logging system,
opening the local storage backend, starting the chat room manager, setting up the
HTTP server, and gracefully handling operating system interrupt signals (SIGINT, SIGTERM)
to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ufresher/internal/app/actions"
	"ufresher/internal/app/chat"
	"ufresher/internal/app/localstore"
	"ufresher/internal/configs"
	"ufresher/internal/handler"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/pow"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Int("pow_difficulty", cfg.PowDifficulty).
		Str("storage_backend", cfg.StorageBackend).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := localstore.Open(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to open local storage", "backend", cfg.StorageBackend)
	}
	defer closeStorage()

	manager := chat.NewManager(chat.RoomInactivityTimeout)
	powManager := pow.NewManager(cfg.PowDifficulty)
	defer powManager.Stop()

	router := handler.Router(&handler.AppDeps{
		Config:  cfg,
		Storage: storage,
		Manager: manager,
		Actions: actions.NewService(),
		Pow:     powManager,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("U Fresher server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	manager.Shutdown()

	logx.Info("Server gracefully stopped.")
}
