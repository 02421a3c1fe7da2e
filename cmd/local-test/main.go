package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fleexa-Graduation-Project/relief-button/internal/app"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/config"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/localapi"
	"github.com/Fleexa-Graduation-Project/relief-button/pkg/logger"
)

// Runs the click handler behind POST /click against real AWS resources
// (or whatever AWS_ENDPOINT_URL points at).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service, err := app.NewClickService(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize click handler", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           localapi.New(service, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	}()

	log.Info("Server running", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
