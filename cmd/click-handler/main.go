package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Fleexa-Graduation-Project/relief-button/internal/app"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/clicks"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/config"
	"github.com/Fleexa-Graduation-Project/relief-button/pkg/logger"
)

var (
	log     *slog.Logger
	service *clicks.Service
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	log = logger.InitLogger(cfg.LogLevel, cfg.LogFormat)
	log.Info("Click Handler: Cold Start", "click_type", cfg.ClickType)

	service, err = app.NewClickService(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to initialize click handler", "error", err)
		panic(err)
	}
}

func main() {
	lambda.Start(service.HandleRequest)
}
