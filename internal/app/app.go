package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Fleexa-Graduation-Project/relief-button/internal/clicks"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/config"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/devices"
	"github.com/Fleexa-Graduation-Project/relief-button/internal/notifications"
	"github.com/Fleexa-Graduation-Project/relief-button/pkg/db"
	"github.com/Fleexa-Graduation-Project/relief-button/pkg/messaging"
)

// NewClickService connects to AWS and assembles the click handler.
func NewClickService(ctx context.Context, cfg config.Config, log *slog.Logger) (*clicks.Service, error) {
	if err := db.NewDynamoDBClient(ctx, cfg.Region); err != nil {
		return nil, fmt.Errorf("failed to init dynamodb: %w", err)
	}

	if err := messaging.NewSNSClient(ctx, cfg.Region); err != nil {
		return nil, fmt.Errorf("failed to init sns: %w", err)
	}

	return Assemble(cfg, log, db.Client, messaging.Client)
}

// Assemble builds the service on top of already connected clients.
func Assemble(cfg config.Config, log *slog.Logger, dynamo devices.DynamoDBAPI, sns notifications.SNSAPI) (*clicks.Service, error) {
	registrations, err := devices.NewRegistrationStore(dynamo, cfg.RegistrationTable)
	if err != nil {
		return nil, fmt.Errorf("failed to init registration store: %w", err)
	}

	states, err := devices.NewStateStore(dynamo, cfg.StateTable)
	if err != nil {
		return nil, fmt.Errorf("failed to init device state store: %w", err)
	}

	publisher, err := notifications.NewPublisher(sns, cfg.TopicARN)
	if err != nil {
		return nil, fmt.Errorf("failed to init notification publisher: %w", err)
	}

	return &clicks.Service{
		Logger: log,
		Settings: clicks.Settings{
			ClickType:            cfg.ClickType,
			State:                cfg.State,
			Message:              cfg.Message,
			SuppressRepeatNotify: cfg.SuppressRepeatNotify,
		},
		Registrations: registrations,
		States:        states,
		Notifier:      publisher,
	}, nil
}
