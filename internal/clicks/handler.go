package clicks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/Fleexa-Graduation-Project/relief-button/internal/validation"
	"github.com/Fleexa-Graduation-Project/relief-button/models"
)

var (
	ErrLookup     = errors.New("registration lookup failed")
	ErrStateWrite = errors.New("device state write failed")
	ErrNotify     = errors.New("notification failed")
)

type RegistrationStore interface {
	Get(ctx context.Context, deviceID string) (*models.DeviceRegistration, error)
}

type StateStore interface {
	Put(ctx context.Context, state models.DeviceState) (previous string, err error)
}

type Notifier interface {
	Publish(ctx context.Context, message string) (messageID string, err error)
}

// Settings are the fixed values a deployment reacts with.
type Settings struct {
	ClickType            string
	State                string
	Message              string
	SuppressRepeatNotify bool
}

// Service holds dependencies for the click logic
type Service struct {
	Logger        *slog.Logger
	Settings      Settings
	Registrations RegistrationStore
	States        StateStore
	Notifier      Notifier
}

// HandleRequest is the lambda entry point. The boolean result tells the caller
// whether the click type belonged to this handler.
func (s *Service) HandleRequest(ctx context.Context, raw json.RawMessage) (handled bool, err error) {
	// Panic Recovery Shield
	defer func() {
		if r := recover(); r != nil {
			s.log(ctx).Error("CRITICAL: Lambda Panic Recovered", "panic", r)
			handled, err = false, fmt.Errorf("internal server error")
		}
	}()

	ev, err := validation.DecodeClick(raw)
	if err != nil {
		s.log(ctx).Warn("Invalid click event", "error", err)
		return false, err
	}

	return s.Handle(ctx, ev)
}

// Handle reacts to one decoded click. Click types owned by other handlers are
// ignored with (false, nil). Downstream failures are returned unchanged in
// kind so the invocation is reported as failed.
func (s *Service) Handle(ctx context.Context, ev models.ClickEvent) (bool, error) {
	log := s.log(ctx)

	if ev.ClickType != s.Settings.ClickType {
		log.Info("Click type is not supported", "click_type", ev.ClickType)
		return false, nil
	}

	if err := validation.ValidateClick(ev); err != nil {
		log.Warn("Invalid click event", "error", err)
		return false, err
	}

	if err := s.processKey(ctx, ev.SerialNumber); err != nil {
		log.Error("Click processing failed", "device_id", ev.SerialNumber, "error", err)
		return false, err
	}

	return true, nil
}

// processKey clears the state of a registered device and confirms it.
// Unregistered devices are only logged.
func (s *Service) processKey(ctx context.Context, deviceID string) error {
	log := s.log(ctx).With("device_id", deviceID)
	log.Info("Processing dsn id")

	reg, err := s.Registrations.Get(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("%w for device %s: %w", ErrLookup, deviceID, err)
	}

	if reg == nil {
		log.Info("Device does not exist in the registration table")
		return nil
	}

	log.Info("Device is registered, updating state", "state", s.Settings.State)

	previous, err := s.States.Put(ctx, models.DeviceState{
		DeviceID: deviceID,
		State:    s.Settings.State,
	})
	if err != nil {
		return fmt.Errorf("%w for device %s: %w", ErrStateWrite, deviceID, err)
	}

	if s.Settings.SuppressRepeatNotify && previous == s.Settings.State {
		log.Info("Device was already cleared, skipping notification")
		return nil
	}

	// the state write is already committed if this fails
	if err := s.notify(ctx); err != nil {
		return fmt.Errorf("%w for device %s after state write: %w", ErrNotify, deviceID, err)
	}

	return nil
}

func (s *Service) notify(ctx context.Context) error {
	messageID, err := s.Notifier.Publish(ctx, s.Settings.Message)
	if err != nil {
		return err
	}

	s.log(ctx).Info("Confirmation published", "message_id", messageID)
	return nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return s.Logger.With("request_id", lc.AwsRequestID)
	}
	return s.Logger
}
