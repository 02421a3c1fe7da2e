package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Fleexa-Graduation-Project/relief-button/models"
)

const MaxSerialNumberLength = 128

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidField     = errors.New("invalid field")
	ErrInvalidClickType = errors.New("invalid click type")
)

// IsValidationError reports whether err came from the checks in this package
// rather than from a downstream service.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEvent) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrInvalidClickType)
}

// payload field names
const (
	fieldSerialNumber   = "serialNumber"
	fieldClickType      = "clickType"
	fieldBatteryVoltage = "batteryVoltage"
)

// DecodeClick turns a raw lambda payload into a ClickEvent. It understands the
// classic IoT button payload and the IoT 1-Click envelope.
//
// Only a payload that is not a JSON object is an error. Fields of the wrong
// type are recorded in InvalidFields and left empty, so a click meant for
// another handler is still ignored quietly; ValidateClick rejects them once
// the click type is known to be ours.
func DecodeClick(raw json.RawMessage) (models.ClickEvent, error) {
	if len(raw) == 0 {
		return models.ClickEvent{}, fmt.Errorf("%w: empty payload", ErrInvalidEvent)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return models.ClickEvent{}, fmt.Errorf("%w: payload is not a json object", ErrInvalidEvent)
	}

	if deviceEvent, ok := top["deviceEvent"]; ok && !isNull(deviceEvent) {
		return decodeOneClick(top), nil
	}

	var ev models.ClickEvent
	ev.SerialNumber = stringField(&ev, fieldSerialNumber, top[fieldSerialNumber])
	ev.ClickType = stringField(&ev, fieldClickType, top[fieldClickType])

	// informational only, any other type is dropped
	ev.BatteryVoltage, _ = asString(top[fieldBatteryVoltage])

	return ev, nil
}

func decodeOneClick(top map[string]json.RawMessage) models.ClickEvent {
	clicked := object(object(top["deviceEvent"])["buttonClicked"])
	info := object(top["deviceInfo"])

	// 1-Click devices report remaining life instead of a voltage
	var ev models.ClickEvent
	ev.SerialNumber = stringField(&ev, fieldSerialNumber, info["deviceId"])
	ev.ClickType = stringField(&ev, fieldClickType, clicked["clickType"])
	return ev
}

// ValidateClick checks the fields the handler relies on.
func ValidateClick(ev models.ClickEvent) error {
	if ev.HasInvalidField(fieldSerialNumber) {
		return fmt.Errorf("%w: serialNumber must be a string", ErrInvalidField)
	}
	if strings.TrimSpace(ev.SerialNumber) == "" {
		return fmt.Errorf("%w: serialNumber", ErrMissingField)
	}
	if len(ev.SerialNumber) > MaxSerialNumberLength {
		return fmt.Errorf("%w: serialNumber longer than %d characters", ErrInvalidField, MaxSerialNumberLength)
	}

	if ev.HasInvalidField(fieldClickType) {
		return fmt.Errorf("%w: clickType must be a string", ErrInvalidField)
	}
	if ev.ClickType == "" {
		return fmt.Errorf("%w: clickType", ErrMissingField)
	}
	if !models.KnownClickType(ev.ClickType) {
		return fmt.Errorf("%w: %q", ErrInvalidClickType, ev.ClickType)
	}

	return nil
}

// stringField reads a string field, recording it on ev when it has another type.
func stringField(ev *models.ClickEvent, name string, raw json.RawMessage) string {
	s, ok := asString(raw)
	if !ok {
		ev.InvalidFields = append(ev.InvalidFields, name)
	}
	return s
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// asString decodes a JSON string. Absent and null count as an empty string;
// ok is false only for values of another type.
func asString(raw json.RawMessage) (s string, ok bool) {
	if isNull(raw) {
		return "", true
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// object decodes a nested JSON object, nil for anything else.
func object(raw json.RawMessage) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &m) != nil {
		return nil
	}
	return m
}
