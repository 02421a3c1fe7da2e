package models

// DeviceRegistration is owned by the sign-up flow; this service only reads it.
// The presence of an item is what counts as "registered".
type DeviceRegistration struct {
	DeviceID string `json:"device_id" dynamodbav:"DeviceId"`
}
