package models

const (
	// StateClear marks a device whose request has been acknowledged
	StateClear = "CLEAR"
)

// DeviceState is the row kept in the state table, one per device.
// Every accepted click overwrites the whole item.
type DeviceState struct {
	DeviceID string `json:"device_id" dynamodbav:"DeviceId"`
	State    string `json:"state" dynamodbav:"State"`
}
