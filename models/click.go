package models

const (
	ClickSingle = "SINGLE"
	ClickDouble = "DOUBLE"
	ClickLong   = "LONG"
)

// ClickEvent is one physical press of a button device, normalized from
// whichever payload shape delivered it.
type ClickEvent struct {
	SerialNumber   string
	ClickType      string
	BatteryVoltage string

	// InvalidFields names payload fields that were present but not strings.
	// Their values above are left empty.
	InvalidFields []string
}

// KnownClickType reports whether t is a click type a button can emit.
func KnownClickType(t string) bool {
	switch t {
	case ClickSingle, ClickDouble, ClickLong:
		return true
	default:
		return false
	}
}

// HasInvalidField reports whether the named payload field had the wrong type.
func (ev ClickEvent) HasInvalidField(name string) bool {
	for _, f := range ev.InvalidFields {
		if f == name {
			return true
		}
	}
	return false
}
