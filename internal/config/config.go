package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Fleexa-Graduation-Project/relief-button/models"
)

const (
	DefaultRegion            = "us-east-1"
	DefaultRegistrationTable = "User"
	DefaultStateTable        = "Event"
	DefaultTopicARN          = "arn:aws:sns:us-east-1:597248753215:ConfirmLongPress"
	DefaultMessage           = "Thank you for using our service to get relief. \nPlease longpress when you need relief again"
)

// environment keys
const (
	keyRegion               = "AWS_REGION"
	keyRegistrationTable    = "REGISTRATION_TABLE"
	keyStateTable           = "STATE_TABLE"
	keyTopicARN             = "NOTIFY_TOPIC_ARN"
	keyClickType            = "CLICK_TYPE"
	keyState                = "CLEARED_STATE"
	keyMessage              = "NOTIFY_MESSAGE"
	keySuppressRepeatNotify = "SUPPRESS_REPEAT_NOTIFY"
	keyLogLevel             = "LOG_LEVEL"
	keyLogFormat            = "LOG_FORMAT"
	keyListenAddr           = "LISTEN_ADDR"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is everything the click handler needs, fixed per deployment.
type Config struct {
	Region            string
	RegistrationTable string
	StateTable        string
	TopicARN          string

	ClickType string
	State     string
	Message   string

	// SuppressRepeatNotify skips the notification when the device was
	// already cleared before this click.
	SuppressRepeatNotify bool

	LogLevel  string
	LogFormat string

	// ListenAddr is only used by the local HTTP runner.
	ListenAddr string
}

// Load reads the lambda environment, falling back to the defaults above.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(keyRegion, DefaultRegion)
	v.SetDefault(keyRegistrationTable, DefaultRegistrationTable)
	v.SetDefault(keyStateTable, DefaultStateTable)
	v.SetDefault(keyTopicARN, DefaultTopicARN)
	v.SetDefault(keyClickType, models.ClickSingle)
	v.SetDefault(keyState, models.StateClear)
	v.SetDefault(keyMessage, DefaultMessage)
	v.SetDefault(keySuppressRepeatNotify, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "json")
	v.SetDefault(keyListenAddr, ":8080")

	cfg := Config{
		Region:               v.GetString(keyRegion),
		RegistrationTable:    v.GetString(keyRegistrationTable),
		StateTable:           v.GetString(keyStateTable),
		TopicARN:             v.GetString(keyTopicARN),
		ClickType:            v.GetString(keyClickType),
		State:                v.GetString(keyState),
		Message:              v.GetString(keyMessage),
		SuppressRepeatNotify: v.GetBool(keySuppressRepeatNotify),
		LogLevel:             v.GetString(keyLogLevel),
		LogFormat:            v.GetString(keyLogFormat),
		ListenAddr:           v.GetString(keyListenAddr),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{keyRegion, c.Region},
		{keyRegistrationTable, c.RegistrationTable},
		{keyStateTable, c.StateTable},
		{keyTopicARN, c.TopicARN},
		{keyClickType, c.ClickType},
		{keyState, c.State},
		{keyMessage, c.Message},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is not set", ErrInvalidConfig, r.key)
		}
	}

	if !models.KnownClickType(c.ClickType) {
		return fmt.Errorf("%w: %s %q is not a button click type", ErrInvalidConfig, keyClickType, c.ClickType)
	}

	return nil
}
