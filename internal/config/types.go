package config

import (
	"time"

	"github.com/alexisbeaulieu97/signup/internal/messages"
)

const (
	// DefaultAPIURL is the registration webhook used when nothing else is configured.
	DefaultAPIURL = "http://localhost:5678/webhook"
	// DefaultTimeout bounds a single registration request.
	DefaultTimeout = 10 * time.Second
	// DefaultLocale selects the message catalog.
	DefaultLocale = messages.DefaultLocale

	// EnvAPIURL overrides the webhook URL.
	EnvAPIURL = "SIGNUP_API_URL"
	// EnvLocale overrides the message catalog.
	EnvLocale = "SIGNUP_LOCALE"
)

// Settings holds runtime configuration for the signup client.
type Settings struct {
	APIURL          string        `yaml:"api_url" validate:"required,http_url"`
	Timeout         time.Duration `yaml:"timeout" validate:"gt=0"`
	Locale          string        `yaml:"locale" validate:"oneof=es en"`
	LogLevel        string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	PreferencesPath string        `yaml:"preferences_path"`
	LogPath         string        `yaml:"log_path"`
}

// Defaults returns the settings used before any file, env, or flag is applied.
func Defaults() Settings {
	return Settings{
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultTimeout,
		Locale:   DefaultLocale,
		LogLevel: "info",
	}
}

// Overrides carries command-line values. Zero values mean "not set".
type Overrides struct {
	APIURL   string
	Timeout  time.Duration
	Locale   string
	LogLevel string
}

func (o Overrides) apply(s *Settings) {
	if o.APIURL != "" {
		s.APIURL = o.APIURL
	}
	if o.Timeout > 0 {
		s.Timeout = o.Timeout
	}
	if o.Locale != "" {
		s.Locale = o.Locale
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
}
