package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// LoadOptions controls where settings come from.
type LoadOptions struct {
	// Path is an explicit settings file. A missing explicit file is an error;
	// when empty the default location is tried and silently skipped if absent.
	Path      string
	Overrides Overrides
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// Load resolves settings from defaults, the YAML file, the environment and
// command-line overrides, in that order of increasing precedence.
func Load(opts LoadOptions) (Settings, error) {
	settings := Defaults()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		if defaultPath, err := DefaultConfigPath(); err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		parsed, err := ParseFile(path, settings)
		switch {
		case err == nil:
			settings = parsed
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return settings, err
		}
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if value := strings.TrimSpace(getenv(EnvAPIURL)); value != "" {
		settings.APIURL = value
	}
	if value := strings.TrimSpace(getenv(EnvLocale)); value != "" {
		settings.Locale = strings.ToLower(value)
	}

	opts.Overrides.apply(&settings)

	if settings.PreferencesPath == "" {
		if p, err := DefaultPreferencesPath(); err == nil {
			settings.PreferencesPath = p
		}
	}
	if settings.LogPath == "" {
		if p, err := DefaultLogPath(); err == nil {
			settings.LogPath = p
		}
	}

	if err := Validate(settings); err != nil {
		return settings, err
	}

	return settings, nil
}
