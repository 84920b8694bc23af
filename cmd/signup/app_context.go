package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/signup/internal/api"
	"github.com/alexisbeaulieu97/signup/internal/config"
	"github.com/alexisbeaulieu97/signup/internal/logger"
	"github.com/alexisbeaulieu97/signup/internal/messages"
	"github.com/alexisbeaulieu97/signup/internal/theme"
)

const envAPIURLName = config.EnvAPIURL

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings config.Settings
	Catalog  messages.Catalog
	Logger   *logger.Logger
	Client   *api.Client

	closer io.Closer
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (f *rootFlags) settings() (config.Settings, error) {
	overrides := config.Overrides{
		APIURL:   f.apiURL,
		Timeout:  f.timeout,
		Locale:   f.locale,
		LogLevel: f.logLevel,
	}
	if f.verbose {
		overrides.LogLevel = "debug"
	}
	return config.Load(config.LoadOptions{Path: f.configPath, Overrides: overrides})
}

// newAppContext loads settings and builds the services. With toFile the
// logger writes to the settings' log file instead of stderr.
func newAppContext(cmd *cobra.Command, f *rootFlags, toFile bool) (*AppContext, error) {
	settings, err := f.settings()
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Check the settings file, SIGNUP_* environment variables and flags.")
	}

	app := &AppContext{
		Settings: settings,
		Catalog:  messages.ForLocale(settings.Locale),
	}

	logOpts := logger.Options{Level: settings.LogLevel, Component: "cli"}
	if toFile {
		log, closer, err := logger.OpenFile(settings.LogPath, logOpts)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "opening log file", err, "Set log_path to a writable location.")
		}
		app.Logger, app.closer = log, closer
	} else {
		logOpts.Writer = cmd.ErrOrStderr()
		logOpts.HumanReadable = true
		log, err := logger.New(logOpts)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of: debug, info, warn, error.")
		}
		app.Logger = log
	}

	app.Client = api.New(api.Options{
		BaseURL: settings.APIURL,
		Timeout: settings.Timeout,
		Logger:  app.Logger,
	})

	return app, nil
}

// themeManager builds the theme context. Terminal background detection only
// runs when stdout is a terminal.
func (a *AppContext) themeManager(cmd *cobra.Command) *theme.Manager {
	var detect func() bool
	if isTerminal(cmd.OutOrStdout()) {
		detect = theme.DetectDark
	}
	return theme.NewManager(theme.NewStore(a.Settings.PreferencesPath), detect, a.Logger)
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
