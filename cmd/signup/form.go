package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/signup/internal/form"
	"github.com/alexisbeaulieu97/signup/internal/tui/signup"
)

func runForm(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger
	log.WithFields(map[string]any{"api_url": app.Settings.APIURL, "locale": app.Catalog.Locale}).Info("launching form")

	m := signup.NewModel(signup.Options{
		Controller: form.NewController(app.Catalog, log),
		Registrar:  app.Client,
		Themes:     app.themeManager(cmd),
		Logger:     log,
		Context:    cmd.Context(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "form execution failed")
		return fmt.Errorf("failed to run form: %w", err)
	}

	log.Info("form closed")
	return nil
}
