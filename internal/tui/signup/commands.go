package signup

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/signup/internal/api"
	"github.com/alexisbeaulieu97/signup/internal/form"
	"github.com/alexisbeaulieu97/signup/internal/theme"
)

// registerCmd sends the registration off the update goroutine.
func registerCmd(ctx context.Context, registrar form.Registrar, payload api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		body, err := registrar.Register(ctx, payload)
		return RegisterResultMsg{Body: body, Err: err}
	}
}

// persistThemeCmd writes the manager's current mode without blocking input.
func persistThemeCmd(themes *theme.Manager) tea.Cmd {
	return func() tea.Msg {
		return ThemeChangedMsg{Err: themes.Persist()}
	}
}
