package signup

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/signup/internal/form"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < minWidth || m.height < minHeight
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.controller.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RegisterResultMsg:
		m.controller.Complete(msg.Body, msg.Err)
		if m.controller.Status() == form.StatusSuccess {
			m.syncInputs()
			cmd := m.setFocus(0)
			return m, cmd
		}
		return m, nil

	case ThemeChangedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
		} else {
			m.notice = ""
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.controller.ModalOpen() {
		switch msg.String() {
		case "esc", "enter", " ":
			m.controller.OnDismissResult()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+t":
		m.mode = m.mode.Opposite()
		m.themes.Apply(m.mode)
		m.applyTheme()
		m.log.WithFields(map[string]any{"theme": m.mode.String()}).Debug("theme toggled")
		return m, persistThemeCmd(m.themes)

	case "tab", "down":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd

	case "shift+tab", "up":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd

	case "enter":
		if m.focus >= len(m.inputs)-1 {
			return m.submit()
		}
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.registrar == nil {
		m.log.Warn(nil, "submit without a registrar")
		m.notice = m.catalog.Fallback()
		return m, nil
	}

	payload, ok := m.controller.OnSubmit()
	if !ok {
		if m.controller.Submitting() {
			return m, nil
		}
		// Jump to the first invalid field.
		errs := m.controller.Errors()
		for i, field := range validation.Fields {
			if errs.Has(field) {
				cmd := m.setFocus(i)
				return m, cmd
			}
		}
		return m, nil
	}

	m.log.Debug("submitting registration")
	return m, tea.Batch(registerCmd(m.ctx, m.registrar, payload), m.spinner.Tick)
}

// updateFocusedInput forwards msg to the focused input and records edits.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) || m.controller.Submitting() || m.controller.ModalOpen() {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.controller.OnFieldChange(validation.Fields[m.focus], after)
	}
	return m, cmd
}
