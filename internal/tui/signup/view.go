package signup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/signup/internal/form"
	"github.com/alexisbeaulieu97/signup/internal/theme"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

// View renders the current model state.
func (m Model) View() string {
	if m.tooSmall {
		return m.styles.banner.Render(fmt.Sprintf(m.catalog.TooSmall, m.width, m.height, minWidth, minHeight))
	}

	if m.controller.ModalOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	return m.renderForm()
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	errs := m.controller.Errors()
	for i, field := range validation.Fields {
		b.WriteString(m.renderField(i, field, errs))
		b.WriteString("\n")
	}

	b.WriteString(m.renderButton())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.styles.banner.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.footer.Render(m.catalog.KeyHelp))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) renderHeader() string {
	themeName := m.catalog.ThemeLight
	if m.mode == theme.Dark {
		themeName = m.catalog.ThemeDark
	}
	badge := m.styles.themeBadge.Render(fmt.Sprintf("%s: %s", m.catalog.ThemeLabel, themeName))

	title := m.styles.title.Render(m.catalog.Title)
	gap := max(formWidth+2-lipgloss.Width(title)-lipgloss.Width(badge), 1)

	return title + strings.Repeat(" ", gap) + badge + "\n" +
		m.styles.subtitle.Render(m.catalog.Subtitle)
}

func (m Model) renderField(idx int, field validation.Field, errs validation.FieldErrors) string {
	label := m.styles.label.Render(m.labelFor(field)) + m.styles.required.Render(" *")

	box := m.styles.input
	switch {
	case errs.Has(field):
		box = m.styles.inputInvalid
	case idx == m.focus:
		box = m.styles.inputFocused
	}

	lines := []string{label, box.Render(m.inputs[idx].View())}

	if msg, ok := errs[field]; ok {
		lines = append(lines, m.styles.fieldErr.Render(msg))
	} else if field == validation.FieldPassword {
		lines = append(lines, m.renderPasswordHelp())
	}

	return strings.Join(lines, "\n")
}

func (m Model) labelFor(field validation.Field) string {
	switch field {
	case validation.FieldFullName:
		return m.catalog.NameLabel
	case validation.FieldEmail:
		return m.catalog.EmailLabel
	default:
		return m.catalog.PasswordLabel
	}
}

func (m Model) renderPasswordHelp() string {
	value := m.controller.Data().Password
	if value == "" {
		return m.styles.helper.Render(m.catalog.PasswordHelp)
	}

	strength := validation.PasswordStrength(value, m.catalog)
	const segments = 5
	filled := min(strength.Score, segments)
	meter := strings.Repeat("■", filled) + strings.Repeat("□", segments-filled)

	line := m.styles.strength(strength.Score).Render(meter + " " + strength.Label)
	if len(strength.Feedback) > 0 {
		line += "\n" + m.styles.helper.Render(strength.Feedback[0])
	}
	return line
}

func (m Model) renderButton() string {
	if m.controller.Submitting() {
		return m.styles.buttonBusy.Render(m.spinner.View() + " " + m.catalog.SubmittingLabel)
	}
	if m.focus == focusButton {
		return m.styles.buttonFocused.Render(m.catalog.SubmitLabel)
	}
	return m.styles.button.Render(m.catalog.SubmitLabel)
}

func (m Model) renderModal() string {
	result, ok := m.controller.Result()
	if !ok {
		return ""
	}

	box := m.styles.modalError
	title := m.catalog.ErrorTitle
	button := m.catalog.ErrorButton
	if result.Kind == form.ResultSuccess {
		box = m.styles.modalSuccess
		title = m.catalog.SuccessTitle
		button = m.catalog.SuccessButton
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render(title),
		"",
		result.Text,
		m.styles.modalButton.Render(button),
	)
	return box.Render(content)
}
