package signup

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/signup/internal/theme"
)

const (
	formWidth  = 48
	modalWidth = 44
)

// styles is rebuilt whenever the theme changes.
type styles struct {
	palette theme.Palette

	title    lipgloss.Style
	subtitle lipgloss.Style
	label    lipgloss.Style
	required lipgloss.Style
	helper   lipgloss.Style
	fieldErr lipgloss.Style

	input        lipgloss.Style
	inputFocused lipgloss.Style
	inputInvalid lipgloss.Style

	button        lipgloss.Style
	buttonFocused lipgloss.Style
	buttonBusy    lipgloss.Style

	themeBadge lipgloss.Style
	footer     lipgloss.Style
	banner     lipgloss.Style

	modalSuccess lipgloss.Style
	modalError   lipgloss.Style
	modalButton  lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	inputBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Neutral.Muted).
		Padding(0, 1).
		Width(formWidth)

	buttonBase := lipgloss.NewStyle().
		Padding(0, 3).
		MarginTop(1).
		Bold(true)

	modalBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(modalWidth).
		Align(lipgloss.Center)

	return styles{
		palette: p,

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),
		subtitle: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			MarginBottom(1),
		label: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Surface.OnBase),
		required: lipgloss.NewStyle().
			Foreground(p.Danger.Base),
		helper: lipgloss.NewStyle().
			Foreground(p.Neutral.Base),
		fieldErr: lipgloss.NewStyle().
			Foreground(p.Danger.Base),

		input:        inputBase,
		inputFocused: inputBase.BorderForeground(p.Primary.Base),
		inputInvalid: inputBase.BorderForeground(p.Danger.Base),

		button: buttonBase.
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Muted),
		buttonFocused: buttonBase.
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base).
			Underline(true),
		buttonBusy: buttonBase.
			Foreground(p.Neutral.OnBase).
			Background(p.Neutral.Muted),

		themeBadge: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			Italic(true),
		footer: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Neutral.Muted).
			MarginTop(1),
		banner: lipgloss.NewStyle().
			Foreground(p.Danger.Base).
			Bold(true),

		modalSuccess: modalBase.BorderForeground(p.Success.Base),
		modalError:   modalBase.BorderForeground(p.Danger.Base),
		modalButton: buttonBase.
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base),
	}
}

func (s styles) strength(score int) lipgloss.Style {
	idx := min(max(score-1, 0), len(s.palette.Strength)-1)
	return lipgloss.NewStyle().Foreground(s.palette.Strength[idx])
}
