// Package signup is the terminal front end of the registration form.
package signup

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/signup/internal/form"
	"github.com/alexisbeaulieu97/signup/internal/logger"
	"github.com/alexisbeaulieu97/signup/internal/messages"
	"github.com/alexisbeaulieu97/signup/internal/theme"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

const (
	minWidth  = 56
	minHeight = 22
)

// focusButton is the focus index of the submit button; inputs use 0..2.
var focusButton = len(validation.Fields)

// Options wires the model to its collaborators.
type Options struct {
	Controller *form.Controller
	Registrar  form.Registrar
	Themes     *theme.Manager
	Logger     *logger.Logger
	// Context bounds registration requests. Defaults to context.Background.
	Context context.Context
}

// Model is the Bubble Tea model for the registration screen.
type Model struct {
	ctx        context.Context
	controller *form.Controller
	registrar  form.Registrar
	themes     *theme.Manager
	mode       theme.Mode
	catalog    messages.Catalog
	log        *logger.Logger

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	styles  styles

	width    int
	height   int
	tooSmall bool
	notice   string
}

// NewModel builds the form with the first input focused.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewManager(nil, nil, log)
	}
	controller := opts.Controller
	if controller == nil {
		controller = form.NewController(messages.ForLocale(messages.DefaultLocale), log)
	}
	catalog := controller.Catalog()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		controller: controller,
		registrar:  opts.Registrar,
		themes:     themes,
		mode:       themes.Mode(),
		catalog:    catalog,
		log:        log.With("component", "tui"),
		inputs:     newInputs(catalog),
		spinner:    s,
		width:      80,
		height:     24,
	}
	m.applyTheme()
	m.setFocus(0)

	return m
}

func newInputs(c messages.Catalog) []textinput.Model {
	inputs := make([]textinput.Model, len(validation.Fields))
	for i, field := range validation.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 128
		in.Width = formWidth - 4

		switch field {
		case validation.FieldFullName:
			in.Placeholder = c.NamePlaceholder
		case validation.FieldEmail:
			in.Placeholder = c.EmailPlaceholder
		case validation.FieldPassword:
			in.Placeholder = "••••••••"
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}
	return inputs
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) applyTheme() {
	m.styles = newStyles(theme.PaletteFor(m.mode))
	m.spinner.Style = m.styles.helper
	for i := range m.inputs {
		m.inputs[i].PlaceholderStyle = m.styles.helper
		m.inputs[i].TextStyle = m.styles.label.UnsetBold()
	}
}

// setFocus moves focus to idx, wrapping around the inputs and the button.
func (m *Model) setFocus(idx int) tea.Cmd {
	total := len(m.inputs) + 1
	m.focus = ((idx % total) + total) % total

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// syncInputs copies the controller's data into the inputs, used after the
// controller resets the form.
func (m *Model) syncInputs() {
	data := m.controller.Data()
	for i, field := range validation.Fields {
		if m.inputs[i].Value() != data.Get(field) {
			m.inputs[i].SetValue(data.Get(field))
		}
	}
}

// Focused returns the focused field, or "" when the submit button has focus.
func (m Model) Focused() validation.Field {
	if m.focus < len(validation.Fields) {
		return validation.Fields[m.focus]
	}
	return ""
}

// Controller exposes the form state, mainly for tests and the caller.
func (m Model) Controller() *form.Controller {
	return m.controller
}
