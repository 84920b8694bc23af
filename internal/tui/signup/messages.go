package signup

import "github.com/alexisbeaulieu97/signup/internal/api"

// RegisterResultMsg carries the outcome of a registration request back into
// the update loop.
type RegisterResultMsg struct {
	Body *api.SuccessBody
	Err  error
}

// ThemeChangedMsg is emitted after the theme preference has been written.
type ThemeChangedMsg struct {
	Err error
}
