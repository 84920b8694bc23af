// Package messages holds every user-facing string of the signup client, keyed
// by locale. The Spanish catalog is the product's primary copy.
package messages

import "strings"

// DefaultLocale is used when no locale is configured or the configured one is unknown.
const DefaultLocale = "es"

// Recognised registration outcomes.
const (
	StatusCreated            = 201
	StatusBadRequest         = 400
	StatusConflict           = 409
	StatusTooManyRequests    = 429
	StatusInternalError      = 500
	StatusServiceUnavailable = 503
	// StatusNoResponse marks a request that was sent but never answered.
	StatusNoResponse = 0
	// StatusRequestFailed marks a request that could not be built or sent.
	StatusRequestFailed = -1
)

// Catalog is a complete set of localized strings.
type Catalog struct {
	Locale string

	statuses map[int]string
	fallback string

	// Field validation copy.
	NameRequired     string
	NameTooShort     string
	EmailRequired    string
	EmailInvalid     string
	PasswordRequired string
	PasswordWeak     string

	// Form chrome.
	Title            string
	Subtitle         string
	NameLabel        string
	NamePlaceholder  string
	EmailLabel       string
	EmailPlaceholder string
	PasswordLabel    string
	PasswordHelp     string
	SubmitLabel      string
	SubmittingLabel  string
	ThemeLabel       string
	ThemeLight       string
	ThemeDark        string
	KeyHelp          string
	// TooSmall is a format string taking width, height, min width, min height.
	TooSmall string

	// Result modal.
	SuccessTitle  string
	SuccessButton string
	ErrorTitle    string
	ErrorButton   string

	// Password strength labels, weakest first.
	Strength [5]string
	// Password strength feedback.
	NeedLength string
	NeedLower  string
	NeedUpper  string
	NeedDigit  string
	HasSymbol  string
}

// MessageFor returns the fixed message for a registration status code,
// falling back to a generic failure for anything unrecognised.
func (c Catalog) MessageFor(status int) string {
	if msg, ok := c.statuses[status]; ok {
		return msg
	}
	return c.fallback
}

// Fallback returns the generic "unexpected error" message.
func (c Catalog) Fallback() string {
	return c.fallback
}

var catalogs = map[string]Catalog{
	"es": spanish(),
	"en": english(),
}

// ForLocale returns the catalog for tag ("es", "en-US", ...). Unknown tags
// resolve to Spanish.
func ForLocale(tag string) Catalog {
	base := strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(base, "-_"); idx >= 0 {
		base = base[:idx]
	}
	if c, ok := catalogs[base]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}

// Locales lists the supported locale tags.
func Locales() []string {
	return []string{"es", "en"}
}
