package messages

func english() Catalog {
	return Catalog{
		Locale: "en",
		statuses: map[int]string{
			StatusCreated:            "Registration successful! Check your email.",
			StatusBadRequest:         "The information provided is not valid. Please check it and try again.",
			StatusConflict:           "This email is already registered. Use a different one or sign in.",
			StatusTooManyRequests:    "Too many attempts. Please wait a few minutes before trying again.",
			StatusInternalError:      "Internal server error. Please try again later.",
			StatusServiceUnavailable: "The service is temporarily unavailable. Please try again later.",
			StatusNoResponse:         "Could not reach the server. Check your internet connection.",
		},
		fallback: "An unexpected error occurred. Please try again.",

		NameRequired:     "Full name is required",
		NameTooShort:     "Name must be at least 3 characters",
		EmailRequired:    "Email is required",
		EmailInvalid:     "Email format is not valid",
		PasswordRequired: "Password is required",
		PasswordWeak:     "Password must be at least 8 characters with one uppercase letter and one number",

		Title:            "Create account",
		Subtitle:         "Sign up to get started",
		NameLabel:        "Full name",
		NamePlaceholder:  "Jane Doe",
		EmailLabel:       "Email",
		EmailPlaceholder: "you@example.com",
		PasswordLabel:    "Password",
		PasswordHelp:     "At least 8 characters, one uppercase letter and one number",
		SubmitLabel:      "Sign up",
		SubmittingLabel:  "Signing up...",
		ThemeLabel:       "theme",
		ThemeLight:       "light",
		ThemeDark:        "dark",
		KeyHelp:          "tab: next • enter: submit • ctrl+t: theme • ctrl+c: quit",
		TooSmall:         "Terminal too small (%dx%d). Minimum size: %dx%d",

		SuccessTitle:  "Success!",
		SuccessButton: "OK",
		ErrorTitle:    "Error",
		ErrorButton:   "Got it",

		Strength:   [5]string{"Very weak", "Weak", "Fair", "Strong", "Very strong"},
		NeedLength: "Must be at least 8 characters",
		NeedLower:  "Must include lowercase letters",
		NeedUpper:  "Must include uppercase letters",
		NeedDigit:  "Must include numbers",
		HasSymbol:  "Great: includes special characters",
	}
}
