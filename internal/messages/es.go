package messages

func spanish() Catalog {
	return Catalog{
		Locale: "es",
		statuses: map[int]string{
			StatusCreated:            "¡Registro exitoso! Revisa tu correo electrónico.",
			StatusBadRequest:         "Los datos proporcionados no son válidos. Por favor, verifica la información.",
			StatusConflict:           "Este correo electrónico ya está registrado. Por favor, usa otro o inicia sesión.",
			StatusTooManyRequests:    "Demasiados intentos. Por favor, espera unos minutos antes de intentar nuevamente.",
			StatusInternalError:      "Error interno del servidor. Por favor, intenta nuevamente más tarde.",
			StatusServiceUnavailable: "El servicio no está disponible temporalmente. Por favor, intenta más tarde.",
			StatusNoResponse:         "No se pudo conectar con el servidor. Verifica tu conexión a internet.",
		},
		fallback: "Ocurrió un error inesperado. Por favor, intenta de nuevo.",

		NameRequired:     "El nombre completo es requerido",
		NameTooShort:     "El nombre debe tener al menos 3 caracteres",
		EmailRequired:    "El correo electrónico es requerido",
		EmailInvalid:     "El formato del correo electrónico no es válido",
		PasswordRequired: "La contraseña es requerida",
		PasswordWeak:     "La contraseña debe tener al menos 8 caracteres, una mayúscula y un número",

		Title:            "Crear cuenta",
		Subtitle:         "Regístrate para comenzar",
		NameLabel:        "Nombre completo",
		NamePlaceholder:  "Juan Pérez",
		EmailLabel:       "Correo electrónico",
		EmailPlaceholder: "tu@ejemplo.com",
		PasswordLabel:    "Contraseña",
		PasswordHelp:     "Mínimo 8 caracteres, una mayúscula y un número",
		SubmitLabel:      "Registrarse",
		SubmittingLabel:  "Registrando...",
		ThemeLabel:       "tema",
		ThemeLight:       "claro",
		ThemeDark:        "oscuro",
		KeyHelp:          "tab: siguiente • enter: enviar • ctrl+t: tema • ctrl+c: salir",
		TooSmall:         "Terminal demasiado pequeña (%dx%d). Tamaño mínimo: %dx%d",

		SuccessTitle:  "¡Éxito!",
		SuccessButton: "Aceptar",
		ErrorTitle:    "Error",
		ErrorButton:   "Entendido",

		Strength:   [5]string{"Muy débil", "Débil", "Aceptable", "Fuerte", "Muy fuerte"},
		NeedLength: "Debe tener al menos 8 caracteres",
		NeedLower:  "Debe incluir letras minúsculas",
		NeedUpper:  "Debe incluir letras mayúsculas",
		NeedDigit:  "Debe incluir números",
		HasSymbol:  "Excelente: incluye caracteres especiales",
	}
}
