package validation

import (
	"errors"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/signup/internal/messages"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator for form input.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return IsNonEmpty(fl.Field().String())
		})

		_ = v.RegisterValidation("min_trimmed", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return hasMinTrimmedLength(fl.Field().String(), n)
		})

		_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})

		_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
			return IsValidPassword(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

var structFields = map[string]Field{
	"FullName": FieldFullName,
	"Email":    FieldEmail,
	"Password": FieldPassword,
}

// Rules validates registration forms and words failures with a message catalog.
type Rules struct {
	catalog messages.Catalog
}

// NewRules returns Rules producing messages from catalog.
func NewRules(catalog messages.Catalog) Rules {
	return Rules{catalog: catalog}
}

// ValidateForm checks every field and returns one message per failing field.
// A field that is missing never also reports a shape error. The result is
// empty iff the form can be submitted.
func (r Rules) ValidateForm(form Form) FieldErrors {
	out := FieldErrors{}

	err := validatorInstance().Struct(form)
	if err == nil {
		return out
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		// Only reachable with a broken tag definition; block submission.
		for _, field := range Fields {
			out[field] = r.catalog.Fallback()
		}
		return out
	}

	for _, fe := range ves {
		field, ok := structFields[fe.StructField()]
		if !ok {
			continue
		}
		out[field] = r.messageFor(field, fe.Tag())
	}

	return out
}

func (r Rules) messageFor(field Field, tag string) string {
	c := r.catalog
	switch field {
	case FieldFullName:
		if tag == "nonblank" {
			return c.NameRequired
		}
		return c.NameTooShort
	case FieldEmail:
		if tag == "nonblank" {
			return c.EmailRequired
		}
		return c.EmailInvalid
	case FieldPassword:
		if tag == "nonblank" {
			return c.PasswordRequired
		}
		return c.PasswordWeak
	default:
		return c.Fallback()
	}
}

// ValidateForm validates form using the default (Spanish) catalog.
func ValidateForm(form Form) FieldErrors {
	return NewRules(messages.ForLocale(messages.DefaultLocale)).ValidateForm(form)
}
