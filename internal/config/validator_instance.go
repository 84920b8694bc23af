package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	signuperrors "github.com/alexisbeaulieu97/signup/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for settings.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report YAML keys so errors point at what the user wrote.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks settings against their struct tags.
func Validate(s Settings) error {
	return convertValidationError(validatorInstance().Struct(s))
}

// convertValidationError normalizes validator errors into signup validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), tagDescription(ve))
		return signuperrors.NewValidationError(ve.Field(), msg, err)
	}

	return signuperrors.NewValidationError("settings", err.Error(), err)
}

func tagDescription(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
