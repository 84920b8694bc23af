package validation

// Field names a registration form input.
type Field string

const (
	FieldFullName Field = "fullName"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldFullName, FieldEmail, FieldPassword}

// Form is the raw registration input as typed by the user. Each field is
// checked for presence first and shape second; validation of a field stops at
// the first failing rule.
type Form struct {
	FullName string `validate:"nonblank,min_trimmed=3"`
	Email    string `validate:"nonblank,email_shape"`
	Password string `validate:"nonblank,strong_password"`
}

// Get returns the value of field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	default:
		return ""
	}
}

// With returns a copy of f with field set to value. Unknown fields are ignored.
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	}
	return f
}

// FieldErrors maps a failing field to its message. Passing fields are absent.
type FieldErrors map[Field]string

// Has reports whether field currently has an error.
func (fe FieldErrors) Has(field Field) bool {
	_, ok := fe[field]
	return ok
}

// Without returns a copy of fe with field removed.
func (fe FieldErrors) Without(field Field) FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		if k != field {
			out[k] = v
		}
	}
	return out
}

// Empty reports whether no field is failing.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}
