package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsNonEmpty reports whether value has content once surrounding whitespace is trimmed.
func IsNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsValidEmail reports whether value looks like local@domain.tld with a single
// "@", a dot in the domain part, and no whitespace.
func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsValidPassword reports whether value has at least eight characters, an
// ASCII uppercase letter and a digit.
func IsValidPassword(value string) bool {
	if utf8.RuneCountInString(value) < minPasswordLength {
		return false
	}
	return containsRange(value, 'A', 'Z') && containsRange(value, '0', '9')
}

func hasMinTrimmedLength(value string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= n
}

func containsRange(value string, lo, hi rune) bool {
	for _, r := range value {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
