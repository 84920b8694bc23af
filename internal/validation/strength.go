package validation

import (
	"unicode/utf8"

	"github.com/alexisbeaulieu97/signup/internal/messages"
)

// Strength is a coarse password quality estimate shown next to the password input.
type Strength struct {
	Score    int
	Label    string
	Feedback []string
}

// PasswordStrength scores value from 0 to 5 (one point each for length,
// lowercase, uppercase, digit and symbol); the label saturates at the
// strongest bucket.
func PasswordStrength(value string, c messages.Catalog) Strength {
	var s Strength

	check := func(ok bool, missing string) {
		if ok {
			s.Score++
			return
		}
		s.Feedback = append(s.Feedback, missing)
	}

	check(utf8.RuneCountInString(value) >= minPasswordLength, c.NeedLength)
	check(containsRange(value, 'a', 'z'), c.NeedLower)
	check(containsRange(value, 'A', 'Z'), c.NeedUpper)
	check(containsRange(value, '0', '9'), c.NeedDigit)

	if hasSymbol(value) {
		s.Score++
		s.Feedback = append(s.Feedback, c.HasSymbol)
	}

	s.Label = c.Strength[min(s.Score, len(c.Strength)-1)]
	return s
}

func hasSymbol(value string) bool {
	for _, r := range value {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return true
		}
	}
	return false
}
