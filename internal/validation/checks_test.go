package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsNonEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, IsNonEmpty("a"))
	require.True(t, IsNonEmpty("  a  "))
	require.False(t, IsNonEmpty(""))
	require.False(t, IsNonEmpty(" \t\n"))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"a@b", "a.com", "a @b.com", "", "@b.com", "a@.", "a@@b.com", "a@b .com"} {
		require.False(t, IsValidEmail(bad), "%q should be rejected", bad)
	}
	for _, good := range []string{"user@example.com", "first.last@sub.example.org", "a@b.co"} {
		require.True(t, IsValidEmail(good), "%q should be accepted", good)
	}
}

func TestIsValidPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  bool
	}{
		{"short1", false},
		{"longenough", false},
		{"Longenough", false},
		{"longenough1", false},
		{"Longenough1", true},
		{"ABCDEFG1", true},
		{"Abcdef1", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, IsValidPassword(tc.value), tc.value)
	}
}
