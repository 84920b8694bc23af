package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/signup/internal/messages"
	"github.com/alexisbeaulieu97/signup/internal/mockhook"
)

// isolateEnv points every user directory at a temp dir and clears SIGNUP_*
// variables so commands never touch the real home.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("SIGNUP_API_URL", "")
	t.Setenv("SIGNUP_LOCALE", "")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func startMockhook(t *testing.T) (*mockhook.Server, string) {
	t.Helper()
	hook := mockhook.New(mockhook.Options{})
	srv := httptest.NewServer(hook.Handler())
	t.Cleanup(srv.Close)
	return hook, srv.URL + "/webhook"
}

func TestRegisterCommandSuccess(t *testing.T) {
	isolateEnv(t)
	hook, url := startMockhook(t)

	out, err := execute(t, "Secreta123\n",
		"register", "--api-url", url,
		"--full-name", "  Ana López ", "--email", "Ana@Example.com", "--password-stdin")
	require.NoError(t, err)

	assert.Contains(t, out, messages.ForLocale("es").MessageFor(201))
	assert.True(t, hook.Registered("ana@example.com"))
}

func TestRegisterCommandUsesLocale(t *testing.T) {
	isolateEnv(t)
	_, url := startMockhook(t)

	out, err := execute(t, "Secreta123\n",
		"register", "--api-url", url, "--locale", "en",
		"--full-name", "Ana López", "--email", "ana@example.com", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, messages.ForLocale("en").MessageFor(201))
}

func TestRegisterCommandReportsFieldErrors(t *testing.T) {
	isolateEnv(t)
	hook, url := startMockhook(t)

	out, err := execute(t, "short\n",
		"register", "--api-url", url,
		"--full-name", "Jo", "--email", "not-an-email", "--password-stdin")
	require.ErrorIs(t, err, errInvalidFields)

	es := messages.ForLocale("es")
	assert.Contains(t, out, "fullName: "+es.NameTooShort)
	assert.Contains(t, out, "email: "+es.EmailInvalid)
	assert.Contains(t, out, "password: "+es.PasswordWeak)
	assert.False(t, hook.Registered("not-an-email"))
}

func TestRegisterCommandReportsServerRejection(t *testing.T) {
	isolateEnv(t)
	_, url := startMockhook(t)

	args := []string{"register", "--api-url", url,
		"--full-name", "Ana López", "--email", "ana@example.com", "--password-stdin"}

	_, err := execute(t, "Secreta123\n", args...)
	require.NoError(t, err)

	out, err := execute(t, "Secreta123\n", args...)
	require.Error(t, err)
	assert.Contains(t, out, messages.ForLocale("es").MessageFor(409))
}

func TestRegisterCommandRequiresPasswordSource(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "", "register", "--full-name", "Ana López", "--email", "ana@example.com")
	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "register", cmdErr.operation)
}

func TestRegisterCommandRejectsInvalidSettings(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "Secreta123\n", "register", "--api-url", "not a url",
		"--full-name", "Ana López", "--email", "ana@example.com", "--password-stdin")
	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "loading settings", cmdErr.context)
}

func TestThemeCommand(t *testing.T) {
	dir := isolateEnv(t)

	out, err := execute(t, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "", "theme", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	raw, err := os.ReadFile(filepath.Join(dir, "config", "signup", "preferences.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(raw))

	out, err = execute(t, "", "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = execute(t, "", "theme", "sepia")
	require.Error(t, err)
}

func TestRootWithoutTerminalPrintsGuidance(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "signup register")
}

func TestReadLine(t *testing.T) {
	line, err := readLine(strings.NewReader("Secreta123\r\nignored"))
	require.NoError(t, err)
	assert.Equal(t, "Secreta123", line)

	line, err = readLine(strings.NewReader("NoNewline1"))
	require.NoError(t, err)
	assert.Equal(t, "NoNewline1", line)

	_, err = readLine(strings.NewReader(""))
	assert.Error(t, err)
}
