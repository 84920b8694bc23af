package mockhook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRegisterLifecycle(t *testing.T) {
	t.Parallel()

	srv := New(Options{})
	h := srv.Handler()

	valid := `{"full_name":"Ana López","email":"Ana@Example.com","password":"Secreta123"}`

	rec := post(t, h, valid)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user registered", decode(t, rec)["message"])
	assert.True(t, srv.Registered("ana@example.com"))

	rec = post(t, h, valid)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	t.Parallel()

	h := New(Options{}).Handler()

	rec := post(t, h, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, `{"full_name":"Jo","email":"nope","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestRegisterForcedFailures(t *testing.T) {
	t.Parallel()

	h := New(Options{}).Handler()

	rec := post(t, h, `{"full_name":"Ana López","email":"fail500@example.com","password":"Secreta123"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = post(t, h, `{"full_name":"Ana López","email":"down503@example.com","password":"Secreta123"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegisterRateLimit(t *testing.T) {
	t.Parallel()

	h := New(Options{Limit: 1}).Handler()

	rec := post(t, h, `{"full_name":"Ana López","email":"ana@example.com","password":"Secreta123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(t, h, `{"full_name":"Bea Ruiz","email":"bea@example.com","password":"Secreta123"}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	New(Options{}).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsCountResponses(t *testing.T) {
	t.Parallel()

	h := New(Options{}).Handler()
	post(t, h, `{"full_name":"Ana López","email":"ana@example.com","password":"Secreta123"}`)
	post(t, h, `{"full_name":"Ana López","email":"ana@example.com","password":"Secreta123"}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `signup_mockhook_responses_total{status="201"} 1`)
	assert.Contains(t, body, `signup_mockhook_responses_total{status="409"} 1`)
	assert.Contains(t, body, "signup_mockhook_registered_users 1")
}

func TestRateLimitCountsMalformedRequests(t *testing.T) {
	t.Parallel()

	h := New(Options{Limit: 1}).Handler()

	rec := post(t, h, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, `{"full_name":"Ana López","email":"ana@example.com","password":"Secreta123"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
