package form

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/signup/internal/api"
	"github.com/alexisbeaulieu97/signup/internal/messages"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

type stubRegistrar struct {
	calls  []api.RegisterRequest
	body   *api.SuccessBody
	err    error
	onCall func()
}

func (s *stubRegistrar) Register(_ context.Context, payload api.RegisterRequest) (*api.SuccessBody, error) {
	s.calls = append(s.calls, payload)
	if s.onCall != nil {
		s.onCall()
	}
	return s.body, s.err
}

var es = messages.ForLocale("es")

func fill(c *Controller, name, email, password string) {
	c.OnFieldChange(validation.FieldFullName, name)
	c.OnFieldChange(validation.FieldEmail, email)
	c.OnFieldChange(validation.FieldPassword, password)
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "  Ana López ", "Ana@Example.COM", "Secreta123")

	reg := &stubRegistrar{body: &api.SuccessBody{Status: 201, Message: "user registered"}}
	require.True(t, c.Submit(context.Background(), reg))

	require.Len(t, reg.calls, 1)
	want := api.RegisterRequest{FullName: "Ana López", Email: "ana@example.com", Password: "Secreta123"}
	if diff := cmp.Diff(want, reg.calls[0]); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, StatusSuccess, c.Status())
	assert.Equal(t, validation.Form{}, c.Data())
	assert.True(t, c.Errors().Empty())
	assert.True(t, c.ModalOpen())

	result, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, ResultMessage{Kind: ResultSuccess, Text: es.MessageFor(201)}, result)
}

func TestSubmitRejectsPaddedEmail(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "Ana López", " ana@example.com ", "Secreta123")

	reg := &stubRegistrar{}
	assert.False(t, c.Submit(context.Background(), reg))
	assert.Empty(t, reg.calls)
	assert.Equal(t, StatusIdle, c.Status())
	assert.Equal(t, validation.FieldErrors{validation.FieldEmail: es.EmailInvalid}, c.Errors())
}

func TestSubmitNonCreatedSuccessUsesFixedMessage(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "Ana López", "ana@example.com", "Secreta123")

	require.True(t, c.Submit(context.Background(), &stubRegistrar{body: &api.SuccessBody{Status: 200}}))
	result, _ := c.Result()
	assert.Equal(t, es.MessageFor(201), result.Text)
}

func TestSubmitNetworkFailureKeepsData(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "Ana López", "ana@example.com", "Secreta123")
	before := c.Data()

	reg := &stubRegistrar{err: &api.Error{Status: api.StatusNoResponse, Message: "no response from server"}}
	require.True(t, c.Submit(context.Background(), reg))

	assert.Equal(t, StatusError, c.Status())
	assert.Equal(t, before, c.Data())
	assert.True(t, c.ModalOpen())

	result, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, ResultError, result.Kind)
	assert.Equal(t, "No se pudo conectar con el servidor. Verifica tu conexión a internet.", result.Text)
}

func TestSubmitServerStatusesMapToMessages(t *testing.T) {
	t.Parallel()

	for _, status := range []int{400, 409, 429, 500, 503, 418} {
		c := NewController(es, nil)
		fill(c, "Ana López", "ana@example.com", "Secreta123")
		c.Submit(context.Background(), &stubRegistrar{err: &api.Error{Status: status}})

		result, ok := c.Result()
		require.True(t, ok)
		assert.Equal(t, es.MessageFor(status), result.Text, "status %d", status)
	}
}

func TestSubmitUntypedErrorUsesFallback(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "Ana López", "ana@example.com", "Secreta123")
	c.Submit(context.Background(), &stubRegistrar{err: errors.New("boom")})

	result, _ := c.Result()
	assert.Equal(t, es.Fallback(), result.Text)
}

func TestSubmitBlockedByValidation(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	reg := &stubRegistrar{}

	assert.False(t, c.Submit(context.Background(), reg))
	assert.Empty(t, reg.calls)
	assert.Equal(t, StatusIdle, c.Status())
	assert.False(t, c.ModalOpen())
	assert.Len(t, c.Errors(), 3)
}

func TestValidationErrorsAreRecomputed(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	_, ok := c.OnSubmit()
	require.False(t, ok)
	require.Len(t, c.Errors(), 3)

	c.OnFieldChange(validation.FieldEmail, "x")
	assert.False(t, c.Errors().Has(validation.FieldEmail))
	assert.Len(t, c.Errors(), 2)

	fill(c, "Jo", "a@b.com", "Abcdefg1")
	_, ok = c.OnSubmit()
	require.False(t, ok)
	assert.Equal(t, validation.FieldErrors{validation.FieldFullName: es.NameTooShort}, c.Errors())
}

func TestResubmitWhileSubmittingIsNoop(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "Ana López", "ana@example.com", "Secreta123")

	reg := &stubRegistrar{body: &api.SuccessBody{Status: 201}}
	reg.onCall = func() {
		assert.True(t, c.Submitting())
		assert.False(t, c.Submit(context.Background(), reg))
	}

	require.True(t, c.Submit(context.Background(), reg))
	assert.Len(t, reg.calls, 1)
	assert.Equal(t, StatusSuccess, c.Status())
}

func TestCompleteIgnoredUnlessSubmitting(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	c.Complete(&api.SuccessBody{Status: 201}, nil)
	assert.Equal(t, StatusIdle, c.Status())
	assert.False(t, c.ModalOpen())
}

func TestDismissReturnsToIdle(t *testing.T) {
	t.Parallel()

	c := NewController(es, nil)
	fill(c, "Ana López", "ana@example.com", "Secreta123")
	c.Submit(context.Background(), &stubRegistrar{err: &api.Error{Status: 409}})
	require.True(t, c.ModalOpen())

	c.OnDismissResult()
	assert.Equal(t, StatusIdle, c.Status())
	assert.False(t, c.ModalOpen())
	_, ok := c.Result()
	assert.False(t, ok)
	assert.Equal(t, "Ana López", c.Data().FullName)
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
