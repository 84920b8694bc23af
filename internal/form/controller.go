// Package form implements the registration form state machine independently
// of any presentation layer.
package form

import (
	"context"
	"errors"
	"strings"

	"github.com/alexisbeaulieu97/signup/internal/api"
	"github.com/alexisbeaulieu97/signup/internal/logger"
	"github.com/alexisbeaulieu97/signup/internal/messages"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

// Status is the submission lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ResultKind distinguishes the two result modal flavours.
type ResultKind string

const (
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
)

// ResultMessage is what the result modal shows.
type ResultMessage struct {
	Kind ResultKind
	Text string
}

// Registrar performs the network submission.
type Registrar interface {
	Register(ctx context.Context, payload api.RegisterRequest) (*api.SuccessBody, error)
}

// Controller owns the form data and its submission lifecycle. It is not safe
// for concurrent use; callers drive it from a single event loop.
type Controller struct {
	catalog messages.Catalog
	rules   validation.Rules
	log     *logger.Logger

	data      validation.Form
	errors    validation.FieldErrors
	status    Status
	result    *ResultMessage
	modalOpen bool
}

// NewController returns an idle controller with empty fields.
func NewController(catalog messages.Catalog, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		catalog: catalog,
		rules:   validation.NewRules(catalog),
		log:     log.With("component", "form"),
		errors:  validation.FieldErrors{},
	}
}

// OnFieldChange stores value and drops any error previously shown for field.
func (c *Controller) OnFieldChange(field validation.Field, value string) {
	c.data = c.data.With(field, value)
	if c.errors.Has(field) {
		c.errors = c.errors.Without(field)
	}
}

// OnSubmit validates the form. It returns the sanitized payload and true when
// a request should be sent, in which case the controller is now submitting.
// It returns false while a submission is already in flight or when
// validation fails.
func (c *Controller) OnSubmit() (api.RegisterRequest, bool) {
	if c.status == StatusSubmitting {
		c.log.Debug("submit ignored while a request is in flight")
		return api.RegisterRequest{}, false
	}

	c.errors = c.rules.ValidateForm(c.data)
	if !c.errors.Empty() {
		c.log.WithFields(map[string]any{"failing_fields": len(c.errors)}).Debug("submit blocked by validation")
		return api.RegisterRequest{}, false
	}

	c.status = StatusSubmitting
	return api.RegisterRequest{
		FullName: strings.TrimSpace(c.data.FullName),
		Email:    strings.ToLower(strings.TrimSpace(c.data.Email)),
		Password: c.data.Password,
	}, true
}

// Complete records the outcome of the in-flight request. Calls made while not
// submitting are ignored.
func (c *Controller) Complete(body *api.SuccessBody, err error) {
	if c.status != StatusSubmitting {
		return
	}

	if err == nil {
		if body != nil && body.Status != messages.StatusCreated {
			c.log.WithFields(map[string]any{"status": body.Status}).Debug("success reported with non-201 status")
		}
		c.status = StatusSuccess
		c.result = &ResultMessage{Kind: ResultSuccess, Text: c.catalog.MessageFor(messages.StatusCreated)}
		c.data = validation.Form{}
		c.errors = validation.FieldErrors{}
		c.modalOpen = true
		return
	}

	status := messages.StatusRequestFailed
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	c.log.WithFields(map[string]any{"status": status}).Warn(err, "registration failed")

	c.status = StatusError
	c.result = &ResultMessage{Kind: ResultError, Text: c.catalog.MessageFor(status)}
	c.modalOpen = true
}

// Submit runs a full submission synchronously. It returns false when nothing
// was sent.
func (c *Controller) Submit(ctx context.Context, registrar Registrar) bool {
	payload, ok := c.OnSubmit()
	if !ok {
		return false
	}
	body, err := registrar.Register(ctx, payload)
	c.Complete(body, err)
	return true
}

// OnDismissResult closes the result modal and returns to idle.
func (c *Controller) OnDismissResult() {
	if c.status == StatusSubmitting {
		return
	}
	c.modalOpen = false
	c.result = nil
	c.status = StatusIdle
}

// Data returns the current form values.
func (c *Controller) Data() validation.Form {
	return c.data
}

// Errors returns a copy of the current field errors.
func (c *Controller) Errors() validation.FieldErrors {
	out := make(validation.FieldErrors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Status returns the submission lifecycle state.
func (c *Controller) Status() Status {
	return c.status
}

// Result returns the modal message, if any.
func (c *Controller) Result() (ResultMessage, bool) {
	if c.result == nil {
		return ResultMessage{}, false
	}
	return *c.result, true
}

// ModalOpen reports whether the result modal is showing.
func (c *Controller) ModalOpen() bool {
	return c.modalOpen
}

// Submitting reports whether a request is in flight.
func (c *Controller) Submitting() bool {
	return c.status == StatusSubmitting
}

// Catalog returns the messages the controller reports with.
func (c *Controller) Catalog() messages.Catalog {
	return c.catalog
}
