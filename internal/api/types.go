package api

import "fmt"

// RegisterRequest is the JSON body posted to the registration webhook.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SuccessBody is the decoded 2xx response.
type SuccessBody struct {
	// Status is the HTTP status the server actually answered with.
	Status  int
	Message string
	// Data holds the full decoded JSON body, nil when the body was empty or not JSON.
	Data map[string]any
}

// Error is the normalized failure of a registration call.
//
// Status is the server's HTTP status when one was received, StatusNoResponse
// (0) when the request went out but nothing came back (network failure,
// timeout), or StatusRequestFailed (-1) when the request could not be built
// or sent at all.
type Error struct {
	Status  int
	Message string
	Data    any
	Err     error
}

const (
	StatusNoResponse    = 0
	StatusRequestFailed = -1
)

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("registration failed (status %d): %s", e.Status, e.Message)
}

// Unwrap exposes the transport or encoding error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
