package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/signup/internal/logger"
)

const (
	// DefaultTimeout bounds a single registration request.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the transport; its Timeout is replaced by Timeout.
	HTTPClient *http.Client
	Logger     *logger.Logger
	// NewRequestID defaults to a random UUID.
	NewRequestID func() string
}

// Client posts registrations to a single webhook endpoint. It never retries
// and never caches.
type Client struct {
	baseURL      string
	http         *http.Client
	log          *logger.Logger
	newRequestID func() string
}

// New builds a Client from opts.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := &http.Client{}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		hc = &copied
	}
	hc.Timeout = timeout

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	newID := opts.NewRequestID
	if newID == nil {
		newID = func() string { return uuid.NewString() }
	}

	return &Client{
		baseURL:      opts.BaseURL,
		http:         hc,
		log:          log.With("component", "api"),
		newRequestID: newID,
	}
}

// Register submits one registration. Any returned error is an *Error.
func (c *Client) Register(ctx context.Context, payload RegisterRequest) (*SuccessBody, error) {
	requestID := c.newRequestID()
	log := c.log.With("request_id", requestID)

	req, err := c.buildRequest(ctx, payload, requestID)
	if err != nil {
		log.Error(err, "could not build registration request")
		return nil, &Error{Status: StatusRequestFailed, Message: "could not build request", Err: err}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithFields(map[string]any{"duration_ms": time.Since(started).Milliseconds()}).
			Warn(err, "registration request got no response")
		return nil, &Error{Status: StatusNoResponse, Message: "no response from server", Err: err}
	}
	defer resp.Body.Close()

	data, message := decodeBody(resp.Body)
	log = log.WithFields(map[string]any{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if message == "" {
			message = "server error"
		}
		log.Info("registration rejected by server")
		var payloadData any
		if data != nil {
			payloadData = data
		}
		return nil, &Error{Status: resp.StatusCode, Message: message, Data: payloadData}
	}

	log.Info("registration accepted")
	return &SuccessBody{Status: resp.StatusCode, Message: message, Data: data}, nil
}

func (c *Client) buildRequest(ctx context.Context, payload RegisterRequest, requestID string) (*http.Request, error) {
	endpoint, err := url.Parse(strings.TrimSpace(c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q must use http or https", c.baseURL)
	}
	if endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", c.baseURL)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	return req, nil
}

// decodeBody reads a JSON object body, tolerating empty or non-JSON content.
func decodeBody(r io.Reader) (map[string]any, string) {
	raw, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil, ""
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ""
	}

	message, _ := data["message"].(string)
	return data, message
}
