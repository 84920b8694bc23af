// Package mockhook is a local stand-in for the registration webhook. It
// answers with every status code the client knows how to explain, which makes
// it useful for manual testing and for exercising the API client.
package mockhook

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/signup/internal/logger"
	"github.com/alexisbeaulieu97/signup/internal/validation"
)

// Emails with these prefixes force server-side failures.
const (
	FailPrefix        = "fail500@"
	UnavailablePrefix = "down503@"
)

// Options configures a Server.
type Options struct {
	// Path is the route the webhook listens on. Defaults to "/webhook".
	Path string
	// Limit caps requests per process, malformed and rejected ones included;
	// 0 disables rate limiting.
	Limit  int
	Logger *logger.Logger
}

// Server is an in-memory registration endpoint.
type Server struct {
	path  string
	limit int
	log   *logger.Logger

	metrics *metrics

	mu         sync.Mutex
	requests   int
	registered map[string]struct{}
}

type registerBody struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// New returns a Server with no registered users.
func New(opts Options) *Server {
	path := opts.Path
	if path == "" {
		path = "/webhook"
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Server{
		path:       path,
		limit:      opts.Limit,
		log:        log.With("component", "mockhook"),
		metrics:    newMetrics(),
		registered: make(map[string]struct{}),
	}
}

// Handler returns the HTTP handler serving the webhook, a health probe and
// Prometheus metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	r.Post(s.path, s.handleRegister)

	return r
}

// Registered reports whether email has been accepted.
func (s *Server) Registered(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.registered[strings.ToLower(email)]
	return ok
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	log := s.log.With("request_id", r.Header.Get("X-Request-ID"))

	if !s.admit() {
		log.Info("rate limit exceeded")
		w.Header().Set("Retry-After", "60")
		s.respond(w, http.StatusTooManyRequests, map[string]any{"message": "too many requests"})
		return
	}

	var body registerBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&body); err != nil {
		log.Warn(err, "malformed registration body")
		s.respond(w, http.StatusBadRequest, map[string]any{"message": "malformed JSON body"})
		return
	}

	form := validation.Form{FullName: body.FullName, Email: body.Email, Password: body.Password}
	if errs := validation.ValidateForm(form); !errs.Empty() {
		fields := make(map[string]string, len(errs))
		for field, msg := range errs {
			fields[string(field)] = msg
		}
		s.respond(w, http.StatusBadRequest, map[string]any{"message": "invalid registration data", "errors": fields})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	switch {
	case strings.HasPrefix(email, FailPrefix):
		s.respond(w, http.StatusInternalServerError, map[string]any{"message": "internal error"})
		return
	case strings.HasPrefix(email, UnavailablePrefix):
		s.respond(w, http.StatusServiceUnavailable, map[string]any{"message": "service unavailable"})
		return
	}

	if !s.claim(email) {
		log.Info("duplicate registration")
		s.respond(w, http.StatusConflict, map[string]any{"message": "email already registered"})
		return
	}

	log.Info("registration stored")
	s.respond(w, http.StatusCreated, map[string]any{
		"message":   "user registered",
		"email":     email,
		"full_name": strings.TrimSpace(body.FullName),
	})
}

func (s *Server) admit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests++
	return s.limit <= 0 || s.requests <= s.limit
}

func (s *Server) claim(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registered[email]; exists {
		return false
	}
	s.registered[email] = struct{}{}
	s.metrics.setRegistered(len(s.registered))
	return true
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	s.metrics.observeResponse(status)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
