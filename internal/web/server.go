// Package web serves the salary dashboard over HTTP.
//
// Every request rebuilds the dashboard model from the query string, so the
// page, the chart images and the API all reflect the same selection without
// any server-side session.
package web

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/config"
	"github.com/fr4nk3nst1ner/salarydash/internal/dashboard"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
)

const shutdownTimeout = 10 * time.Second

// Server renders the dashboard for one loaded dataset.
type Server struct {
	store  *dataset.Store
	cfg    *config.AppConfig
	opts   dashboard.Options
	logger *pterm.Logger
}

// NewServer returns a server over store. A nil logger logs nowhere.
func NewServer(store *dataset.Store, cfg *config.AppConfig, logger *pterm.Logger) *Server {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Server{store: store, cfg: cfg, opts: cfg.DashboardOptions(), logger: logger}
}

// Handler returns the routes of the dashboard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/chart/", s.handleChart)

	// Protected when credentials are configured
	mux.HandleFunc("/api/dashboard", s.basicAuth(s.handleAPIDashboard))
	mux.HandleFunc("/api/records", s.basicAuth(s.handleAPIRecords))
	mux.HandleFunc("/export.csv", s.basicAuth(s.handleExport))

	return s.requestLogger(mux)
}

// Run listens on the configured port until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	if s.cfg.Server.AuthEnabled() {
		s.logger.Info("web server listening", s.logger.Args("url", "http://localhost"+srv.Addr, "api_auth", "enabled"))
	} else {
		s.logger.Warn("web server listening with a public API, set WEB_USERNAME and WEB_PASSWORD to protect it",
			s.logger.Args("url", "http://localhost"+srv.Addr))
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// basicAuth wraps next with HTTP Basic Authentication. Without configured
// credentials it returns next unchanged.
func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	username := s.cfg.Server.Username
	password := s.cfg.Server.Password
	if !s.cfg.Server.AuthEnabled() {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="Salary Dashboard"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		s.logger.Debug("request", s.logger.Args(
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"latency", time.Since(start).String(),
		))
	})
}
