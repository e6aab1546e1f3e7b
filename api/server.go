// Package api exposes the tariff and import tax calculators over HTTP.
// Handlers decode, validate at the boundary and delegate to core packages.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"cargo-cost/core/tariff"
	"cargo-cost/internal/config"
	cerrors "cargo-cost/internal/errors"
)

const maxBodyBytes = 1 << 20

// Options configure a Server
type Options struct {
	Version   string
	Catalog   *tariff.Catalog
	ImportTax config.ImportTaxConfig
	Logger    *zap.Logger
	Metrics   *Metrics
}

// Server is the API server
type Server struct {
	router    chi.Router
	version   string
	catalog   *tariff.Catalog
	importTax config.ImportTaxConfig
	logger    *zap.Logger
	metrics   *Metrics
}

// NewServer creates a server. A nil catalog uses the built-in tariff, a nil
// logger discards logs and nil metrics get a private registry.
func NewServer(opts Options) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		version:   opts.Version,
		catalog:   opts.Catalog,
		importTax: opts.ImportTax,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
	if s.catalog == nil {
		s.catalog = tariff.Default()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.importTax.FXRate.IsZero() {
		s.importTax = config.Default().ImportTax
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	r := s.router
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, cerrors.Newf(cerrors.TypeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, ErrorBody{Error: ErrorDetail{
			Code:      "METHOD_NOT_ALLOWED",
			Message:   r.Method + " not allowed on " + r.URL.Path,
			RequestID: RequestIDFromContext(r.Context()),
		}}, http.StatusMethodNotAllowed)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/charges", s.handleCharges)
		r.Post("/import-tax", s.handleImportTax)
		r.Get("/tariffs", s.handleTariffs)
		r.Get("/tariffs/{service}", s.handleTariff)
		r.Get("/hscodes", s.handleHSCodes)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr), zap.String("version", s.version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return cerrors.Wrap(cerrors.TypeInput, "invalid JSON body", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	detail := ErrorDetail{
		Code:      string(errorCode(err)),
		Message:   err.Error(),
		RequestID: RequestIDFromContext(r.Context()),
	}
	if e, ok := cerrors.As(err); ok {
		detail.Message = e.Message
		if e.Cause != nil {
			detail.Message += ": " + e.Cause.Error()
		}
		detail.Context = e.Context
	}
	s.writeJSON(w, ErrorBody{Error: detail}, statusFor(err))
}

func errorCode(err error) cerrors.Type {
	return cerrors.TypeOf(err)
}

// statusFor maps an error type onto an HTTP status
func statusFor(err error) int {
	switch cerrors.TypeOf(err) {
	case cerrors.TypeInput:
		return http.StatusBadRequest
	case cerrors.TypeUnknownCategory, cerrors.TypeUnknownSize:
		return http.StatusUnprocessableEntity
	case cerrors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
