// Package server exposes the tokenizer and parser over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/dialects/oracle"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Config holds configuration for the API server.
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	MaxBodyBytes      int64
	MaxErrors         int
	Dialect           *dialect.Dialect
	Logger            *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	addr              string
	readHeaderTimeout time.Duration
	maxBodyBytes      int64
	maxErrors         int
	dialect           *dialect.Dialect
	logger            *slog.Logger
}

// New creates a server. Zero fields take defaults.
func New(cfg Config) *Server {
	s := &Server{
		addr:              cfg.Addr,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		maxBodyBytes:      cfg.MaxBodyBytes,
		maxErrors:         cfg.MaxErrors,
		dialect:           cfg.Dialect,
		logger:            cfg.Logger,
	}
	if s.addr == "" {
		s.addr = ":8080"
	}
	if s.readHeaderTimeout <= 0 {
		s.readHeaderTimeout = 10 * time.Second
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = 1 << 20
	}
	if s.maxErrors < 1 {
		s.maxErrors = 10
	}
	if s.dialect == nil {
		s.dialect = oracle.Oracle
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		s.requestLogger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/tokenize", s.handleTokenize)
		r.Post("/parse", s.handleParse)
		r.Post("/format", s.handleFormat)
		r.Post("/lint", s.handleLint)
		r.Get("/keywords", s.handleKeywords)
		r.Get("/grammar", s.handleGrammar)
		r.Get("/grammar/{rule}", s.handleGrammarRule)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errorBody{Message: "not found"})
	})
	return r
}

// requestLogger logs each request through the server's slog logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Serve starts the server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting API server", "addr", ln.Addr().String())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
