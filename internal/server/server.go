// Package server provides the HTTP surface of the archive: DICOMweb-style query and frame
// routes, WADO-URI retrieval and a JSON management API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/kura/internal/config"
	"github.com/hyperjump/kura/internal/ingest"
	"github.com/hyperjump/kura/internal/metrics"
	"github.com/hyperjump/kura/internal/query"
	"github.com/hyperjump/kura/internal/retrieve"
	"github.com/hyperjump/kura/internal/storage"
)

// WatchService manages the drop folders watched for new files.
type WatchService interface {
	Directories() []string
	AddDirectory(path string, syncExisting bool) error
	RemoveDirectory(path string) error
}

// Server is the HTTP server for the archive.
type Server struct {
	engine    *query.Engine
	retriever *retrieve.Retriever
	pipeline  *ingest.Pipeline
	index     storage.Index
	cfg       *config.Config
	metrics   *metrics.Metrics
	logger    *zap.Logger

	watch      WatchService
	configPath string
	cfgMu      sync.Mutex

	server *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics exposes m on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithWatch enables the watch directory API. When configPath is set, directory changes are
// saved back to the config file.
func WithWatch(w WatchService, configPath string) Option {
	return func(s *Server) {
		s.watch = w
		s.configPath = configPath
	}
}

// NewServer creates a server with the given dependencies.
func NewServer(
	engine *query.Engine,
	retriever *retrieve.Retriever,
	pipeline *ingest.Pipeline,
	index storage.Index,
	cfg *config.Config,
	opts ...Option,
) *Server {
	s := &Server{
		engine:    engine,
		retriever: retriever,
		pipeline:  pipeline,
		index:     index,
		cfg:       cfg,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Imports can run far longer than a query.
		r.Post("/ingest", s.handleIngest)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Use(middleware.Compress(5, "application/json"))
			r.Post("/find", s.handleFind)
			r.Get("/status", s.handleStatus)
			r.Get("/watch/directories", s.handleWatchDirectoriesList)
			r.Post("/watch/directories", s.handleWatchDirectoriesAdd)
			r.Delete("/watch/directories", s.handleWatchDirectoriesRemove)
		})
	})

	for _, prefix := range []string{"", "/viewer"} {
		r.Route(prefix+"/rs", s.mountDICOMweb)
		r.Get(prefix+"/wadouri", s.handleWADOURI)
	}
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
