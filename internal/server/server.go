// Package server exposes floor plan synthesis, column generation and
// project editing over HTTP.
//
// Routes are served by a chi router. Stateless endpoints run the pipeline
// directly; project endpoints read and write a [store.Store]. Live drag
// editing streams pointer events over a websocket into an [editor.Editor].
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/floorsmith/pkg/buildinfo"
	"github.com/matzehuels/floorsmith/pkg/cache"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/store"
)

// Server serves the floorsmith HTTP API.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger

	// mu serializes read-modify-write cycles on projects.
	mu sync.Mutex
}

// New creates a server over s and r. A nil logger discards output.
func New(s store.Store, r *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if r == nil {
		r = pipeline.NewRunner(nil, nil, logger)
	}
	return &Server{store: s, runner: r, logger: logger}
}

// Open builds a server from cfg, connecting the configured store and cache.
func Open(ctx context.Context, cfg Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		s   store.Store
		err error
	)
	switch cfg.Store {
	case StoreSQLite:
		s, err = store.OpenSQLite(ctx, cfg.SQLitePath)
	case StoreMongo:
		s, err = store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		s = store.NewMemoryStore()
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	var c cache.Cache
	if cfg.RedisAddr != "" {
		c, err = cache.NewRedisCache(ctx, cfg.RedisAddr, "floorsmith:")
	} else {
		c, err = cache.NewMemoryCache(cfg.CacheSize)
	}
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	// Redis may outlive a deploy; keys are scoped by release so a new
	// renderer never serves artifacts drawn by an old one.
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")

	logger.Info("server configured", "store", cfg.Store, "redis", cfg.RedisAddr != "", "cache_size", cfg.CacheSize)
	return New(s, pipeline.NewRunner(c, keyer, logger), logger), nil
}

// Close releases the store and the runner's cache.
func (s *Server) Close() error {
	rerr := s.runner.Close()
	if err := s.store.Close(); err != nil {
		return err
	}
	return rerr
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/plans", s.handleGeneratePlan)
		r.Post("/plans/variants", s.handleVariants)
		r.Post("/columns", s.handleColumns)
		r.Get("/palette", s.handlePalette)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Post("/", s.handleCreateProject)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetProject)
				r.Delete("/", s.handleDeleteProject)
				r.Get("/svg", s.handleProjectSVG)
				r.Get("/edit", s.handleEdit)
				r.Post("/rooms", s.handleDropRoom)
				r.Delete("/rooms/{roomID}", s.handleDeleteRoom)
			})
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// logRequests logs one line per request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}
