// Package server is the local preview server: it serves the built site,
// rebuilds it when sources change, and tells open pages to reload.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/abbrtip/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory holding the built site
	AllowAll bool   // allow all CORS origins
}

// BuildFunc rebuilds the site from scratch, reloading definitions.
type BuildFunc func() (*site.Manifest, error)

// Server serves one built site and rebuilds it on demand.
type Server struct {
	cfg        Config
	build      BuildFunc
	hub        *Hub
	metrics    *metrics
	router     chi.Router
	httpServer *http.Server

	buildMu sync.Mutex
	last    *site.Manifest
}

// New creates a preview server. build may be nil when the site is static.
func New(cfg Config, build BuildFunc) *Server {
	s := &Server{
		cfg:     cfg,
		build:   build,
		metrics: newMetrics(),
	}
	s.hub = NewHub(s.metrics.reloadClients.Set)
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The websocket outlives any request timeout.
	r.Get("/livereload", s.hub.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Handle("/metrics", s.metrics.handler())
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// LastManifest returns the manifest of the latest successful build.
func (s *Server) LastManifest() *site.Manifest {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	return s.last
}

// Rebuild runs the build function. Concurrent calls are serialized.
func (s *Server) Rebuild() (*site.Manifest, error) {
	if s.build == nil {
		return nil, fmt.Errorf("server has no build function")
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	start := time.Now()
	m, err := s.build()
	s.metrics.buildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.builds.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.builds.WithLabelValues("ok").Inc()
	s.metrics.record(m)
	s.last = m
	return m, nil
}

// reload rebuilds and, on success, asks connected pages to refresh.
func (s *Server) reload() {
	m, err := s.Rebuild()
	if err != nil {
		log.Printf("server: rebuild failed: %v", err)
		return
	}
	n := s.hub.Broadcast(reloadMessage)
	log.Printf("server: rebuilt %d pages (%d markers), reloaded %d clients", len(m.Pages), m.TotalMarkers, n)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("abbrtip preview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes live reload clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
