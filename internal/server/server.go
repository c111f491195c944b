// Package server exposes the read-only dashboard API over HTTP:
// decision listing, per-decision explanation, agent summaries, and the
// natural-language ask endpoint.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/nlaakso/agentpulse/internal/cache"
	"github.com/nlaakso/agentpulse/internal/config"
	"github.com/nlaakso/agentpulse/internal/enrich"
	"github.com/nlaakso/agentpulse/internal/generate"
	"github.com/nlaakso/agentpulse/internal/model"
	"github.com/nlaakso/agentpulse/internal/rng"
)

// Name and Version identify the service in health and version output.
const (
	Name    = "agentpulse"
	Version = "0.3.0"
)

// Server serves the dashboard API. All state behind mu can be swapped
// by hot-reload; request handlers take a snapshot before doing work.
type Server struct {
	mu      sync.RWMutex
	cfg     config.Config
	results *cache.Store

	cfgPath string
	start   time.Time
	srv     *http.Server
}

// New creates a server from a validated config. configPath may be empty
// when the config did not come from a file; hot-reload is then a no-op.
func New(cfg config.Config, configPath string) *Server {
	s := &Server{
		cfg:     cfg,
		results: cache.New(cfg.CacheTTL(), cfg.CacheStale()),
		cfgPath: configPath,
		start:   time.Now().UTC(),
	}
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the routed handler. Exposed for httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/decisions", s.handleDecisions)
	mux.HandleFunc("GET /api/decisions/{id}", s.handleExplain)
	mux.HandleFunc("GET /api/agents", s.handleAgents)
	mux.HandleFunc("POST /api/ask", s.handleAsk)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
	})
	return s.recovered(mux)
}

// Start begins listening. Blocks until context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.srv.Shutdown(shutdownCtx)
	}()

	err = s.srv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Reload atomically swaps in a freshly loaded config and a new result
// cache. A changed port takes effect on the next restart, not live.
// Called by the hot-reloader on file change.
func (s *Server) Reload() error {
	if s.cfgPath == "" {
		return nil
	}
	cfg, err := config.Load(s.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.results = cache.New(cfg.CacheTTL(), cfg.CacheStale())
	s.mu.Unlock()

	return nil
}

// snapshot returns the current config and cache under the read lock.
func (s *Server) snapshot() (config.Config, *cache.Store) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.results
}

// batch regenerates and enriches the full decision batch from the
// configured seed. Identical configs reproduce identical events and
// IDs; only the age-derived temporal figures track the wall clock.
func (s *Server) batch(cfg config.Config, now time.Time) []model.EnrichedDecision {
	src := rng.New(cfg.Seed)
	events := generate.Batch(src, generate.Config{
		Count:  cfg.BatchSize,
		Window: cfg.Window(),
		Now:    now,
	})
	return enrich.BatchWeighted(src, events, cfg.Trust, cfg.Risk, cfg.Window(), now)
}

// recovered converts handler panics into 500 JSON errors.
func (s *Server) recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, v)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
