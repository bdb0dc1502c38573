// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the agent over a JSON HTTP API: one endpoint to
// query the agent, one for direct research-paper search, and endpoints
// describing the available tools.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/pdiddy/research-agent/internal/agent"
	"github.com/pdiddy/research-agent/internal/history"
	"github.com/pdiddy/research-agent/internal/knowledge"
	"github.com/pdiddy/research-agent/pkg/types"
)

// shutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
const shutdownTimeout = 30 * time.Second

// Server serves the agent API. The agent pipeline is stateless and the
// configuration is read-only, so handlers are safe for concurrent use.
type Server struct {
	agent  *agent.Agent
	hist   *history.Store
	cfg    types.ServerConfig
	router *mux.Router
}

// agentRequest is the body of POST /api/agent.
type agentRequest struct {
	Query string `json:"query"`
}

// searchRequest is the body of POST /api/search.
type searchRequest struct {
	Query            string `json:"query"`
	MaxResults       int    `json:"max_results"`
	IncludeAbstracts *bool  `json:"include_abstracts"`
}

// New builds a server around an agent. hist may be nil; interaction
// recording is then disabled.
func New(a *agent.Agent, hist *history.Store, cfg types.ServerConfig) *Server {
	s := &Server{agent: a, hist: hist, cfg: cfg, router: mux.NewRouter()}
	s.routes()
	return s
}

// Router returns the HTTP handler, exposed for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(loggingMiddleware)
	api.Use(corsMiddleware)

	api.HandleFunc("", s.handleInfo).Methods(http.MethodGet)
	api.HandleFunc("/agent", s.handleAgent).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/tools", s.handleTools).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

// Run serves until the context is cancelled or SIGINT/SIGTERM arrives,
// then drains in-flight requests with a bounded timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving agent API on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	case <-ctx.Done():
	}

	log.Println("shutting down")
	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(drainCtx)
}

// handleInfo serves the API welcome and endpoint map.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the AI Agent API",
		"endpoints": map[string]string{
			"/api/agent":  "Submit a query to the agent",
			"/api/search": "Search for research papers",
			"/api/tools":  "Get information about available tools",
			"/api/health": "Liveness probe",
		},
	})
}

// handleAgent answers one agent query and records it in the history when
// a store is configured. Recording failures never fail the request.
func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	var req agentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	category, response := s.agent.Respond(r.Context(), req.Query)

	if s.hist != nil {
		if _, err := s.hist.Record(r.Context(), category, req.Query, response); err != nil {
			log.Printf("warning: recording interaction: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

// handleSearch runs one research-paper search and returns display-shaped
// entries.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	cfg := s.agent.Config.Knowledge
	cfg.MaxResults = req.MaxResults
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	includeAbstracts := true
	if req.IncludeAbstracts != nil {
		includeAbstracts = *req.IncludeAbstracts
	}

	rs := s.agent.SearchKnowledge(r.Context(), req.Query, cfg)
	writeJSON(w, http.StatusOK, map[string]any{
		"results": knowledge.FormatEntries(rs, includeAbstracts),
	})
}

// handleTools serves the tool inventory and availability flags.
func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.agent.Tools())
}

// handleHealth serves the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("warning: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// loggingMiddleware logs one line per request with its duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%v)", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// corsMiddleware allows cross-origin access from the browser UI and
// answers preflight requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
