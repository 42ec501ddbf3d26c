// SPDX-License-Identifier: AGPL-3.0-or-later

package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// vectorTopK is how many vector matches are folded into the prompt.
const vectorTopK = 5

// ContextRequest is the payload accepted by POST /process-context. The
// relationship and issue entries are opaque: they are forwarded into the
// prompt exactly as received.
type ContextRequest struct {
	DependencyGraph DependencyGraph   `json:"dependency_graph"`
	VectorDBQuery   string            `json:"vector_db_query"`
	JiraContext     []json.RawMessage `json:"jira_context"`
}

// DependencyGraph is the relationship section of a context request.
type DependencyGraph struct {
	Relationships []json.RawMessage `json:"relationships"`
}

// ContextResponse carries the generated feature text back to the caller.
type ContextResponse struct {
	Features string `json:"features"`
}

// Server relays analysis context to the upstream generation service. The
// upstream client is built on first use, so constructing a Server and
// serving health checks never needs credentials.
type Server struct {
	cfg Config
	log *slog.Logger

	once     sync.Once
	upstream Upstream
}

// NewServer builds a relay server. A nil logger falls back to the default.
func NewServer(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cfg: cfg, log: log}
}

func (s *Server) client() Upstream {
	s.once.Do(func() {
		if s.upstream == nil {
			s.upstream = NewClient(s.cfg)
		}
	})
	return s.upstream
}

// Routes returns the relay's HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/process-context", s.handleProcessContext)
	return r
}

// ListenAndServe runs the relay on addr until ctx is cancelled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.Info("relay listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "BDD generation relay is running"})
}

func (s *Server) handleProcessContext(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Validate(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	var req ContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ctx := r.Context()
	matches, err := s.client().QueryVectors(ctx, req.VectorDBQuery, vectorTopK)
	if err != nil {
		s.log.Error("vector query failed", "error", err)
		writeError(w, http.StatusBadGateway, "vector query failed")
		return
	}

	prompt, err := buildPrompt(req, matches)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	features, err := s.client().Generate(ctx, s.cfg.model(), prompt)
	if err != nil {
		s.log.Error("generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "generation failed")
		return
	}

	s.log.Info("context processed",
		"relationships", len(req.DependencyGraph.Relationships),
		"matches", len(matches))
	writeJSON(w, http.StatusOK, ContextResponse{Features: features})
}

// buildPrompt folds the relationships, vector matches and issue context
// into a single generation prompt.
func buildPrompt(req ContextRequest, matches []string) (string, error) {
	combined := map[string]any{
		"dependency_graph": req.DependencyGraph.Relationships,
		"vector_context":   matches,
		"jira_context":     req.JiraContext,
	}
	data, err := json.MarshalIndent(combined, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding combined context: %w", err)
	}
	return "Generate BDD feature files for the following context:\n" + string(data), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
