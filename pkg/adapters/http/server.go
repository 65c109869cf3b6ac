package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/araignee/internal/presentation/graph"
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tree defines what the server needs from a running tree.
// *araignee.Tree satisfies it.
type Tree interface {
	Snapshot() domain.Snapshot
	Fire(ev domain.Event) error
	Ticks() int
}

// TreeResponse is the body of GET /tree.
type TreeResponse struct {
	Name  string          `json:"name,omitempty"`
	Ticks int             `json:"ticks"`
	Root  domain.Snapshot `json:"root"`
}

// EventResponse is the body of POST /tree/{event}.
type EventResponse struct {
	Event domain.Event          `json:"event"`
	State domain.LifecycleState `json:"state"`
}

// Server exposes a tree for introspection.
type Server struct {
	Tree     Tree
	Name     string
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithName sets the tree name reported by GET /tree.
func WithName(name string) Option {
	return func(s *Server) {
		s.Name = name
	}
}

// WithGatherer sets the registry served on /metrics.
// By default prometheus.DefaultGatherer is used.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the tree.
func NewHandler(tree Tree, opts ...Option) http.Handler {
	s := &Server{
		Tree:     tree,
		gatherer: prometheus.DefaultGatherer,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/tree", s.GetTree)
	r.Get("/tree/graph", s.GetGraph)
	r.Get("/tree/nodes/{id}", s.GetNode)
	r.Post("/tree/{event}", s.PostEvent)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
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

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetTree handles GET /tree.
func (s *Server) GetTree(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, TreeResponse{
		Name:  s.Name,
		Ticks: s.Tree.Ticks(),
		Root:  s.Tree.Snapshot(),
	})
}

// GetNode handles GET /tree/nodes/{id}.
func (s *Server) GetNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	node, ok := s.Tree.Snapshot().Find(id)
	if !ok {
		http.Error(w, fmt.Sprintf("node %q not found", id), http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, node)
}

// GetGraph handles GET /tree/graph. With ?responses=true nodes are colored
// by their last response; ?current=<id> highlights a node.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.Overlay
	query := r.URL.Query()
	if raw := query.Get("responses"); raw != "" || query.Get("current") != "" {
		responses, err := strconv.ParseBool(raw)
		if raw != "" && err != nil {
			http.Error(w, "invalid responses flag", http.StatusBadRequest)
			return
		}
		overlay = &graph.Overlay{Responses: responses, Current: query.Get("current")}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(graph.GenerateMermaid(s.Tree.Snapshot(), overlay))); err != nil {
		s.logger.Error("GetGraph write failed", "error", err)
	}
}

// PostEvent handles POST /tree/{event}.
func (s *Server) PostEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := domain.ParseEvent(chi.URLParam(r, "event"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.Tree.Fire(ev); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidState):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrInvalidArgument):
			status = http.StatusBadRequest
		}
		if status == http.StatusInternalServerError {
			s.logger.Error("PostEvent failed", "event", ev, "error", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	s.writeJSON(w, http.StatusOK, EventResponse{Event: ev, State: s.Tree.Snapshot().State})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
