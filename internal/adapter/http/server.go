package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/couchcryptid/seismowatch/internal/board"
	"github.com/couchcryptid/seismowatch/internal/observability"
	"github.com/couchcryptid/seismowatch/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SocketPath is where pages open their live board socket.
const SocketPath = "/ws/board"

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// BoardMounter mounts a live board for the lifetime of one socket.
type BoardMounter interface {
	ReadinessChecker
	Mount(onChange func(board.Snapshot)) (*board.Board, func(), error)
}

// Options configures the HTTP server.
type Options struct {
	Addr          string
	DashboardPath string
	// Clock drives socket keepalive pings. Nil selects the real clock.
	Clock clockwork.Clock
}

// Server serves the landing page, the dashboard, the live board socket and
// the health, readiness and metrics endpoints.
type Server struct {
	httpServer    *http.Server
	boards        BoardMounter
	dashboardPath string
	upgrader      websocket.Upgrader
	clock         clockwork.Clock
	logger        *slog.Logger
	metrics       *observability.Metrics
}

// NewServer creates the HTTP server and its routes.
func NewServer(opts Options, boards BoardMounter, logger *slog.Logger, metrics *observability.Metrics) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	dashboardPath := opts.DashboardPath
	if dashboardPath == "" {
		dashboardPath = "/dashboard"
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		boards:        boards,
		dashboardPath: dashboardPath,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}

	r.Get("/", s.handleHome)
	r.Get(dashboardPath, s.handleDashboard)
	r.Get(SocketPath, s.handleBoardSocket)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(boards))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
// Hijacked socket connections are not tracked by the server; closing the
// board registry ends them.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, "SeismoWatch", view.PageShell(s.shellData()))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, "SeismoWatch Live Dashboard", view.DashboardPage(s.shellData()))
}

func (s *Server) shellData() view.ShellData {
	return view.ShellData{
		DashboardPath: s.dashboardPath,
		SocketPath:    SocketPath,
		Board:         board.SeedSnapshot(),
	}
}

// writePage renders into a buffer first so a render failure can still
// produce a clean 500.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(r.Context(), body)
	if err := view.Layout(title).Render(ctx, &buf); err != nil {
		s.logger.Error("render page failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
