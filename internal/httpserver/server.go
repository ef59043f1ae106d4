package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/appstate"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown"
)

// Server serves the health endpoints and the REST API.
type Server struct {
	*listener
	appState appstater
	api      routeMounter
}

// New creates a new HTTP server instance. api may be nil, then only the
// health endpoints are served.
func New(logger *slog.Logger, appState appstater, port string, api routeMounter) *Server {
	if port == "" {
		port = defaultPort
	}

	return &Server{
		listener: newListener(logger, "http-server", port),
		appState: appState,
		api:      api,
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

func (s *Server) Name() string {
	return s.name
}

// Handler builds the router with the health and API routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", appstate.HandleStatus(s.logger, s.appState))

	if s.api != nil {
		router.Route(apiPrefix, func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(middleware.RequestSize(maxBodyBytes))
			s.api.Mount(r)
		})
	}

	return router
}

// Start binds the port and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	return s.start(ctx, s.Handler())
}

// Ready is closed once the server is serving.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Ping returns nil while the server is serving.
func (s *Server) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.shutdown(ctx)
}
