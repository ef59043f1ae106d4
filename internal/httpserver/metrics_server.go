package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown"
)

const defaultMetricsPort = "9090"

// MetricsServer exposes the process metrics for Prometheus on its own port.
type MetricsServer struct {
	*listener
	gatherer prometheus.Gatherer
}

func NewMetricsServer(logger *slog.Logger, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		listener: newListener(logger, "metrics-server", port),
		gatherer: prometheus.DefaultGatherer,
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

func (s *MetricsServer) Name() string {
	return s.name
}

// PingerCritical keeps a broken scrape endpoint from failing liveness.
func (s *MetricsServer) PingerCritical() bool {
	return false
}

// Handler serves GET /metrics.
func (s *MetricsServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	return router
}

func (s *MetricsServer) Start(ctx context.Context) error {
	return s.start(ctx, s.Handler())
}

func (s *MetricsServer) Ready() <-chan struct{} {
	return s.ready
}

func (s *MetricsServer) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.shutdown(ctx)
}
