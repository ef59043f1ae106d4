package appstate

import (
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
)

type componentStatus struct {
	Healthy   bool      `json:"healthy"`
	Ready     bool      `json:"ready"`
	LastCheck time.Time `json:"lastCheck,omitzero"`
	LastError string    `json:"lastError,omitempty"`
	Failures  int       `json:"consecutiveFailures,omitempty"`
	LatencyMS int64     `json:"latencyP99Ms,omitempty"`
}

type statusResponse struct {
	State      string                     `json:"state"`
	Uptime     string                     `json:"uptime"`
	StartTime  time.Time                  `json:"startTime"`
	UptimeSec  float64                    `json:"uptimeSeconds"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint.
// It fails when the application is not running or a health critical component
// reported an error on its last ping.
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "health check failed")

			return
		}

		if failing := failingComponents(appState.GetAllStats(), func(s *pinger.Statistics) bool {
			return s.IsHealthy
		}); len(failing) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "health check failed", "components", failing)

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "readiness check failed")

			return
		}

		if failing := failingComponents(appState.GetAllStats(), func(s *pinger.Statistics) bool {
			return s.IsReady
		}); len(failing) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "readiness check failed", "components", failing)

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()
		startTime := appState.GetStartTime()

		response := statusResponse{
			State:      string(state),
			Uptime:     uptime.String(),
			StartTime:  startTime,
			UptimeSec:  uptime.Seconds(),
			Components: toComponentStatuses(appState.GetAllStats()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.ErrorContext(ctx, "failed to encode status response",
				"reason", err,
			)

			return
		}

		log.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}

func failingComponents(stats map[string]*pinger.Statistics, ok func(*pinger.Statistics) bool) []string {
	var failing []string

	for _, name := range slices.Sorted(maps.Keys(stats)) {
		if s := stats[name]; s != nil && !ok(s) {
			failing = append(failing, name)
		}
	}

	return failing
}

func toComponentStatuses(stats map[string]*pinger.Statistics) map[string]componentStatus {
	if len(stats) == 0 {
		return nil
	}

	out := make(map[string]componentStatus, len(stats))

	for name, s := range stats {
		if s == nil {
			continue
		}

		cs := componentStatus{
			Healthy:   s.IsHealthy,
			Ready:     s.IsReady,
			LastCheck: s.LastRun,
			Failures:  s.ConsecutiveFailures,
			LatencyMS: s.Latency.P99.Milliseconds(),
		}

		if s.LastError != nil {
			cs.LastError = s.LastError.Error()
		}

		out[name] = cs
	}

	return out
}
