package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/executor"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to a status code and logs server side failures.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := errorStatus(err)
	requestID := middleware.GetReqID(r.Context())

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "api request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"traceID", requestID,
			"reason", err,
		)
	}

	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: requestID})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, alerting.ErrInvalidRule),
		errors.Is(err, scaling.ErrInvalidPolicy),
		errors.Is(err, scaling.ErrInvalidRequest),
		errors.Is(err, metricstore.ErrUnknownAggregation):
		return http.StatusBadRequest
	case errors.Is(err, alerting.ErrRuleNotFound),
		errors.Is(err, scaling.ErrPolicyNotFound),
		errors.Is(err, executor.ErrActionNotFound):
		return http.StatusNotFound
	case errors.Is(err, alerting.ErrRuleExists),
		errors.Is(err, scaling.ErrPolicyExists),
		errors.Is(err, scaling.ErrActionInFlight),
		errors.Is(err, scaling.ErrNoChange),
		errors.Is(err, executor.ErrServiceBusy):
		return http.StatusConflict
	case errors.Is(err, executor.ErrQueueFull),
		errors.Is(err, executor.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %w", errBadRequest, err)
	}

	return nil
}
