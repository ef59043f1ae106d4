package httpserver

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

func (a *API) listMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"metrics": a.deps.Metrics.MetricNames()})
}

func (a *API) recordMetric(w http.ResponseWriter, r *http.Request) {
	var req recordMetricRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, a.logger, fmt.Errorf("%w: name is required", errBadRequest))

		return
	}

	if req.Value == nil || math.IsNaN(*req.Value) || math.IsInf(*req.Value, 0) {
		writeError(w, r, a.logger, fmt.Errorf("%w: value must be a finite number", errBadRequest))

		return
	}

	p := metricstore.Point{
		Name:  req.Name,
		Value: *req.Value,
		Unit:  req.Unit,
		Tags:  req.Tags,
	}

	if req.Timestamp != nil {
		p.Timestamp = *req.Timestamp
	}

	a.deps.Metrics.RecordPoint(r.Context(), p)

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (a *API) getMetric(w http.ResponseWriter, r *http.Request) {
	q, err := a.metricQuery(r)
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	points := a.deps.Metrics.QueryMetrics(q)
	if points == nil {
		points = []metricstore.Point{}
	}

	writeJSON(w, http.StatusOK, metricPointsResponse{Name: q.Name, Points: points})
}

func (a *API) aggregateMetric(w http.ResponseWriter, r *http.Request) {
	agg := metricstore.Aggregation(chi.URLParam(r, "aggregation"))

	q, err := a.metricQuery(r)
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	points := a.deps.Metrics.QueryMetrics(q)

	value, err := metricstore.Aggregate(points, agg)
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, aggregateResponse{
		Name:        q.Name,
		Aggregation: agg,
		Value:       value,
		Count:       len(points),
	})
}

// metricQuery reads the range from from/to (RFC 3339) or window (a duration ending
// now) and tag filters given as repeated tag=key:value parameters.
func (a *API) metricQuery(r *http.Request) (metricstore.Query, error) {
	values := r.URL.Query()
	q := metricstore.Query{Name: chi.URLParam(r, "name")}

	if window := values.Get("window"); window != "" {
		d, err := time.ParseDuration(window)
		if err != nil || d <= 0 {
			return q, fmt.Errorf("%w: window must be a positive duration", errBadRequest)
		}

		q.Range = metricstore.Last(a.now(), d)
	}

	for key, dst := range map[string]*time.Time{"from": &q.Range.From, "to": &q.Range.To} {
		raw := values.Get(key)
		if raw == "" {
			continue
		}

		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return q, fmt.Errorf("%w: %s must be an RFC 3339 time", errBadRequest, key)
		}

		*dst = t
	}

	if !q.Range.From.IsZero() && !q.Range.To.IsZero() && q.Range.To.Before(q.Range.From) {
		return q, fmt.Errorf("%w: to is before from", errBadRequest)
	}

	for _, tag := range values["tag"] {
		key, value, ok := strings.Cut(tag, ":")
		if !ok || key == "" {
			return q, fmt.Errorf("%w: tag must be key:value, got %q", errBadRequest, tag)
		}

		if q.Tags == nil {
			q.Tags = make(map[string]string)
		}

		q.Tags[key] = value
	}

	return q, nil
}
