package metricstore

import (
	"context"
	"maps"
	"time"
)

// Units used by the recording helpers.
const (
	UnitCount        = "count"
	UnitMilliseconds = "ms"
	UnitPercent      = "percent"
	UnitBytes        = "bytes"
	UnitValue        = "value"
)

// Point is a single timestamped, tagged observation. Points are immutable once recorded.
type Point struct {
	Name      string            `json:"name"`
	Value     float64           `json:"value"`
	Unit      string            `json:"unit"`
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// HasTags reports whether every key/value of want is present on the point.
func (p Point) HasTags(want map[string]string) bool {
	for k, v := range want {
		if p.Tags[k] != v {
			return false
		}
	}

	return true
}

// TimeRange is an inclusive timestamp filter. A zero bound is unbounded.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}

	if !r.To.IsZero() && t.After(r.To) {
		return false
	}

	return true
}

// Last returns the range covering the d preceding now.
func Last(now time.Time, d time.Duration) TimeRange {
	return TimeRange{From: now.Add(-d), To: now}
}

// Query selects points of one metric.
type Query struct {
	Name  string
	Range TimeRange
	Tags  map[string]string
}

// Aggregation is a reducer applied to a set of points.
type Aggregation string

const (
	AggregationSum   Aggregation = "sum"
	AggregationAvg   Aggregation = "avg"
	AggregationMin   Aggregation = "min"
	AggregationMax   Aggregation = "max"
	AggregationCount Aggregation = "count"
)

// Observer is notified synchronously of every recorded point. Implementations must be
// cheap and must not block.
type Observer interface {
	Observe(ctx context.Context, p Point)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, p Point)

func (f ObserverFunc) Observe(ctx context.Context, p Point) {
	f(ctx, p)
}

func cloneTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}

	return maps.Clone(tags)
}
