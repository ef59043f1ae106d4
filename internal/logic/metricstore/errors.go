package metricstore

import "errors"

var (
	// ErrUnknownAggregation is returned for an aggregation outside sum/avg/min/max/count.
	ErrUnknownAggregation = errors.New("unknown aggregation")

	errEmptyName    = errors.New("empty metric name")
	errInvalidValue = errors.New("value is not a finite number")
)
