package metricstore

import (
	"fmt"
	"math"
)

// Aggregate reduces points with agg. An empty set yields 0 for every aggregation.
func Aggregate(points []Point, agg Aggregation) (float64, error) {
	if !agg.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAggregation, agg)
	}

	if len(points) == 0 {
		return 0, nil
	}

	switch agg {
	case AggregationCount:
		return float64(len(points)), nil
	case AggregationSum:
		return sum(points), nil
	case AggregationAvg:
		return sum(points) / float64(len(points)), nil
	case AggregationMin:
		result := math.Inf(1)
		for _, p := range points {
			result = math.Min(result, p.Value)
		}

		return result, nil
	case AggregationMax:
		result := math.Inf(-1)
		for _, p := range points {
			result = math.Max(result, p.Value)
		}

		return result, nil
	}

	return 0, nil
}

// Valid reports whether agg is a known aggregation.
func (a Aggregation) Valid() bool {
	switch a {
	case AggregationSum, AggregationAvg, AggregationMin, AggregationMax, AggregationCount:
		return true
	}

	return false
}

func sum(points []Point) float64 {
	var total float64
	for _, p := range points {
		total += p.Value
	}

	return total
}
