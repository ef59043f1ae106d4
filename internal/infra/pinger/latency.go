package pinger

import (
	"math"
	"slices"
	"time"
)

// latencyWindowSize is the number of recent check latencies kept per component.
const latencyWindowSize = 64

// LatencySummary describes the recent check latencies of a component.
type LatencySummary struct {
	Count  int
	Median time.Duration
	P90    time.Duration
	P99    time.Duration
	Max    time.Duration
}

// latencyWindow keeps the last n latencies, overwriting the oldest. Not safe for
// concurrent use; the owning check guards it.
type latencyWindow struct {
	values []time.Duration
	next   int
	full   bool
}

func newLatencyWindow(n int) *latencyWindow {
	return &latencyWindow{values: make([]time.Duration, n)}
}

func (w *latencyWindow) add(d time.Duration) {
	w.values[w.next] = d
	w.next = (w.next + 1) % len(w.values)

	if w.next == 0 {
		w.full = true
	}
}

func (w *latencyWindow) snapshot() []time.Duration {
	if w.full {
		return slices.Clone(w.values)
	}

	return slices.Clone(w.values[:w.next])
}

func (w *latencyWindow) summary() LatencySummary {
	sorted := w.snapshot()
	if len(sorted) == 0 {
		return LatencySummary{}
	}

	slices.Sort(sorted)

	return LatencySummary{
		Count:  len(sorted),
		Median: percentile(sorted, 50),
		P90:    percentile(sorted, 90),
		P99:    percentile(sorted, 99),
		Max:    sorted[len(sorted)-1],
	}
}

// percentile returns the nearest-rank percentile p of sorted.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	rank = min(max(rank, 1), len(sorted))

	return sorted[rank-1]
}
