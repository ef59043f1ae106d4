package metricstore

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime/debug"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
)

const (
	defaultBufferSize         = 100
	defaultFlushInterval      = 10 * time.Second
	defaultRetention          = time.Hour
	defaultMaxPointsPerMetric = 10_000

	// initialRingAlloc caps the upfront allocation of a series' retained history.
	initialRingAlloc = 256

	flushRequestQueueSize = 128
)

const (
	flushTriggerSize   = "size"
	flushTriggerTimer  = "timer"
	flushTriggerManual = "manual"
)

// Options tunes buffering and retention.
type Options struct {
	BufferSize         int
	FlushInterval      time.Duration
	Retention          time.Duration
	MaxPointsPerMetric int
}

func (o Options) withDefaults() Options {
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}

	if o.FlushInterval <= 0 {
		o.FlushInterval = defaultFlushInterval
	}

	if o.Retention <= 0 {
		o.Retention = defaultRetention
	}

	if o.MaxPointsPerMetric <= 0 {
		o.MaxPointsPerMetric = defaultMaxPointsPerMetric
	}

	return o
}

type series struct {
	mu       sync.Mutex
	buffer   []Point
	retained *pointRing
}

// Store buffers recorded points per metric and keeps a bounded, time-limited history.
type Store struct {
	logger     *slog.Logger
	opts       Options
	now        func() time.Time
	mu         sync.RWMutex
	series     map[string]*series
	obsMu      sync.RWMutex
	observers  []Observer
	flushReq   chan string
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool
}

// New creates a metric store. Call Start to run the periodic flush loop.
func New(logger *slog.Logger, opts Options) *Store {
	return &Store{
		logger:   logger.With("component", "metric-store"),
		opts:     opts.withDefaults(),
		now:      time.Now,
		series:   make(map[string]*series),
		flushReq: make(chan string, flushRequestQueueSize),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// SetClock replaces the time source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// AddObserver registers an observer invoked synchronously on every recorded point.
func (s *Store) AddObserver(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.observers = append(s.observers, o)
}

// Name returns the component name.
func (s *Store) Name() string {
	return "metric-store"
}

// Record stores a point stamped with the current time. It never fails: invalid points
// are logged and dropped.
func (s *Store) Record(ctx context.Context, name string, value float64, unit string, tags map[string]string) {
	s.RecordPoint(ctx, Point{
		Name:  name,
		Value: value,
		Unit:  unit,
		Tags:  tags,
	})
}

// RecordPoint stores p, stamping it with the current time when its timestamp is zero.
func (s *Store) RecordPoint(ctx context.Context, p Point) {
	if err := validate(p); err != nil {
		s.logger.WarnContext(ctx, "dropping metric point", "metric", p.Name, "reason", err)
		metrics.RecordPointDropped(err.Error())

		return
	}

	if p.Timestamp.IsZero() {
		p.Timestamp = s.now()
	}

	p.Tags = cloneTags(p.Tags)

	ser := s.getOrCreate(p.Name)

	ser.mu.Lock()
	ser.buffer = append(ser.buffer, p)
	full := len(ser.buffer) >= s.opts.BufferSize
	ser.mu.Unlock()

	metrics.RecordPointRecorded()

	if full {
		s.requestFlush(ctx, p.Name)
	}

	s.notify(ctx, p)
}

// Increment records a counter point of 1.
func (s *Store) Increment(ctx context.Context, name string, tags map[string]string) {
	s.IncrementBy(ctx, name, 1, tags)
}

// IncrementBy records a counter point of value.
func (s *Store) IncrementBy(ctx context.Context, name string, value float64, tags map[string]string) {
	s.Record(ctx, name, value, UnitCount, tags)
}

// Gauge records an instantaneous value.
func (s *Store) Gauge(ctx context.Context, name string, value float64, unit string, tags map[string]string) {
	s.Record(ctx, name, value, unit, tags)
}

// Histogram records a distribution sample.
func (s *Store) Histogram(ctx context.Context, name string, value float64, tags map[string]string) {
	s.Record(ctx, name, value, UnitValue, tags)
}

// StartTimer returns a stop func that records the elapsed wall-clock time in milliseconds.
func (s *Store) StartTimer(ctx context.Context, name string, tags map[string]string) func() {
	start := s.now()
	tags = cloneTags(tags)

	var once sync.Once

	return func() {
		once.Do(func() {
			elapsed := s.now().Sub(start)
			s.Record(ctx, name, float64(elapsed)/float64(time.Millisecond), UnitMilliseconds, tags)
		})
	}
}

// GetMetrics returns the points of a metric inside tr, oldest first. Points that are
// still buffered are included.
func (s *Store) GetMetrics(name string, tr TimeRange) []Point {
	return s.QueryMetrics(Query{Name: name, Range: tr})
}

// QueryMetrics returns the points matching q, oldest first.
func (s *Store) QueryMetrics(q Query) []Point {
	s.mu.RLock()
	ser, ok := s.series[q.Name]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	ser.mu.Lock()
	points := ser.retained.all()
	points = append(points, ser.buffer...)
	ser.mu.Unlock()

	result := points[:0]

	for _, p := range points {
		if q.Range.Contains(p.Timestamp) && p.HasTags(q.Tags) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})

	return result
}

// GetAggregatedMetrics reduces the points of a metric inside tr.
func (s *Store) GetAggregatedMetrics(name string, agg Aggregation, tr TimeRange) (float64, error) {
	value, err := Aggregate(s.GetMetrics(name, tr), agg)
	if err != nil {
		return 0, fmt.Errorf("aggregate %s: %w", name, err)
	}

	return value, nil
}

// MetricNames returns the names of all known metrics, sorted.
func (s *Store) MetricNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.series))
	for name := range s.series {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Flush moves every buffer into retained history and applies retention.
func (s *Store) Flush(ctx context.Context) {
	s.flushAll(ctx, flushTriggerManual)
}

// Start runs the flush loop in a goroutine.
func (s *Store) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "metric store is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.run(ctx)

	return nil
}

// Ready returns a channel closed once the flush loop runs.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Ping reports whether the flush loop is running.
func (s *Store) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.doneCh:
		return fmt.Errorf("metric store flush loop exited")
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("metric store is not ready")
	}
}

// Shutdown waits for the flush loop to exit after its context is cancelled.
func (s *Store) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "metric store is already shutting down, skipping shutdown")

		return nil
	}

	if !s.started.Load() {
		return nil
	}

	s.logger.InfoContext(ctx, "shutting down metric store")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before flush loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "flush loop exited")
	}

	return nil
}

func (s *Store) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.opts.FlushInterval)
	defer ticker.Stop()

	close(s.ready)

	for {
		select {
		case <-ctx.Done():
			s.flushAll(context.WithoutCancel(ctx), flushTriggerTimer)
			s.logger.InfoContext(ctx, "terminating flush loop")

			return
		case name := <-s.flushReq:
			s.flushSeries(ctx, name, flushTriggerSize)
		case <-ticker.C:
			s.flushAll(ctx, flushTriggerTimer)
		}
	}
}

func (s *Store) requestFlush(ctx context.Context, name string) {
	select {
	case s.flushReq <- name:
	default:
		// the periodic flush picks the buffer up
		s.logger.DebugContext(ctx, "flush queue full, deferring to timer", "metric", name)
	}
}

func (s *Store) flushAll(ctx context.Context, trigger string) {
	for _, name := range s.MetricNames() {
		s.flushSeries(ctx, name, trigger)
	}
}

func (s *Store) flushSeries(ctx context.Context, name, trigger string) {
	s.mu.RLock()
	ser, ok := s.series[name]
	s.mu.RUnlock()

	if !ok {
		return
	}

	cutoff := s.now().Add(-s.opts.Retention)

	ser.mu.Lock()
	defer ser.mu.Unlock()

	evicted := 0

	for _, p := range ser.buffer {
		if ser.retained.add(p) {
			evicted++
		}
	}

	flushed := len(ser.buffer)
	ser.buffer = nil

	expired := ser.retained.retain(func(p Point) bool {
		return !p.Timestamp.Before(cutoff)
	})

	if evicted > 0 {
		metrics.RecordPointDropped("capacity")
	}

	metrics.RecordFlush(trigger)

	s.logger.DebugContext(ctx, "metric flushed",
		"metric", name,
		"trigger", trigger,
		"flushed", flushed,
		"expired", expired,
		"evicted", evicted,
		"retained", ser.retained.len(),
	)
}

func (s *Store) getOrCreate(name string) *series {
	s.mu.RLock()
	ser, ok := s.series[name]
	s.mu.RUnlock()

	if ok {
		return ser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ser, ok = s.series[name]; ok {
		return ser
	}

	ser = &series{retained: newPointRing(s.opts.MaxPointsPerMetric)}
	s.series[name] = ser

	return ser
}

func (s *Store) notify(ctx context.Context, p Point) {
	s.obsMu.RLock()
	observers := s.observers
	s.obsMu.RUnlock()

	for _, o := range observers {
		s.safeObserve(ctx, o, p)
	}
}

func (s *Store) safeObserve(ctx context.Context, o Observer, p Point) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "metric observer panicked",
				"metric", p.Name,
				"reason", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	o.Observe(ctx, p)
}

func validate(p Point) error {
	if p.Name == "" {
		return errEmptyName
	}

	if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
		return errInvalidValue
	}

	return nil
}
