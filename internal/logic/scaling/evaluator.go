package scaling

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

const (
	defaultEvaluationInterval = 30 * time.Second
	defaultMinInstances       = 1
	defaultMaxInstances       = 10
)

// EvaluatorOptions tunes the evaluation loop and the bounds used by manual overrides of
// services without a policy.
type EvaluatorOptions struct {
	Interval            time.Duration
	DefaultMinInstances int
	DefaultMaxInstances int
}

func (o EvaluatorOptions) withDefaults() EvaluatorOptions {
	if o.Interval <= 0 {
		o.Interval = defaultEvaluationInterval
	}

	if o.DefaultMinInstances < 1 {
		o.DefaultMinInstances = defaultMinInstances
	}

	if o.DefaultMaxInstances < o.DefaultMinInstances {
		o.DefaultMaxInstances = max(defaultMaxInstances, o.DefaultMinInstances)
	}

	return o
}

// Evaluator periodically checks every enabled policy and dispatches scaling actions.
type Evaluator struct {
	logger     *slog.Logger
	registry   *Registry
	source     MetricSource
	instances  InstanceCounter
	dispatcher Dispatcher
	opts       EvaluatorOptions
	now        func() time.Time

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool

	mu                sync.RWMutex
	lastAction        map[string]time.Time
	lastEvaluationEnd time.Time
}

// NewEvaluator creates a scaling evaluator.
func NewEvaluator(
	logger *slog.Logger,
	registry *Registry,
	source MetricSource,
	instances InstanceCounter,
	dispatcher Dispatcher,
	opts EvaluatorOptions,
) *Evaluator {
	return &Evaluator{
		logger:     logger.With("component", "scaling-evaluator"),
		registry:   registry,
		source:     source,
		instances:  instances,
		dispatcher: dispatcher,
		opts:       opts.withDefaults(),
		now:        time.Now,
		ready:      make(chan struct{}),
		doneCh:     make(chan struct{}),
		lastAction: make(map[string]time.Time),
	}
}

// SetClock replaces the time source. Intended for tests.
func (e *Evaluator) SetClock(now func() time.Time) {
	e.now = now
}

// Name returns the component name.
func (e *Evaluator) Name() string {
	return "scaling-evaluator"
}

// Start runs the evaluation loop in a goroutine.
func (e *Evaluator) Start(ctx context.Context) error {
	if e.inShutdown.Load() {
		e.logger.InfoContext(ctx, "scaling evaluator is shutting down, skipping start")

		return nil
	}

	e.started.Store(true)

	go e.RunCommand(ctx)

	return nil
}

// Ready returns a channel closed once the loop runs.
func (e *Evaluator) Ready() <-chan struct{} {
	return e.ready
}

// Ping fails when the loop has not completed a tick for two intervals.
func (e *Evaluator) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.ready:
		age := e.lastEvaluationAge()
		if age > 2*e.opts.Interval {
			return fmt.Errorf("last evaluation was too long ago: %s", age.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("scaling evaluator is not ready")
	}
}

// Shutdown waits for the evaluation loop to exit after its context is cancelled.
func (e *Evaluator) Shutdown(ctx context.Context) error {
	if !e.inShutdown.CompareAndSwap(false, true) {
		e.logger.ErrorContext(ctx, "scaling evaluator is already shutting down, skipping shutdown")

		return nil
	}

	if !e.started.Load() {
		return nil
	}

	e.logger.InfoContext(ctx, "shutting down scaling evaluator")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before evaluation loop exited: %w", ctx.Err())
	case <-e.doneCh:
		e.logger.InfoContext(ctx, "evaluation loop exited")
	}

	return nil
}

// RunCommand evaluates all policies every interval until ctx is done.
func (e *Evaluator) RunCommand(ctx context.Context) {
	defer close(e.doneCh)

	logger := e.logger.With("evaluator", "RunCommand")

	ticker := time.NewTicker(e.opts.Interval)
	defer ticker.Stop()

	close(e.ready)
	e.setLastEvaluationEnd()

	for {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating evaluation loop")

			return
		}

		if e.inShutdown.Load() {
			logger.InfoContext(ctx, "shutdown requested, terminating evaluation loop")

			return
		}

		e.EvaluateCommand(ctx)
		e.setLastEvaluationEnd()
	}
}

// EvaluateCommand runs one tick over every enabled policy in registration order.
// It returns the number of dispatched actions.
func (e *Evaluator) EvaluateCommand(ctx context.Context) int {
	dispatched := 0

	for _, p := range e.registry.GetAllPolicies() {
		if !p.Enabled {
			continue
		}

		select {
		case <-ctx.Done():
			return dispatched
		default:
		}

		ok, err := e.safeEvaluate(ctx, p)
		if err != nil {
			metrics.RecordEvaluationError(p.ID)
			e.logger.ErrorContext(ctx, "evaluate policy error",
				"policy_id", p.ID,
				"service", p.TargetService,
				"reason", err,
			)

			continue
		}

		if ok {
			dispatched++
		}
	}

	return dispatched
}

func (e *Evaluator) safeEvaluate(ctx context.Context, p Policy) (dispatched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.ErrorContext(ctx, "policy evaluation panicked",
				"policy_id", p.ID,
				"reason", r,
				"stack", string(debug.Stack()),
			)

			dispatched = false
			err = fmt.Errorf("policy evaluation panicked: %v", r)
		}
	}()

	return e.evaluatePolicy(ctx, p)
}

func (e *Evaluator) evaluatePolicy(ctx context.Context, p Policy) (bool, error) {
	logger := e.logger.With("policy_id", p.ID, "service", p.TargetService)
	now := e.now()

	if last, ok := e.lastActionAt(p.ID); ok && now.Sub(last) < p.Cooldown() {
		logger.DebugContext(ctx, "policy in cooldown", "remaining", p.Cooldown()-now.Sub(last))

		return false, nil
	}

	if e.dispatcher.InFlight(p.TargetService) {
		logger.DebugContext(ctx, "scaling action in flight, skipping policy")

		return false, nil
	}

	current := e.instances.GetServiceInstanceCount(p.TargetService)
	tr := metricstore.Last(now, p.Window())

	var (
		direction Direction
		window    []metricstore.Point
		threshold float64
	)

	if current < p.MaxInstances {
		window = e.window(p.ScaleUpMetric, p.MetricTags, tr)
		if p.breached(DirectionScaleUp, window) {
			direction, threshold = DirectionScaleUp, p.ScaleUpThreshold
		}
	}

	if direction == "" && current > p.MinInstances {
		window = e.window(p.ScaleDownMetric, p.MetricTags, tr)
		if p.breached(DirectionScaleDown, window) {
			direction, threshold = DirectionScaleDown, p.ScaleDownThreshold
		}
	}

	if direction == "" {
		return false, nil
	}

	observed, err := metricstore.Aggregate(window, metricstore.AggregationAvg)
	if err != nil {
		return false, fmt.Errorf("aggregate window: %w", err)
	}

	target := p.Target(direction, current, observed)
	if target == current {
		logger.DebugContext(ctx, "target equals current instance count", "current", current)

		return false, nil
	}

	action := Action{
		ID:               uuid.NewString(),
		PolicyID:         p.ID,
		Service:          p.TargetService,
		Direction:        direction,
		CurrentInstances: current,
		TargetInstances:  target,
		Reason: fmt.Sprintf("%s over last %d periods crossed %v (avg %.2f)",
			metricFor(p, direction), p.EvaluationPeriods, threshold, observed),
		Timestamp: now,
		Status:    ActionStatusPending,
	}

	// cooldown starts at trigger time, a failed action still blocks the policy
	e.setLastAction(p.ID, now)

	if err := e.dispatcher.Execute(ctx, action); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDispatch, err)
	}

	logger.InfoContext(ctx, "scaling action dispatched",
		"action_id", action.ID,
		"action", action.Direction,
		"current", current,
		"target", target,
	)

	return true, nil
}

func (e *Evaluator) window(metric string, tags map[string]string, tr metricstore.TimeRange) []metricstore.Point {
	return e.source.QueryMetrics(metricstore.Query{Name: metric, Range: tr, Tags: tags})
}

// breached applies the custom predicate when present, otherwise requires every one of the
// most recent EvaluationPeriods samples to cross the threshold.
func (p Policy) breached(direction Direction, window []metricstore.Point) bool {
	if p.CustomConditions != nil {
		predicate := p.CustomConditions.ScaleDown
		if direction == DirectionScaleUp {
			predicate = p.CustomConditions.ScaleUp
		}

		if predicate != nil {
			return predicate(window)
		}
	}

	if len(window) < p.EvaluationPeriods {
		return false
	}

	for _, point := range window[len(window)-p.EvaluationPeriods:] {
		if direction == DirectionScaleUp && point.Value <= p.ScaleUpThreshold {
			return false
		}

		if direction == DirectionScaleDown && point.Value >= p.ScaleDownThreshold {
			return false
		}
	}

	return true
}

func metricFor(p Policy, direction Direction) string {
	if direction == DirectionScaleUp {
		return p.ScaleUpMetric
	}

	return p.ScaleDownMetric
}

func (e *Evaluator) lastActionAt(policyID string) (time.Time, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	t, ok := e.lastAction[policyID]

	return t, ok
}

func (e *Evaluator) setLastAction(policyID string, t time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastAction[policyID] = t
}

func (e *Evaluator) lastEvaluationAge() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.now().Sub(e.lastEvaluationEnd)
}

func (e *Evaluator) setLastEvaluationEnd() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastEvaluationEnd = e.now()
}
