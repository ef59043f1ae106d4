package executor

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

const (
	defaultMaxConcurrentActions = 5
	defaultQueueSize            = 100
	defaultActionRetention      = 60 * time.Second
	defaultShutdownGracePeriod  = 30 * time.Second
)

// Options tunes the worker pool and action bookkeeping.
type Options struct {
	MaxConcurrentActions int
	QueueSize            int
	ActionRetention      time.Duration
	ShutdownGracePeriod  time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConcurrentActions <= 0 {
		o.MaxConcurrentActions = defaultMaxConcurrentActions
	}

	if o.QueueSize <= 0 {
		o.QueueSize = defaultQueueSize
	}

	if o.ActionRetention <= 0 {
		o.ActionRetention = defaultActionRetention
	}

	if o.ShutdownGracePeriod <= 0 {
		o.ShutdownGracePeriod = defaultShutdownGracePeriod
	}

	return o
}

type entry struct {
	action     scaling.Action
	finishedAt time.Time
}

// Executor runs scaling actions against the orchestrator on a bounded worker pool.
type Executor struct {
	logger       *slog.Logger
	orchestrator Orchestrator
	registry     InstanceRegistry
	publisher    Publisher
	opts         Options
	now          func() time.Time

	queue      chan scaling.Action
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool

	mu       sync.RWMutex
	closed   bool
	actions  map[string]*entry
	inFlight map[string]string
}

var _ scaling.Dispatcher = (*Executor)(nil)

// New creates an executor. publisher may be nil.
func New(
	logger *slog.Logger,
	orchestrator Orchestrator,
	registry InstanceRegistry,
	publisher Publisher,
	opts Options,
) *Executor {
	opts = opts.withDefaults()

	return &Executor{
		logger:       logger.With("component", "action-executor"),
		orchestrator: orchestrator,
		registry:     registry,
		publisher:    publisher,
		opts:         opts,
		now:          time.Now,
		queue:        make(chan scaling.Action, opts.QueueSize),
		ready:        make(chan struct{}),
		doneCh:       make(chan struct{}),
		actions:      make(map[string]*entry),
		inFlight:     make(map[string]string),
	}
}

// SetClock replaces the time source. Intended for tests.
func (e *Executor) SetClock(now func() time.Time) {
	e.now = now
}

// Name returns the component name.
func (e *Executor) Name() string {
	return "action-executor"
}

// Execute enqueues a pending action and returns immediately.
func (e *Executor) Execute(ctx context.Context, action scaling.Action) error {
	if action.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidAction)
	}

	if action.TargetInstances < 0 {
		return fmt.Errorf("%w: negative target %d", ErrInvalidAction, action.TargetInstances)
	}

	if action.ID == "" {
		action.ID = uuid.NewString()
	}

	if action.Timestamp.IsZero() {
		action.Timestamp = e.now()
	}

	action.Status = scaling.ActionStatusPending
	action.Error = ""

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	if id, ok := e.inFlight[action.Service]; ok {
		return fmt.Errorf("%w: %s (action %s)", ErrServiceBusy, action.Service, id)
	}

	select {
	case e.queue <- action:
	default:
		return fmt.Errorf("%w: %s", ErrQueueFull, action.Service)
	}

	e.actions[action.ID] = &entry{action: action}
	e.inFlight[action.Service] = action.ID

	e.logger.DebugContext(ctx, "scaling action queued",
		"action_id", action.ID,
		"service", action.Service,
		"action", action.Direction,
	)

	return nil
}

// InFlight reports whether service has a pending or executing action.
func (e *Executor) InFlight(service string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, ok := e.inFlight[service]

	return ok
}

// GetActiveScalingActions returns pending and executing actions, oldest first.
func (e *Executor) GetActiveScalingActions() []scaling.Action {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]scaling.Action, 0, len(e.inFlight))

	for _, en := range e.actions {
		if !en.action.Status.Terminal() {
			out = append(out, en.action)
		}
	}

	sortActions(out)

	return out
}

// ListActions returns every retained action, oldest first.
func (e *Executor) ListActions() []scaling.Action {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]scaling.Action, 0, len(e.actions))
	for _, en := range e.actions {
		out = append(out, en.action)
	}

	sortActions(out)

	return out
}

// GetAction returns a retained action by id.
func (e *Executor) GetAction(id string) (scaling.Action, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	en, ok := e.actions[id]
	if !ok {
		return scaling.Action{}, fmt.Errorf("%w: %s", ErrActionNotFound, id)
	}

	return en.action, nil
}

// Start runs the dispatch loop in a goroutine.
func (e *Executor) Start(ctx context.Context) error {
	if e.inShutdown.Load() {
		e.logger.InfoContext(ctx, "executor is shutting down, skipping start")

		return nil
	}

	e.started.Store(true)

	go e.run(ctx)

	return nil
}

// Ready returns a channel closed once the dispatch loop runs.
func (e *Executor) Ready() <-chan struct{} {
	return e.ready
}

// Ping reports whether the dispatch loop is running.
func (e *Executor) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.doneCh:
		return fmt.Errorf("executor dispatch loop exited")
	case <-e.ready:
		return nil
	default:
		return fmt.Errorf("executor is not ready")
	}
}

// Shutdown waits for the dispatch loop to drain after its context is cancelled.
func (e *Executor) Shutdown(ctx context.Context) error {
	if !e.inShutdown.CompareAndSwap(false, true) {
		e.logger.ErrorContext(ctx, "executor is already shutting down, skipping shutdown")

		return nil
	}

	if !e.started.Load() {
		return nil
	}

	e.logger.InfoContext(ctx, "shutting down executor")
	e.close()

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before executor drained: %w", ctx.Err())
	case <-e.doneCh:
		e.logger.InfoContext(ctx, "executor drained")
	}

	return nil
}

func (e *Executor) run(ctx context.Context) {
	defer close(e.doneCh)

	// actions are not cancelled by shutdown, they get the grace period instead
	actionCtx := context.WithoutCancel(ctx)

	// workers pull from the queue, the loop below never blocks on pool capacity
	workers := pool.New().WithMaxGoroutines(e.opts.MaxConcurrentActions)
	for range e.opts.MaxConcurrentActions {
		workers.Go(func() {
			e.work(ctx, actionCtx)
		})
	}

	sweep := time.NewTicker(max(e.opts.ActionRetention/2, time.Second))
	defer sweep.Stop()

	close(e.ready)

	for {
		select {
		case <-sweep.C:
			e.Sweep(ctx)
		case <-ctx.Done():
			e.drain(actionCtx, workers)

			return
		}
	}
}

func (e *Executor) work(ctx, actionCtx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case action := <-e.queue:
			if ctx.Err() != nil {
				e.abandon(actionCtx, action)

				return
			}

			e.process(actionCtx, action)
		}
	}
}

func (e *Executor) drain(ctx context.Context, workers *pool.Pool) {
	e.close()

	// nothing can be enqueued any more, fail what never started
	for queued := true; queued; {
		select {
		case action := <-e.queue:
			e.abandon(ctx, action)
		default:
			queued = false
		}
	}

	done := make(chan struct{})

	go func() {
		workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.InfoContext(ctx, "all scaling actions finished")
	case <-time.After(e.opts.ShutdownGracePeriod):
		e.logger.WarnContext(ctx, "grace period elapsed with scaling actions still executing",
			"active", len(e.GetActiveScalingActions()),
		)
	}
}

func (e *Executor) close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// abandon moves a queued action through executing to failed without calling the
// orchestrator.
func (e *Executor) abandon(ctx context.Context, action scaling.Action) {
	action = e.begin(action)
	e.finish(ctx, action, time.Time{}, ErrClosed)
}

func (e *Executor) begin(action scaling.Action) scaling.Action {
	action = e.update(action.ID, func(a *scaling.Action) {
		a.Status = scaling.ActionStatusExecuting
	})
	e.publish(events.TypeScalingActionStarted, action)

	return action
}

func (e *Executor) process(ctx context.Context, action scaling.Action) {
	start := e.now()

	action = e.begin(action)

	logger := e.logger.With(
		"action_id", action.ID,
		"service", action.Service,
		"action", action.Direction,
		"current", action.CurrentInstances,
		"target", action.TargetInstances,
	)
	logger.InfoContext(ctx, "executing scaling action")

	err := e.scale(ctx, logger, action)

	e.finish(ctx, action, start, err)
}

func (e *Executor) scale(ctx context.Context, logger *slog.Logger, action scaling.Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "orchestrator panicked", "reason", r, "stack", string(debug.Stack()))

			err = fmt.Errorf("%w: panic: %v", ErrOrchestrator, r)
		}
	}()

	req := ScaleRequest{
		Service: action.Service,
		Current: action.CurrentInstances,
		Target:  action.TargetInstances,
	}

	if action.TargetInstances < action.CurrentInstances {
		req.Remove = e.registry.SelectForRemoval(action.Service, action.CurrentInstances-action.TargetInstances)
	}

	res, err := e.orchestrator.Scale(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOrchestrator, err)
	}

	for _, id := range res.Started {
		_, err := e.registry.RegisterServiceInstance(ctx, action.Service, id, instances.StatusStarting)
		if err != nil && !errors.Is(err, instances.ErrInstanceExists) {
			logger.WarnContext(ctx, "register started instance", "instance", id, "reason", err)
		}
	}

	for _, id := range res.Stopped {
		err := e.registry.UnregisterServiceInstance(ctx, action.Service, id)
		if err != nil && !errors.Is(err, instances.ErrInstanceNotFound) {
			logger.WarnContext(ctx, "unregister stopped instance", "instance", id, "reason", err)
		}
	}

	return nil
}

func (e *Executor) finish(ctx context.Context, action scaling.Action, start time.Time, err error) {
	finished := e.now()

	status := scaling.ActionStatusCompleted
	kind := events.TypeScalingActionCompleted

	if err != nil {
		status = scaling.ActionStatusFailed
		kind = events.TypeScalingActionFailed
	}

	e.mu.Lock()
	en, ok := e.actions[action.ID]
	if ok {
		if en.action.Status.Terminal() {
			e.mu.Unlock()

			return
		}

		en.action.Status = status
		if err != nil {
			en.action.Error = err.Error()
		}

		en.finishedAt = finished
		action = en.action
	}

	if e.inFlight[action.Service] == action.ID {
		delete(e.inFlight, action.Service)
	}
	e.mu.Unlock()

	elapsed := time.Duration(0)
	if !start.IsZero() {
		elapsed = finished.Sub(start)
	}

	metrics.RecordScalingAction(action.Service, string(action.Direction), string(status), elapsed.Seconds())
	e.publish(kind, action)

	if err != nil {
		e.logger.ErrorContext(ctx, "scaling action failed",
			"action_id", action.ID,
			"service", action.Service,
			"reason", err,
		)

		return
	}

	e.logger.InfoContext(ctx, "scaling action completed",
		"action_id", action.ID,
		"service", action.Service,
		"target", action.TargetInstances,
		"elapsed", elapsed,
	)
}

func (e *Executor) update(id string, fn func(a *scaling.Action)) scaling.Action {
	e.mu.Lock()
	defer e.mu.Unlock()

	en, ok := e.actions[id]
	if !ok {
		return scaling.Action{}
	}

	fn(&en.action)

	return en.action
}

// Sweep drops terminal actions older than the retention.
func (e *Executor) Sweep(ctx context.Context) {
	cutoff := e.now().Add(-e.opts.ActionRetention)

	e.mu.Lock()

	removed := 0

	for id, en := range e.actions {
		if en.action.Status.Terminal() && en.finishedAt.Before(cutoff) {
			delete(e.actions, id)

			removed++
		}
	}

	e.mu.Unlock()

	if removed > 0 {
		e.logger.DebugContext(ctx, "expired scaling actions swept", "count", removed)
	}
}

func (e *Executor) publish(kind events.Type, a scaling.Action) {
	if e.publisher == nil {
		return
	}

	e.publisher.Publish(events.ScalingActionEvent{
		Kind:             kind,
		ActionID:         a.ID,
		PolicyID:         a.PolicyID,
		Service:          a.Service,
		Action:           string(a.Direction),
		CurrentInstances: a.CurrentInstances,
		TargetInstances:  a.TargetInstances,
		Reason:           a.Reason,
		Status:           string(a.Status),
		Error:            a.Error,
		Timestamp:        e.now(),
	})
}

func sortActions(actions []scaling.Action) {
	slices.SortFunc(actions, func(a, b scaling.Action) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}
