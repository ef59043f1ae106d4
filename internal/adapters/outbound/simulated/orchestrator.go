package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/executor"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/reconciler"
)

type instance struct {
	id        string
	startedAt time.Time
}

// Orchestrator keeps instances in memory. Started instances become ready after the
// configured startup delay.
type Orchestrator struct {
	logger       *slog.Logger
	startupDelay time.Duration
	now          func() time.Time
	newID        func(service string) string

	mu       sync.Mutex
	services map[string][]instance
}

// New creates a simulated orchestrator.
func New(logger *slog.Logger, startupDelay time.Duration) *Orchestrator {
	return &Orchestrator{
		logger:       logger.With("component", "simulated-orchestrator"),
		startupDelay: startupDelay,
		now:          time.Now,
		newID: func(service string) string {
			return service + "-" + uuid.NewString()[:8]
		},
		services: make(map[string][]instance),
	}
}

var (
	_ executor.Orchestrator = (*Orchestrator)(nil)
	_ reconciler.Repository = (*Orchestrator)(nil)
)

// SetClock replaces the time source. Intended for tests.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}

// Seed starts instances until service has at least n of them and returns the ids started.
func (o *Orchestrator) Seed(ctx context.Context, service string, n int) []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	started := o.startLocked(service, n-len(o.services[service]))
	if len(started) > 0 {
		o.logger.InfoContext(ctx, "service seeded", "service", service, "started", len(started))
	}

	return started
}

// Scale starts or stops instances until the service runs exactly req.Target of them.
// Instances in req.Remove are stopped first, then the newest ones.
func (o *Orchestrator) Scale(ctx context.Context, req executor.ScaleRequest) (executor.ScaleResult, error) {
	if req.Target < 0 {
		return executor.ScaleResult{}, fmt.Errorf("%w: %d", ErrInvalidTarget, req.Target)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	current := len(o.services[req.Service])

	var res executor.ScaleResult

	switch {
	case req.Target > current:
		res.Started = o.startLocked(req.Service, req.Target-current)
	case req.Target < current:
		res.Stopped = o.stopLocked(req.Service, current-req.Target, req.Remove)
	}

	o.logger.InfoContext(ctx, "service scaled",
		"service", req.Service,
		"from", current,
		"to", req.Target,
		"started", len(res.Started),
		"stopped", len(res.Stopped),
	)

	return res, nil
}

// ListInstancesQuery reports the instances of service. An instance is ready once
// the startup delay has passed.
func (o *Orchestrator) ListInstancesQuery(_ context.Context, service string) ([]reconciler.ObservedInstance, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.now()
	out := make([]reconciler.ObservedInstance, 0, len(o.services[service]))

	for _, inst := range o.services[service] {
		out = append(out, reconciler.ObservedInstance{
			ID:    inst.id,
			Ready: !now.Before(inst.startedAt.Add(o.startupDelay)),
		})
	}

	return out, nil
}

// GetInstanceUsageQuery always fails, simulated instances report no usage.
func (o *Orchestrator) GetInstanceUsageQuery(context.Context, string, string) (*reconciler.InstanceUsage, error) {
	return nil, errUsageNotFound
}

func (o *Orchestrator) startLocked(service string, n int) []string {
	if n <= 0 {
		return nil
	}

	now := o.now()
	started := make([]string, 0, n)

	for range n {
		id := o.newID(service)
		o.services[service] = append(o.services[service], instance{id: id, startedAt: now})
		started = append(started, id)
	}

	return started
}

func (o *Orchestrator) stopLocked(service string, n int, preferred []string) []string {
	running := o.services[service]
	stopped := make([]string, 0, n)

	for _, id := range preferred {
		if len(stopped) == n {
			break
		}

		idx := slices.IndexFunc(running, func(inst instance) bool { return inst.id == id })
		if idx < 0 {
			continue
		}

		running = slices.Delete(running, idx, idx+1)
		stopped = append(stopped, id)
	}

	slices.SortStableFunc(running, func(a, b instance) int {
		return a.startedAt.Compare(b.startedAt)
	})

	for len(stopped) < n && len(running) > 0 {
		last := running[len(running)-1]
		running = running[:len(running)-1]
		stopped = append(stopped, last.id)
	}

	o.services[service] = running

	return stopped
}

// Count returns the number of instances of service.
func (o *Orchestrator) Count(service string) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.services[service])
}
