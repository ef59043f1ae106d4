package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
)

// Service keeps the instance registry in line with what the orchestrator runs.
type Service struct {
	logger               *slog.Logger
	repo                 Repository
	registry             InstanceRegistry
	services             ServiceLister
	interval             time.Duration
	ready                chan struct{}
	doneCh               chan struct{}
	inShutdown           atomic.Bool
	started              atomic.Bool
	mu                   sync.RWMutex
	lastReconcileEndTime time.Time
}

// Stats summarises one reconciliation pass.
type Stats struct {
	Observed int
	Added    int
	Removed  int
}

// New creates a new instance reconciler.
func New(
	logger *slog.Logger,
	repo Repository,
	registry InstanceRegistry,
	services ServiceLister,
	interval time.Duration,
) *Service {
	return &Service{
		logger:   logger.With("component", "instance-reconciler"),
		repo:     repo,
		registry: registry,
		services: services,
		interval: interval,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the reconcile loop in a goroutine until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "reconciler is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the component
func (s *Service) Name() string {
	return "instance-reconciler"
}

// Ping fails when the loop is not running or the last pass is older than two intervals.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		lastReconcileAge := s.getLastReconcileAge()
		if lastReconcileAge > 2*s.interval {
			return fmt.Errorf("last reconcile was too long ago: %s", lastReconcileAge.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("reconciler is not ready")
	}
}

// Shutdown waits for the reconcile loop to exit after its context is cancelled.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "reconciler is already shutting down, skipping shutdown")

		return nil
	}

	if !s.started.Load() {
		return nil
	}

	s.logger.InfoContext(ctx, "shutting down reconciler")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before reconcile loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "reconcile loop exited")
	}

	return nil
}

// Ready returns a channel closed once the reconcile loop runs.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// RunCommand runs the reconciler in a loop with the configured interval.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("reconciler", "RunCommand")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	close(s.ready)

	for {
		_, err := s.ReconcileCommand(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "reconcile error", "reason", err)
		}

		s.setLastReconcileEndTime()

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating reconcile loop")

			return
		}
	}
}

// ReconcileCommand syncs the instance registry with the orchestrator once for every
// service that has a policy or registered instances. A failing service does not stop
// the others; their errors are joined.
func (s *Service) ReconcileCommand(ctx context.Context) (Stats, error) {
	logger := s.logger.With("reconciler", "ReconcileCommand")

	var (
		total Stats
		errs  []error
	)

	for _, service := range s.managedServices() {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping reconciliation")

			return total, errors.Join(errs...)
		default:
		}

		stats, err := s.reconcileService(ctx, logger.With("service", service), service)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		total.Observed += stats.Observed
		total.Added += stats.Added
		total.Removed += stats.Removed
	}

	logger.DebugContext(ctx, "instances reconciled",
		"observed", total.Observed,
		"added", total.Added,
		"removed", total.Removed,
	)

	return total, errors.Join(errs...)
}

func (s *Service) managedServices() []string {
	services := slices.Concat(s.services.Services(), s.registry.Services())
	slices.Sort(services)

	return slices.Compact(services)
}

func (s *Service) reconcileService(
	ctx context.Context,
	logger *slog.Logger,
	service string,
) (Stats, error) {
	// Snapshot before listing so instances registered meanwhile are not dropped.
	known := make(map[string]instances.Instance)
	for _, inst := range s.registry.GetServiceInstances(service) {
		known[inst.ID] = inst
	}

	observed, err := s.repo.ListInstancesQuery(ctx, service)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %s: %w", ErrListInstances, service, err)
	}

	stats := Stats{Observed: len(observed)}
	seen := make(map[string]struct{}, len(observed))

	for i := range observed {
		obs := observed[i]
		seen[obs.ID] = struct{}{}

		inst, exists := known[obs.ID]

		added, err := s.syncInstance(ctx, service, obs, inst, exists)
		if added {
			stats.Added++
		}

		if err != nil {
			logger.ErrorContext(ctx, "sync instance error", "instance", obs.ID, "reason", err)
		}
	}

	for id := range known {
		if _, ok := seen[id]; ok {
			continue
		}

		err := s.registry.UnregisterServiceInstance(ctx, service, id)
		if err != nil && !errors.Is(err, instances.ErrInstanceNotFound) {
			logger.ErrorContext(ctx, "unregister vanished instance", "instance", id, "reason", err)

			continue
		}

		stats.Removed++
	}

	return stats, nil
}

func (s *Service) syncInstance(
	ctx context.Context,
	service string,
	obs ObservedInstance,
	inst instances.Instance,
	exists bool,
) (bool, error) {
	status := observedStatus(obs)
	added := false

	switch {
	case !exists:
		_, err := s.registry.RegisterServiceInstance(ctx, service, obs.ID, status)
		if err != nil && !errors.Is(err, instances.ErrInstanceExists) {
			return false, fmt.Errorf("%w: %w", ErrSyncInstance, err)
		}

		added = err == nil
	case status == instances.StatusStopping && inst.Status.CountsTowardCapacity():
		err := s.registry.SetInstanceStatus(ctx, service, obs.ID, status)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrSyncInstance, err)
		}
	}

	if status == instances.StatusStopping {
		return added, nil
	}

	health := instances.HealthUnknown

	switch {
	case obs.Ready:
		health = instances.HealthHealthy
	case exists && inst.Status == instances.StatusRunning:
		health = instances.HealthUnhealthy
	}

	if health != instances.HealthUnknown {
		err := s.registry.UpdateInstanceHealth(ctx, service, obs.ID, health)
		if err != nil {
			return added, fmt.Errorf("%w: %w", ErrSyncInstance, err)
		}
	}

	return added, s.updateUsage(ctx, service, obs)
}

func (s *Service) updateUsage(ctx context.Context, service string, obs ObservedInstance) error {
	logger := s.logger.With("service", service, "instance", obs.ID)

	if obs.CPULimit == nil || obs.MemoryLimit == nil {
		logger.DebugContext(ctx, "instance has no resource limits, skipping usage")

		return nil
	}

	usage, err := s.repo.GetInstanceUsageQuery(ctx, service, obs.ID)
	if err != nil {
		var target notFound
		if errors.As(err, &target) {
			logger.DebugContext(ctx, "instance usage not found, skipping")

			return nil
		}

		var tooManyRequestsTarget tooManyRequests
		if errors.As(err, &tooManyRequestsTarget) {
			logger.DebugContext(ctx, "too many requests when reading usage, will retry later")

			return nil
		}

		return fmt.Errorf("%w: %w", ErrGetUsage, err)
	}

	err = s.registry.UpdateInstanceResourceUsage(ctx, service, obs.ID, instances.ResourceUsage{
		CPU:         percentOf(usage.CPU, obs.CPULimit),
		Memory:      percentOf(usage.Memory, obs.MemoryLimit),
		Connections: usage.Connections,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyncInstance, err)
	}

	return nil
}

func observedStatus(obs ObservedInstance) instances.Status {
	switch {
	case obs.Terminating:
		return instances.StatusStopping
	case obs.Ready:
		return instances.StatusRunning
	default:
		return instances.StatusStarting
	}
}

func percentOf(usage, limit *resource.Quantity) float64 {
	if usage == nil || limit == nil || limit.IsZero() {
		return 0
	}

	return float64(usage.MilliValue()) / float64(limit.MilliValue()) * percentScale
}

func (s *Service) getLastReconcileAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.lastReconcileEndTime)
}

func (s *Service) setLastReconcileEndTime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastReconcileEndTime = time.Now()
}
