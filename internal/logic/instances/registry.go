package instances

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

// Metric names forwarded into the metric store.
const (
	MetricInstanceHealth = "instance_health"
	MetricCPUUsage       = "cpu_usage"
	MetricMemoryUsage    = "memory_usage"
	MetricConnections    = "connections"
)

// Registry is the live bookkeeping of service instances.
type Registry struct {
	logger   *slog.Logger
	recorder MetricRecorder
	now      func() time.Time
	mu       sync.RWMutex
	services map[string]map[string]*Instance
}

// NewRegistry creates an empty registry. recorder may be nil.
func NewRegistry(logger *slog.Logger, recorder MetricRecorder) *Registry {
	return &Registry{
		logger:   logger.With("component", "instance-registry"),
		recorder: recorder,
		now:      time.Now,
		services: make(map[string]map[string]*Instance),
	}
}

// SetClock replaces the time source. Intended for tests.
func (r *Registry) SetClock(now func() time.Time) {
	r.now = now
}

// RegisterServiceInstance adds an instance with the given status and unknown health.
func (r *Registry) RegisterServiceInstance(ctx context.Context, service, id string, status Status) (Instance, error) {
	if service == "" || id == "" {
		return Instance{}, fmt.Errorf("%w: service and id are required", ErrInvalidInstance)
	}

	if !status.valid() {
		return Instance{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInstance, status)
	}

	r.mu.Lock()

	byID, ok := r.services[service]
	if !ok {
		byID = make(map[string]*Instance)
		r.services[service] = byID
	}

	if _, ok := byID[id]; ok {
		r.mu.Unlock()

		return Instance{}, fmt.Errorf("%w: %s/%s", ErrInstanceExists, service, id)
	}

	inst := &Instance{
		ID:           id,
		Service:      service,
		Status:       status,
		StartTime:    r.now(),
		HealthStatus: HealthUnknown,
	}
	byID[id] = inst
	snapshot := *inst
	count := countLocked(byID)

	r.mu.Unlock()

	metrics.SetServiceInstances(service, count)
	r.logger.InfoContext(ctx, "instance registered", "service", service, "instance", id, "status", status)

	return snapshot, nil
}

// UnregisterServiceInstance removes an instance.
func (r *Registry) UnregisterServiceInstance(ctx context.Context, service, id string) error {
	r.mu.Lock()

	byID := r.services[service]
	if _, ok := byID[id]; !ok {
		r.mu.Unlock()

		return fmt.Errorf("%w: %s/%s", ErrInstanceNotFound, service, id)
	}

	delete(byID, id)
	count := countLocked(byID)

	if len(byID) == 0 {
		delete(r.services, service)
	}

	r.mu.Unlock()

	metrics.SetServiceInstances(service, count)
	r.logger.InfoContext(ctx, "instance unregistered", "service", service, "instance", id)

	return nil
}

// SetInstanceStatus moves an instance to status. Stopping or stopped instances get an
// end time.
func (r *Registry) SetInstanceStatus(ctx context.Context, service, id string, status Status) error {
	if !status.valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInstance, status)
	}

	r.mu.Lock()

	inst, ok := r.services[service][id]
	if !ok {
		r.mu.Unlock()

		return fmt.Errorf("%w: %s/%s", ErrInstanceNotFound, service, id)
	}

	previous := inst.Status
	inst.Status = status

	if !status.CountsTowardCapacity() && inst.EndTime == nil {
		end := r.now()
		inst.EndTime = &end
	}

	count := countLocked(r.services[service])

	r.mu.Unlock()

	if previous != status {
		metrics.SetServiceInstances(service, count)
		r.logger.DebugContext(ctx, "instance status changed",
			"service", service,
			"instance", id,
			"from", previous,
			"to", status,
		)
	}

	return nil
}

// UpdateInstanceHealth stores the health of an instance and records it as the
// instance_health metric. A healthy starting instance becomes running.
func (r *Registry) UpdateInstanceHealth(ctx context.Context, service, id string, health Health) error {
	if !health.valid() {
		return fmt.Errorf("%w: unknown health %q", ErrInvalidInstance, health)
	}

	r.mu.Lock()

	inst, ok := r.services[service][id]
	if !ok {
		r.mu.Unlock()

		return fmt.Errorf("%w: %s/%s", ErrInstanceNotFound, service, id)
	}

	inst.HealthStatus = health

	promoted := false
	if health == HealthHealthy && inst.Status == StatusStarting {
		inst.Status = StatusRunning
		promoted = true
	}

	r.mu.Unlock()

	if promoted {
		r.logger.InfoContext(ctx, "instance running", "service", service, "instance", id)
	}

	switch health {
	case HealthHealthy:
		r.gauge(ctx, MetricInstanceHealth, 1, metricstore.UnitValue, service, id)
	case HealthUnhealthy:
		r.gauge(ctx, MetricInstanceHealth, 0, metricstore.UnitValue, service, id)
	case HealthUnknown:
	}

	return nil
}

// UpdateInstanceResourceUsage stores the usage of an instance and records it as the
// cpu_usage, memory_usage and connections metrics.
func (r *Registry) UpdateInstanceResourceUsage(ctx context.Context, service, id string, usage ResourceUsage) error {
	r.mu.Lock()

	inst, ok := r.services[service][id]
	if !ok {
		r.mu.Unlock()

		return fmt.Errorf("%w: %s/%s", ErrInstanceNotFound, service, id)
	}

	inst.ResourceUsage = usage

	r.mu.Unlock()

	r.gauge(ctx, MetricCPUUsage, usage.CPU, metricstore.UnitPercent, service, id)
	r.gauge(ctx, MetricMemoryUsage, usage.Memory, metricstore.UnitPercent, service, id)
	r.gauge(ctx, MetricConnections, float64(usage.Connections), metricstore.UnitCount, service, id)

	return nil
}

// GetServiceInstanceCount counts starting and running instances of service.
func (r *Registry) GetServiceInstanceCount(service string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return countLocked(r.services[service])
}

// GetHealthyInstanceCount counts healthy starting or running instances of service.
func (r *Registry) GetHealthyInstanceCount(service string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0

	for _, inst := range r.services[service] {
		if inst.Status.CountsTowardCapacity() && inst.HealthStatus == HealthHealthy {
			n++
		}
	}

	return n
}

// GetServiceInstances returns every instance of service, oldest first.
func (r *Registry) GetServiceInstances(service string) []Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Instance, 0, len(r.services[service]))
	for _, inst := range r.services[service] {
		out = append(out, *inst)
	}

	slices.SortFunc(out, func(a, b Instance) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// Services returns the names of services with registered instances, sorted.
func (r *Registry) Services() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.services))
	for service := range r.services {
		out = append(out, service)
	}

	slices.Sort(out)

	return out
}

// SelectForRemoval picks up to n capacity instances of service to stop: unhealthy ones
// first, then starting ones, then the newest.
func (r *Registry) SelectForRemoval(service string, n int) []string {
	if n <= 0 {
		return nil
	}

	r.mu.RLock()

	candidates := make([]Instance, 0, len(r.services[service]))
	for _, inst := range r.services[service] {
		if inst.Status.CountsTowardCapacity() {
			candidates = append(candidates, *inst)
		}
	}

	r.mu.RUnlock()

	slices.SortFunc(candidates, func(a, b Instance) int {
		if c := cmp.Compare(removalRank(a), removalRank(b)); c != 0 {
			return c
		}

		if c := b.StartTime.Compare(a.StartTime); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	ids := make([]string, 0, min(n, len(candidates)))
	for _, inst := range candidates[:min(n, len(candidates))] {
		ids = append(ids, inst.ID)
	}

	return ids
}

func removalRank(inst Instance) int {
	switch {
	case inst.HealthStatus == HealthUnhealthy:
		return 0
	case inst.Status == StatusStarting:
		return 1
	default:
		return 2
	}
}

func (r *Registry) gauge(ctx context.Context, name string, value float64, unit, service, id string) {
	if r.recorder == nil {
		return
	}

	r.recorder.Gauge(ctx, name, value, unit, map[string]string{
		"service":  service,
		"instance": id,
	})
}

func countLocked(byID map[string]*Instance) int {
	n := 0

	for _, inst := range byID {
		if inst.Status.CountsTowardCapacity() {
			n++
		}
	}

	return n
}
