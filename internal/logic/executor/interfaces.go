package executor

import (
	"context"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
)

// ScaleRequest asks the orchestrator to move a service from Current to Target
// instances. Remove lists the instances to stop first when scaling down.
type ScaleRequest struct {
	Service string
	Current int
	Target  int
	Remove  []string
}

// ScaleResult lists the instances the orchestrator started and stopped.
type ScaleResult struct {
	Started []string
	Stopped []string
}

// Orchestrator is the port to the system that creates and destroys instances.
// Implementations are provided by adapters in the outbound layer.
type Orchestrator interface {
	Scale(ctx context.Context, req ScaleRequest) (ScaleResult, error)
}

// InstanceRegistry is updated with the orchestrator results.
type InstanceRegistry interface {
	SelectForRemoval(service string, n int) []string
	RegisterServiceInstance(
		ctx context.Context,
		service,
		id string,
		status instances.Status,
	) (instances.Instance, error)
	UnregisterServiceInstance(ctx context.Context, service, id string) error
}

// Publisher receives action lifecycle events.
type Publisher interface {
	Publish(e events.Event)
}
