package reconciler

import (
	"context"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
)

// Repository is the port interface for reading the orchestrator state.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	ListInstancesQuery(
		ctx context.Context,
		service string,
	) ([]ObservedInstance, error)

	GetInstanceUsageQuery(
		ctx context.Context,
		service,
		id string,
	) (*InstanceUsage, error)
}

// InstanceRegistry is kept in sync with the observed instances.
type InstanceRegistry interface {
	Services() []string
	GetServiceInstances(service string) []instances.Instance
	RegisterServiceInstance(
		ctx context.Context,
		service,
		id string,
		status instances.Status,
	) (instances.Instance, error)
	UnregisterServiceInstance(ctx context.Context, service, id string) error
	SetInstanceStatus(ctx context.Context, service, id string, status instances.Status) error
	UpdateInstanceHealth(ctx context.Context, service, id string, health instances.Health) error
	UpdateInstanceResourceUsage(ctx context.Context, service, id string, usage instances.ResourceUsage) error
}

// ServiceLister returns the services that have scaling policies.
type ServiceLister interface {
	Services() []string
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// tooManyRequests is a private interface for checking "too many requests" errors
// without importing the adapter package.
type tooManyRequests interface {
	IsTooManyRequests()
}
