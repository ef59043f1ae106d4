package scaling

import (
	"context"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

// PolicyRepository persists scaling policies across restarts.
type PolicyRepository interface {
	SavePolicy(ctx context.Context, policy Policy) error
	DeletePolicy(ctx context.Context, id string) error
	ListPolicies(ctx context.Context) ([]Policy, error)
}

// MetricSource reads recorded samples.
type MetricSource interface {
	QueryMetrics(q metricstore.Query) []metricstore.Point
}

// InstanceCounter reports the capacity of a service.
type InstanceCounter interface {
	GetServiceInstanceCount(service string) int
}

// Dispatcher executes scaling actions asynchronously.
type Dispatcher interface {
	Execute(ctx context.Context, action Action) error
	InFlight(service string) bool
}
