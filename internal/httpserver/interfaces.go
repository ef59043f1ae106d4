package httpserver

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/appstate"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/schedule"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// routeMounter adds routes below the API prefix.
type routeMounter interface {
	Mount(r chi.Router)
}

// MetricStore records and queries telemetry points.
type MetricStore interface {
	RecordPoint(ctx context.Context, p metricstore.Point)
	QueryMetrics(q metricstore.Query) []metricstore.Point
	MetricNames() []string
}

// AlertRules manages alert rules.
type AlertRules interface {
	AddAlertRule(ctx context.Context, r alerting.Rule) (alerting.Rule, error)
	UpdateAlertRule(ctx context.Context, r alerting.Rule) error
	RemoveAlertRule(ctx context.Context, id string) error
	GetAlertRule(id string) (alerting.Rule, error)
	ListAlertRules() []alerting.Rule
}

// Policies manages scaling policies.
type Policies interface {
	AddScalingPolicy(ctx context.Context, p scaling.Policy) (scaling.Policy, error)
	UpdateScalingPolicy(ctx context.Context, p scaling.Policy) error
	RemoveScalingPolicy(ctx context.Context, id string) error
	GetScalingPolicy(id string) (scaling.Policy, error)
	GetAllPolicies() []scaling.Policy
}

// Scaler applies manual capacity changes.
type Scaler interface {
	ScaleUp(ctx context.Context, service string, n int) (scaling.Action, error)
	ScaleDown(ctx context.Context, service string, n int) (scaling.Action, error)
	SetDesiredInstances(ctx context.Context, service string, n int) (scaling.Action, error)
	Bounds(service string) (minInstances, maxInstances int)
}

// InstanceLister reads the instance registry.
type InstanceLister interface {
	GetServiceInstances(service string) []instances.Instance
	GetServiceInstanceCount(service string) int
	GetHealthyInstanceCount(service string) int
	Services() []string
}

// ActionLister reads scaling actions.
type ActionLister interface {
	GetActiveScalingActions() []scaling.Action
	ListActions() []scaling.Action
	GetAction(id string) (scaling.Action, error)
}

// ScheduleLister reads scheduled capacity entries.
type ScheduleLister interface {
	Entries() []schedule.Status
}
