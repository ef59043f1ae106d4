package scaling

import (
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

// Strategy maps the current instance count to a new target.
type Strategy string

const (
	StrategyLinear         Strategy = "linear"
	StrategyExponential    Strategy = "exponential"
	StrategyTargetTracking Strategy = "target_tracking"
)

// Direction is the kind of scaling action.
type Direction string

const (
	DirectionScaleUp   Direction = "scale_up"
	DirectionScaleDown Direction = "scale_down"
)

// ActionStatus is the lifecycle state of an Action.
type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusExecuting ActionStatus = "executing"
	ActionStatusCompleted ActionStatus = "completed"
	ActionStatusFailed    ActionStatus = "failed"
)

// Terminal reports whether no further transition is possible.
func (s ActionStatus) Terminal() bool {
	return s == ActionStatusCompleted || s == ActionStatusFailed
}

// WindowPredicate decides on a window of samples, oldest first.
type WindowPredicate func(window []metricstore.Point) bool

// CustomConditions override the threshold checks of a policy.
type CustomConditions struct {
	ScaleUp   WindowPredicate
	ScaleDown WindowPredicate
}

// Policy governs when and how the instance count of one service changes.
type Policy struct {
	ID                 string            `json:"id" yaml:"id"`
	TargetService      string            `json:"target_service" yaml:"target_service"`
	Enabled            bool              `json:"enabled" yaml:"enabled"`
	ScaleUpMetric      string            `json:"scale_up_metric" yaml:"scale_up_metric"`
	ScaleUpThreshold   float64           `json:"scale_up_threshold" yaml:"scale_up_threshold"`
	ScaleUpCooldown    time.Duration     `json:"scale_up_cooldown" yaml:"scale_up_cooldown"`
	ScaleUpBy          int               `json:"scale_up_by" yaml:"scale_up_by"`
	ScaleDownMetric    string            `json:"scale_down_metric" yaml:"scale_down_metric"`
	ScaleDownThreshold float64           `json:"scale_down_threshold" yaml:"scale_down_threshold"`
	ScaleDownCooldown  time.Duration     `json:"scale_down_cooldown" yaml:"scale_down_cooldown"`
	ScaleDownBy        int               `json:"scale_down_by" yaml:"scale_down_by"`
	MinInstances       int               `json:"min_instances" yaml:"min_instances"`
	MaxInstances       int               `json:"max_instances" yaml:"max_instances"`
	EvaluationPeriods  int               `json:"evaluation_periods" yaml:"evaluation_periods"`
	PeriodDuration     time.Duration     `json:"period_duration" yaml:"period_duration"`
	Strategy           Strategy          `json:"strategy" yaml:"strategy"`
	TargetValue        float64           `json:"target_value,omitempty" yaml:"target_value,omitempty"`
	MetricTags         map[string]string `json:"metric_tags,omitempty" yaml:"metric_tags,omitempty"`
	CustomConditions   *CustomConditions `json:"-" yaml:"-"`
}

// Cooldown is the minimum time between two actions triggered by the policy.
func (p Policy) Cooldown() time.Duration {
	return max(p.ScaleUpCooldown, p.ScaleDownCooldown)
}

// Window is the lookback span evaluated on every tick.
func (p Policy) Window() time.Duration {
	return time.Duration(p.EvaluationPeriods) * p.PeriodDuration
}

// Clamp bounds n to the policy instance range.
func (p Policy) Clamp(n int) int {
	return min(max(n, p.MinInstances), p.MaxInstances)
}

// Action is a decision to change the instance count of a service.
type Action struct {
	ID               string       `json:"id"`
	PolicyID         string       `json:"policy_id,omitempty"`
	Service          string       `json:"service"`
	Direction        Direction    `json:"action"`
	CurrentInstances int          `json:"current_instances"`
	TargetInstances  int          `json:"target_instances"`
	Reason           string       `json:"reason"`
	Timestamp        time.Time    `json:"timestamp"`
	Status           ActionStatus `json:"status"`
	Error            string       `json:"error,omitempty"`
}
