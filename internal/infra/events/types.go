package events

import "time"

// Type identifies an event kind published on the bus.
type Type string

const (
	TypeAlert                  Type = "alert"
	TypeScalingActionStarted   Type = "scaling_action_started"
	TypeScalingActionCompleted Type = "scaling_action_completed"
	TypeScalingActionFailed    Type = "scaling_action_failed"
)

// Event is implemented by every payload published on the bus.
type Event interface {
	EventType() Type
	OccurredAt() time.Time
}

// AlertEvent is published when an alert rule fires.
type AlertEvent struct {
	RuleID    string            `json:"ruleId"`
	RuleName  string            `json:"ruleName"`
	Metric    string            `json:"metric"`
	Value     float64           `json:"value"`
	Threshold float64           `json:"threshold"`
	Condition string            `json:"condition"`
	Severity  string            `json:"severity"`
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
}

func (e AlertEvent) EventType() Type       { return TypeAlert }
func (e AlertEvent) OccurredAt() time.Time { return e.Timestamp }

// ScalingActionEvent carries a snapshot of a scaling action at a lifecycle transition.
type ScalingActionEvent struct {
	Kind             Type      `json:"type"`
	ActionID         string    `json:"actionId"`
	PolicyID         string    `json:"policyId"`
	Service          string    `json:"service"`
	Action           string    `json:"action"`
	CurrentInstances int       `json:"currentInstances"`
	TargetInstances  int       `json:"targetInstances"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	Error            string    `json:"error,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func (e ScalingActionEvent) EventType() Type       { return e.Kind }
func (e ScalingActionEvent) OccurredAt() time.Time { return e.Timestamp }
