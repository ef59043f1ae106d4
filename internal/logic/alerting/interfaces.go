package alerting

import (
	"context"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
)

// Publisher receives fired alerts.
type Publisher interface {
	Publish(e events.Event)
}

// RuleRepository persists alert rules across restarts.
type RuleRepository interface {
	SaveAlertRule(ctx context.Context, rule Rule) error
	DeleteAlertRule(ctx context.Context, id string) error
	ListAlertRules(ctx context.Context) ([]Rule, error)
}
