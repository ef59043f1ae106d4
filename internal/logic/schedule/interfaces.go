package schedule

import (
	"context"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

// CronParser computes cron occurrences.
type CronParser interface {
	Validate(spec, tz string) error
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}

// Scaler applies the scheduled capacity.
type Scaler interface {
	SetDesiredInstances(ctx context.Context, service string, n int) (scaling.Action, error)
}
