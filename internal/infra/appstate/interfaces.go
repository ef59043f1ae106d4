package appstate

import (
	"context"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown"
)

// componentStats exposes the latest health check results per component.
type componentStats interface {
	GetAllStats() map[string]*pinger.Statistics
}

type pingerServer interface {
	componentStats
	shutdown.Shutdowner
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	Register(p pinger.Pinger) error
}

// The handlers depend on the narrowest view they need.
type (
	healthChecker interface {
		componentStats
		IsHealthy() bool
	}

	readyChecker interface {
		componentStats
		IsReady() bool
	}

	statusGetter interface {
		componentStats
		GetState() State
		GetUptime() time.Duration
		GetStartTime() time.Time
	}
)
