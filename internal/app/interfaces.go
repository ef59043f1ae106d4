package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/appstate"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/executor"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/reconciler"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	GetAllStats() map[string]*pinger.Statistics
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	SetTerminating(ctx context.Context) error
	GetStartTime() time.Time
	GetState() appstate.State
	GetUptime() time.Duration
	IsHealthy() bool
	IsReady() bool
	Shutdown(ctx context.Context) error
}

// pingerService runs the registered pingers.
type pingerService interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}

// component is a long running part of the control loop.
type component interface {
	pinger.Pinger
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}

// orchestrator creates and destroys instances and reports what runs.
type orchestrator interface {
	executor.Orchestrator
	reconciler.Repository
}
