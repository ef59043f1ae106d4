package pinger

import (
	"context"
	"time"
)

// Pinger is a component whose health is checked periodically.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// A Pinger may implement any of the following to change how its result is judged.
type (
	readyCriticalPinger interface {
		PingerReadyCritical() bool
	}

	healthCriticalPinger interface {
		PingerCritical() bool
	}

	timeoutPinger interface {
		PingerTimeout() time.Duration
	}
)
