package pinger

import (
	"context"
	"sync"
	"time"
)

// Statistics is a point-in-time view of a component's health checks.
type Statistics struct {
	IsReady             bool
	IsHealthy           bool
	LastRun             time.Time
	LastError           error
	ConsecutiveFailures int
	TotalChecks         int
	TotalFailures       int
	Latency             LatencySummary
}

// check holds the settings and results of one registered component.
type check struct {
	name           string
	ping           func(ctx context.Context) error
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration

	mu                  sync.Mutex
	lastRun             time.Time
	lastErr             error
	consecutiveFailures int
	total               int
	failures            int
	latencies           *latencyWindow
}

func newCheck(p Pinger) *check {
	c := &check{
		name:           p.Name(),
		ping:           p.Ping,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
		latencies:      newLatencyWindow(latencyWindowSize),
	}

	if rc, ok := p.(readyCriticalPinger); ok {
		c.readyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := p.(healthCriticalPinger); ok {
		c.healthCritical = hc.PingerCritical()
	}

	if tp, ok := p.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		c.timeout = tp.PingerTimeout()
	}

	return c
}

func (c *check) record(at time.Time, latency time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastRun = at
	c.lastErr = err
	c.total++
	c.latencies.add(latency)

	if err != nil {
		c.failures++
		c.consecutiveFailures++

		return
	}

	c.consecutiveFailures = 0
}

func (c *check) statistics() *Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Statistics{
		IsReady:             !c.readyCritical || c.lastErr == nil,
		IsHealthy:           !c.healthCritical || c.lastErr == nil,
		LastRun:             c.lastRun,
		LastError:           c.lastErr,
		ConsecutiveFailures: c.consecutiveFailures,
		TotalChecks:         c.total,
		TotalFailures:       c.failures,
		Latency:             c.latencies.summary(),
	}
}
