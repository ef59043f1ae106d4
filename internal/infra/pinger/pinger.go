package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown"
)

const defaultPingTimeout = 1 * time.Second

// Service checks the registered components on a fixed interval and keeps their
// results for the health endpoints.
type Service struct {
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	mu     sync.RWMutex
	checks map[string]*check
	order  []string

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool
}

// New creates a pinger service that checks every interval.
func New(logger *slog.Logger, interval time.Duration) *Service {
	return &Service{
		logger:   logger.With("component", "pinger"),
		interval: interval,
		now:      time.Now,
		checks:   make(map[string]*check),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a component. Names must be unique.
func (s *Service) Register(p Pinger) error {
	if p == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	c := newCheck(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.checks[c.name]; exists {
		return fmt.Errorf("register pinger %s: %w", c.name, ErrPingerAlreadyRegistered)
	}

	s.checks[c.name] = c
	s.order = append(s.order, c.name)

	s.logger.Info("pinger registered",
		"name", c.name,
		"readyCritical", c.readyCritical,
		"healthCritical", c.healthCritical,
		"timeout", c.timeout,
	)

	return nil
}

// Start runs the first check round and then keeps checking until ctx is done.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.run(ctx)

	return nil
}

// Ready is closed after the first check round.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown waits for the check loop to exit.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	if !s.started.Load() {
		return nil
	}

	s.logger.InfoContext(ctx, "shutting down pinger service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
	}

	s.logger.InfoContext(ctx, "pinger service shut down")

	return nil
}

// GetStats returns the statistics of one component.
func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	c, ok := s.checks[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("get stats: %w: %s", ErrPingerNotFound, name)
	}

	return c.statistics(), nil
}

// GetAllStats returns the statistics of every registered component.
func (s *Service) GetAllStats() map[string]*Statistics {
	checks := s.snapshot()

	out := make(map[string]*Statistics, len(checks))
	for _, c := range checks {
		out[c.name] = c.statistics()
	}

	return out
}

// RunOnce checks every component concurrently and returns when all are done.
func (s *Service) RunOnce(ctx context.Context) {
	var wg conc.WaitGroup

	for _, c := range s.snapshot() {
		wg.Go(func() {
			s.ping(ctx, c)
		})
	}

	wg.Wait()
}

func (s *Service) snapshot() []*check {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*check, 0, len(s.order))
	for _, name := range slices.Clone(s.order) {
		out = append(out, s.checks[name])
	}

	return out
}

func (s *Service) ping(ctx context.Context, c *check) {
	pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := s.now()
	err := c.ping(pingCtx)
	latency := time.Since(start)

	c.record(start, latency, err)
	metrics.RecordComponentCheck(c.name, latency.Seconds(), err == nil)

	if err != nil {
		s.logger.DebugContext(ctx, "pinger error", "name", c.name, "latency", latency, "reason", err)

		return
	}

	s.logger.DebugContext(ctx, "pinger success", "name", c.name, "latency", latency)
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	close(s.ready)

	for {
		if s.inShutdown.Load() {
			s.logger.InfoContext(ctx, "terminating pinger loop")

			return
		}

		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}
